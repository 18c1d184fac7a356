package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/logging"
	"github.com/dmitrijs2005/healthmate/internal/notifications"
	"github.com/dmitrijs2005/healthmate/internal/speech"
)

// SummaryService announces, once a day at a configured time, how many daily
// reminders are still pending. The announcement goes to the log, the
// notifier, the speaker (when TTS is enabled) and email (when enabled and
// configured).
type SummaryService struct {
	cron      *cron.Cron
	reminders *ReminderService
	settings  *SettingsService
	notifier  notifications.Notifier
	speaker   speech.Speaker
	email     *notifications.EmailSender
	log       logging.Logger
}

func NewSummaryService(
	reminders *ReminderService,
	settings *SettingsService,
	notifier notifications.Notifier,
	speaker speech.Speaker,
	email *notifications.EmailSender,
	log logging.Logger,
) *SummaryService {
	return &SummaryService{
		cron:      cron.New(cron.WithSeconds()),
		reminders: reminders,
		settings:  settings,
		notifier:  notifier,
		speaker:   speaker,
		email:     email,
		log:       log,
	}
}

// Start registers the daily job at the given wall-clock time and starts the
// cron loop.
func (s *SummaryService) Start(at models.TimeOfDay) error {
	// cron format: second minute hour dom month dow
	spec := fmt.Sprintf("0 %d %d * * *", at.Minute, at.Hour)
	if _, err := s.cron.AddFunc(spec, func() {
		s.Announce(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule daily summary: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *SummaryService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// BuildMessage composes the summary line from today's pending reminders.
func (s *SummaryService) BuildMessage() string {
	pending := 0
	for _, r := range s.reminders.Today() {
		if !r.Completed {
			pending++
		}
	}
	if pending == 0 {
		return "Great job! Keep up the consistency!"
	}
	return fmt.Sprintf("You have %d reminders for today.", pending)
}

// Announce delivers the summary through every enabled channel. Channel
// failures are logged, never surfaced: the summary is best-effort.
func (s *SummaryService) Announce(ctx context.Context) {
	msg := s.BuildMessage()
	s.log.Info(ctx, "daily summary", "message", msg)

	s.notifier.Show(notifications.Notification{
		Title: "HealthMate",
		Body:  msg,
	})

	cfg := s.settings.Current()
	if cfg.TTSEnabled {
		s.speaker.Speak(msg, 1)
	}
	if cfg.EmailNotifications {
		if _, err := s.email.SendReminder(ctx, "Your HealthMate daily summary", msg); err != nil {
			s.log.Warn(ctx, "daily summary email failed", "error", err)
		}
	}
}
