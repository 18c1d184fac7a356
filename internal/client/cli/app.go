package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/healthmate/internal/client/config"
	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/services"
	"github.com/dmitrijs2005/healthmate/internal/client/storage"
	"github.com/dmitrijs2005/healthmate/internal/logging"
	"github.com/dmitrijs2005/healthmate/internal/notifications"
	"github.com/dmitrijs2005/healthmate/internal/speech"
)

// App wires the HealthMate services behind the interactive REPL. All state
// lives in the services; App itself only holds the composition and the input
// reader.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	auth      *services.AuthService
	reminders *services.ReminderService
	settings  *services.SettingsService
	assistant *services.AssistantService
	summary   *services.SummaryService

	notifier  notifications.Notifier
	scheduler *notifications.Scheduler
	speaker   speech.Speaker

	reader         *bufio.Reader
	summaryStarted bool
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	notifier := notifications.NewExecNotifier(c.NotifyCommand, log)
	scheduler := notifications.NewScheduler(notifier, log)
	speaker := speech.NewExecSpeaker(c.SpeechCommand, log)
	email := notifications.NewEmailSender(notifications.EmailConfig{
		Host:            c.EmailHost,
		Port:            c.EmailPort,
		Username:        c.EmailUsername,
		Password:        c.EmailPassword,
		From:            c.EmailFrom,
		To:              c.EmailTo,
		RetryMaxElapsed: c.EmailRetryMaxElapsed,
	}, log)

	auth := services.NewAuthService(db, []byte(c.TokenSecret), log)
	reminders := services.NewReminderService(db, scheduler, log)
	settings := services.NewSettingsService(db, &TerminalDarkMode{out: os.Stdout}, log)
	assistant := services.NewAssistantService()
	summary := services.NewSummaryService(reminders, settings, notifier, speaker, email, log)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		auth:      auth,
		reminders: reminders,
		settings:  settings,
		assistant: assistant,
		summary:   summary,
		notifier:  notifier,
		scheduler: scheduler,
		speaker:   speaker,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a previously persisted session, enters the dashboard when one
// exists, and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if a.isLoggedIn() {
		a.enterDashboard(ctx)
	}

	a.Root(ctx)
}

// Close releases the timers, the speaker, the summary job and the database.
func (a *App) Close() {
	a.summary.Stop()
	a.scheduler.Stop()
	a.speaker.Stop()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// enterDashboard mirrors what opening the main screen does: ask for
// notification permission once, load the durable stores, arm notifications
// for today's pending reminders, start the daily summary job, and greet the
// user aloud when TTS is on.
func (a *App) enterDashboard(ctx context.Context) {
	a.notifier.RequestPermission()

	if err := a.reminders.Load(ctx); err != nil {
		a.log.Error(ctx, "failed to load reminders", "error", err)
		return
	}
	if err := a.settings.Load(ctx); err != nil {
		a.log.Error(ctx, "failed to load settings", "error", err)
		return
	}

	for _, r := range a.reminders.Today() {
		if !r.Completed {
			a.scheduler.Schedule(r)
		}
	}

	if !a.summaryStarted {
		if at, err := models.ParseTimeOfDay(a.config.SummaryTime); err != nil {
			a.log.Warn(ctx, "invalid summary time, daily summary disabled", "value", a.config.SummaryTime)
		} else if err := a.summary.Start(at); err != nil {
			a.log.Warn(ctx, "failed to start daily summary", "error", err)
		} else {
			a.summaryStarted = true
		}
	}

	if a.settings.Current().TTSEnabled {
		a.speaker.Speak(a.summary.BuildMessage(), 1)
	}
}
