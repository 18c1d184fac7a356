package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/repositories/kv"
	"github.com/dmitrijs2005/healthmate/internal/common"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// ReminderScheduler is the slice of the notification scheduler the store
// needs: arm on create, disarm on delete/update.
type ReminderScheduler interface {
	Schedule(r models.Reminder)
	Cancel(id string)
}

// ReminderService owns the reminder collection. Every mutation updates the
// in-memory slice and rewrites the full durable record, preserving insertion
// order. No other component mutates reminders directly.
type ReminderService struct {
	db        *sql.DB
	log       logging.Logger
	scheduler ReminderScheduler

	mu        sync.Mutex
	reminders []models.Reminder

	now   func() time.Time
	newID func() string
}

func NewReminderService(db *sql.DB, scheduler ReminderScheduler, log logging.Logger) *ReminderService {
	return &ReminderService{
		db:        db,
		log:       log,
		scheduler: scheduler,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *ReminderService) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// defaultReminders are seeded on first load, before the user has created
// anything of their own.
func (s *ReminderService) defaultReminders() []models.Reminder {
	createdAt := s.now()
	return []models.Reminder{
		{
			ID:        s.newID(),
			Title:     "Morning Water",
			Time:      models.TimeOfDay{Hour: 8},
			Type:      models.ReminderTypeWater,
			Repeat:    models.RepeatDaily,
			Notes:     "Start your day with a glass of water",
			CreatedAt: createdAt,
		},
		{
			ID:        s.newID(),
			Title:     "Morning Exercise",
			Time:      models.TimeOfDay{Hour: 9},
			Type:      models.ReminderTypeExercise,
			Repeat:    models.RepeatDaily,
			Notes:     "30 minutes of cardio or yoga",
			CreatedAt: createdAt,
		},
		{
			ID:        s.newID(),
			Title:     "Take Vitamins",
			Time:      models.TimeOfDay{Hour: 12},
			Type:      models.ReminderTypeMedication,
			Repeat:    models.RepeatDaily,
			Notes:     "Don't forget your daily vitamins",
			CreatedAt: createdAt,
		},
	}
}

// Load adopts the durable collection into memory. With no durable record
// present (or a corrupt one) it seeds the three canonical defaults and
// persists them immediately.
func (s *ReminderService) Load(ctx context.Context) error {
	raw, err := s.repo().Get(ctx, keyReminders)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if raw != nil {
		var reminders []models.Reminder
		if uerr := json.Unmarshal(raw, &reminders); uerr != nil {
			s.log.Warn(ctx, "reminders record is corrupt, reseeding defaults", "error", uerr)
		} else {
			s.reminders = reminders
			return nil
		}
	}

	s.reminders = s.defaultReminders()
	return s.persistLocked(ctx)
}

func (s *ReminderService) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.reminders)
	if err != nil {
		return err
	}
	return s.repo().Set(ctx, keyReminders, raw)
}

func validateDraft(draft models.ReminderDraft) (models.Reminder, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.Reminder{}, common.ErrorEmptyTitle
	}
	tod, err := models.ParseTimeOfDay(draft.Time)
	if err != nil {
		return models.Reminder{}, err
	}
	typ, err := models.ParseReminderType(draft.Type)
	if err != nil {
		return models.Reminder{}, err
	}
	repeat, err := models.ParseRepeatKind(draft.Repeat)
	if err != nil {
		return models.Reminder{}, err
	}
	return models.Reminder{
		Title:  draft.Title,
		Time:   tod,
		Type:   typ,
		Repeat: repeat,
		Notes:  draft.Notes,
	}, nil
}

// Add validates the draft, assigns identity and creation metadata, appends
// the reminder, persists the collection and arms a notification for it.
// Drafts are validated here, at the store boundary, so malformed times or
// unknown types never reach the scheduler.
func (s *ReminderService) Add(ctx context.Context, draft models.ReminderDraft) (models.Reminder, error) {
	r, err := validateDraft(draft)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("invalid reminder: %w", err)
	}
	r.ID = s.newID()
	r.Completed = false
	r.CreatedAt = s.now()

	s.mu.Lock()
	s.reminders = append(s.reminders, r)
	err = s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return models.Reminder{}, err
	}

	s.scheduler.Schedule(r)
	s.log.Info(ctx, "reminder added", "id", r.ID, "title", r.Title, "time", r.Time.String())
	return r, nil
}

// Update merges the patch onto the reminder with the given id and persists.
// Unknown ids are a no-op. A pending notification for the reminder is
// replaced so a stale delivery cannot fire with the old time.
func (s *ReminderService) Update(ctx context.Context, id string, patch models.ReminderPatch) error {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	r := s.reminders[idx]
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			s.mu.Unlock()
			return common.ErrorEmptyTitle
		}
		r.Title = *patch.Title
	}
	if patch.Time != nil {
		tod, err := models.ParseTimeOfDay(*patch.Time)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		r.Time = tod
	}
	if patch.Type != nil {
		typ, err := models.ParseReminderType(*patch.Type)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		r.Type = typ
	}
	if patch.Repeat != nil {
		repeat, err := models.ParseRepeatKind(*patch.Repeat)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		r.Repeat = repeat
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.Completed != nil {
		r.Completed = *patch.Completed
	}

	s.reminders[idx] = r
	err := s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.scheduler.Cancel(id)
	s.scheduler.Schedule(r)
	return nil
}

// Delete removes the reminder with the given id and cancels its pending
// notification. Unknown ids are a no-op.
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	s.reminders = append(s.reminders[:idx], s.reminders[idx+1:]...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.scheduler.Cancel(id)
	s.log.Info(ctx, "reminder deleted", "id", id)
	return nil
}

// ToggleComplete flips the completed flag. Applying it twice restores the
// original value. Unknown ids are a no-op.
func (s *ReminderService) ToggleComplete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	s.reminders[idx].Completed = !s.reminders[idx].Completed
	return s.persistLocked(ctx)
}

func (s *ReminderService) indexLocked(id string) int {
	for i, r := range s.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// All returns a copy of the collection in insertion order.
func (s *ReminderService) All() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reminder(nil), s.reminders...)
}

// Today returns the daily reminders in insertion order.
func (s *ReminderService) Today() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Reminder
	for _, r := range s.reminders {
		if r.Repeat == models.RepeatDaily {
			out = append(out, r)
		}
	}
	return out
}

// CompletedCount counts completed reminders over the whole collection (not
// scoped to today; callers frame it as "today's" count regardless).
func (s *ReminderService) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.reminders {
		if r.Completed {
			n++
		}
	}
	return n
}

// Streak derives a motivational streak number from the completed count. It
// is intentionally not a calendar streak: no dates are tracked, the value is
// purely a function of how many reminders are currently completed.
func (s *ReminderService) Streak() int {
	n := s.CompletedCount()
	if n > 0 {
		return n/2 + 1
	}
	return 0
}

// TypeCounts breaks the collection down by reminder type for the stats view.
func (s *ReminderService) TypeCounts() map[models.ReminderType]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[models.ReminderType]int)
	for _, r := range s.reminders {
		counts[r.Type]++
	}
	return counts
}

// WeeklyProgress returns seven data points for the stats view: six fixed
// sample days plus the live completed count for today.
func (s *ReminderService) WeeklyProgress() []int {
	return []int{3, 2, 4, 3, 5, 4, s.CompletedCount()}
}
