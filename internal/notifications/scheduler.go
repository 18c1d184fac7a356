package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// window limits how far ahead a one-shot delivery may be armed. The rollover
// rule keeps every candidate within this horizon; the guard stays anyway.
const window = 24 * time.Hour

// NextDelay computes how long to wait until the next occurrence of t: today
// at HH:MM, or tomorrow at HH:MM when that moment is not strictly in the
// future.
func NextDelay(now time.Time, t models.TimeOfDay) time.Duration {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate.Sub(now)
}

// Scheduler arms at most one pending delivery per reminder id. Arming an id
// that already has a pending timer replaces it; Cancel stops it, so a
// reminder deleted or edited after scheduling no longer fires a stale
// notification.
type Scheduler struct {
	notifier Notifier
	log      logging.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer

	now func() time.Time
}

func NewScheduler(notifier Notifier, log logging.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		log:      log,
		timers:   make(map[string]*time.Timer),
		now:      time.Now,
	}
}

// Schedule arms a single one-shot delivery for the reminder's next
// occurrence, if it falls strictly inside the 24-hour window. Repeat
// semantics are not re-armed after firing: each call arms exactly one
// future delivery.
func (s *Scheduler) Schedule(r models.Reminder) {
	delay := NextDelay(s.now(), r.Time)
	if delay <= 0 || delay >= window {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[r.ID]; ok {
		old.Stop()
	}
	s.timers[r.ID] = time.AfterFunc(delay, func() { s.fire(r) })

	s.log.Debug(context.Background(), "reminder armed", "id", r.ID, "title", r.Title, "delay", delay)
}

// Cancel stops a pending delivery for the given reminder id. It is a no-op
// when nothing is armed.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Stop cancels every pending delivery.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports whether a delivery is currently armed for id.
func (s *Scheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

func (s *Scheduler) fire(r models.Reminder) {
	s.mu.Lock()
	delete(s.timers, r.ID)
	s.mu.Unlock()

	if !s.notifier.PermissionGranted() {
		return
	}

	body := r.Notes
	if body == "" {
		body = fmt.Sprintf("Time for your %s reminder!", r.Type)
	}

	s.notifier.Show(Notification{
		Title:              r.Title,
		Body:               body,
		Tag:                fmt.Sprintf("reminder-%d", s.now().UnixMilli()),
		RequireInteraction: true,
	})
}
