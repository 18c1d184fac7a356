package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/healthmate/internal/common"
)

// ReminderType classifies what a reminder is about.
type ReminderType string

const (
	ReminderTypeWater      ReminderType = "water"
	ReminderTypeExercise   ReminderType = "exercise"
	ReminderTypeMedication ReminderType = "medication"
	ReminderTypeSleep      ReminderType = "sleep"
	ReminderTypeMeditation ReminderType = "meditation"
)

// ParseReminderType validates a raw type value.
func ParseReminderType(s string) (ReminderType, error) {
	switch t := ReminderType(s); t {
	case ReminderTypeWater, ReminderTypeExercise, ReminderTypeMedication,
		ReminderTypeSleep, ReminderTypeMeditation:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrorUnknownType, s)
}

// RepeatKind describes the recurrence of a reminder.
type RepeatKind string

const (
	RepeatDaily  RepeatKind = "daily"
	RepeatWeekly RepeatKind = "weekly"
	RepeatCustom RepeatKind = "custom"
)

// ParseRepeatKind validates a raw repeat value.
func ParseRepeatKind(s string) (RepeatKind, error) {
	switch r := RepeatKind(s); r {
	case RepeatDaily, RepeatWeekly, RepeatCustom:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrorUnknownRepeat, s)
}

// TimeOfDay is a validated wall-clock time. It serializes as "HH:MM" in
// 24-hour notation, the format the rest of the system speaks.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses strict 24-hour "HH:MM". Anything else is rejected at
// the boundary so the scheduler never sees a nonsensical time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", common.ErrorInvalidTimeOfDay, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", common.ErrorInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", common.ErrorInvalidTimeOfDay, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Reminder is a scheduled wellness habit owned by the reminder store.
// ID is unique within the collection; CreatedAt serializes as RFC 3339.
type Reminder struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Time      TimeOfDay    `json:"time"`
	Type      ReminderType `json:"type"`
	Repeat    RepeatKind   `json:"repeat"`
	Notes     string       `json:"notes,omitempty"`
	Completed bool         `json:"completed"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ReminderDraft carries raw user input for a new reminder. Values are kept
// as strings so validation happens in one place, at the store boundary.
type ReminderDraft struct {
	Title  string
	Time   string
	Type   string
	Repeat string
	Notes  string
}

// ReminderPatch is a partial update. Nil fields are left untouched.
// Raw string fields go through the same validation as drafts.
type ReminderPatch struct {
	Title     *string
	Time      *string
	Type      *string
	Repeat    *string
	Notes     *string
	Completed *bool
}
