package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
)

// AddReminder collects reminder fields interactively and stores the result.
// Validation failures are shown to the user and the command returns nil so
// the REPL stays alive.
func (a *App) AddReminder(ctx context.Context) error {
	var draft models.ReminderDraft
	var err error

	if draft.Title, err = getSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
		return err
	}
	if draft.Time, err = getSimpleText(a.reader, "Enter time (HH:MM)", os.Stdout); err != nil {
		return err
	}
	if draft.Type, err = getSimpleText(a.reader, "Enter type (water/exercise/medication/sleep/meditation)", os.Stdout); err != nil {
		return err
	}
	if draft.Repeat, err = getSimpleText(a.reader, "Enter repeat (daily/weekly/custom)", os.Stdout); err != nil {
		return err
	}
	if draft.Notes, err = getSimpleText(a.reader, "Enter notes (optional)", os.Stdout); err != nil {
		return err
	}

	r, err := a.reminders.Add(ctx, draft)
	if err != nil {
		printlnFn("Could not add reminder:", err)
		return nil
	}

	printlnFn("Added", r.Title, "at", r.Time.String(), "— id:", r.ID)
	return nil
}

func formatReminder(r models.Reminder) string {
	status := "[ ]"
	if r.Completed {
		status = "[x]"
	}
	line := fmt.Sprintf("%s %s  %-20s %s/%s  id:%s", status, r.Time.String(), r.Title, r.Type, r.Repeat, r.ID)
	if r.Notes != "" {
		line += "\n      " + r.Notes
	}
	return line
}

// List prints every reminder in insertion order.
func (a *App) List(ctx context.Context) error {
	all := a.reminders.All()
	if len(all) == 0 {
		printlnFn("No reminders yet. Use 'add' to create one.")
		return nil
	}
	for _, r := range all {
		printlnFn(formatReminder(r))
	}
	return nil
}

// TodayList prints today's reminders.
func (a *App) TodayList(ctx context.Context) error {
	today := a.reminders.Today()
	if len(today) == 0 {
		printlnFn("Nothing scheduled for today.")
		return nil
	}
	for _, r := range today {
		printlnFn(formatReminder(r))
	}
	return nil
}

// Done toggles a reminder's completion flag.
func (a *App) Done(ctx context.Context, id string) error {
	if err := a.reminders.ToggleComplete(ctx, id); err != nil {
		return err
	}
	printlnFn("Toggled.")
	return nil
}

// Delete removes a reminder.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.reminders.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// Edit collects a partial update for the reminder with the given id. Every
// prompt may be left empty to keep the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	patch := models.ReminderPatch{}

	if v, ok, err := GetOptionalText(a.reader, "New title", os.Stdout); err != nil {
		return err
	} else if ok {
		patch.Title = &v
	}
	if v, ok, err := GetOptionalText(a.reader, "New time (HH:MM)", os.Stdout); err != nil {
		return err
	} else if ok {
		patch.Time = &v
	}
	if v, ok, err := GetOptionalText(a.reader, "New type", os.Stdout); err != nil {
		return err
	} else if ok {
		patch.Type = &v
	}
	if v, ok, err := GetOptionalText(a.reader, "New repeat", os.Stdout); err != nil {
		return err
	} else if ok {
		patch.Repeat = &v
	}
	if v, ok, err := GetOptionalText(a.reader, "New notes", os.Stdout); err != nil {
		return err
	} else if ok {
		patch.Notes = &v
	}

	if err := a.reminders.Update(ctx, id, patch); err != nil {
		printlnFn("Could not update reminder:", err)
		return nil
	}
	printlnFn("Updated.")
	return nil
}
