package cli

import (
	"context"
	"fmt"
	"strings"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Stats prints the completion summary: totals, streak, per-type breakdown
// and the weekly progress chart.
func (a *App) Stats(ctx context.Context) error {
	all := a.reminders.All()
	completed := a.reminders.CompletedCount()

	printlnFn(fmt.Sprintf("Reminders: %d total, %d completed", len(all), completed))
	printlnFn(fmt.Sprintf("Streak: %d day(s)", a.reminders.Streak()))

	counts := a.reminders.TypeCounts()
	if len(counts) > 0 {
		printlnFn("By type:")
		for _, r := range all {
			if n, ok := counts[r.Type]; ok {
				printlnFn(fmt.Sprintf("  %-12s %d", r.Type, n))
				delete(counts, r.Type)
			}
		}
	}

	printlnFn("Weekly progress:")
	for i, n := range a.reminders.WeeklyProgress() {
		printlnFn(fmt.Sprintf("  %s %s (%d)", weekdayLabels[i], strings.Repeat("#", n), n))
	}
	return nil
}
