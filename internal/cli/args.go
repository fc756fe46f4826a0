package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// resolveDate turns a user-supplied date argument into a calendar date.
// Accepts "today", "tomorrow", "yesterday", and "2006-01-02".
func resolveDate(arg string, clock domain.Clock) (domain.Date, error) {
	today := domain.DateOf(clock.Now())
	switch strings.ToLower(arg) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	d, err := domain.ParseDate(arg)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q (use today, tomorrow, yesterday, or 2006-01-02)", arg)
	}
	return d, nil
}

// parseDelta parses a signed minute delta like "+30", "-15", or "45".
func parseDelta(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "+"))
	if err != nil {
		return 0, fmt.Errorf("invalid minute delta %q", arg)
	}
	return n, nil
}

// parseClockArg parses "HH:MM" into hour and minute.
func parseClockArg(arg string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(arg, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (use HH:MM)", arg)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", arg)
	}
	return hour, minute, nil
}

// formatSlot renders a task's time slot, or a placeholder for untimed
// tasks.
func formatSlot(t domain.Task) string {
	if !t.HasTimeExtent() {
		return "--:--"
	}
	return fmt.Sprintf("%02d:%02d-%02d:%02d", t.StartHour, t.StartMinute, t.EndHour, t.EndMinute)
}

// formatStatus renders completion and skip flags as a short marker.
func formatStatus(t domain.Task) string {
	switch {
	case t.IsCompleted && t.IsSkipped:
		return "done,skipped"
	case t.IsCompleted:
		return "done"
	case t.IsSkipped:
		return "skipped"
	default:
		return "open"
	}
}
