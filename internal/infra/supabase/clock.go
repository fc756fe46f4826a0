package supabase

import (
	"fmt"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// parseClock parses a wire time string ("HH:MM:SS" or "HH:MM") into
// wall-clock components.
func parseClock(s string) (hour, minute int, err error) {
	var sec int
	if _, e := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &sec); e != nil {
		if _, e2 := fmt.Sscanf(s, "%d:%d", &hour, &minute); e2 != nil {
			return 0, 0, fmt.Errorf("%w: time %q", domain.ErrMalformedRecord, s)
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time %q out of range", domain.ErrMalformedRecord, s)
	}
	return hour, minute, nil
}

// formatClock renders wall-clock components in the wire's "HH:MM:SS"
// shape.
func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}
