// Package shared provides helpers used across use cases.
package shared

import "github.com/AlaxSwum/focus-cli/internal/domain"

// snapStep is the drag grid in minutes.
const snapStep = 15

// intentThreshold is the raw magnitude below which a drag is treated
// as accidental.
const intentThreshold = 5

// RoundDelta snaps a raw drag delta (minutes) to the 15-minute grid.
// Deltas under 5 minutes collapse to 0. A delta of at least 5 minutes
// whose nearest grid step is 0 is forced to the nearest nonzero step,
// so a small but intentional drag is never silently dropped.
func RoundDelta(raw int) int {
	abs, sign := raw, 1
	if raw < 0 {
		abs, sign = -raw, -1
	}
	if abs < intentThreshold {
		return 0
	}
	snapped := (abs + snapStep/2) / snapStep * snapStep
	if snapped == 0 {
		snapped = snapStep
	}
	return sign * snapped
}

// Shift moves both endpoints of a task by delta minutes. Endpoints are
// clamped at the day boundaries (00:00 and 23:59); a slot pushed into
// a boundary compresses rather than rolling into an adjacent day.
func Shift(t *domain.Task, delta int) {
	t.SetStartMinutes(t.StartMinutes() + delta)
	t.SetEndMinutes(t.EndMinutes() + delta)
}

// Extend moves only the end of a task by delta minutes, clamped at
// 23:59. Returns false, leaving the task unchanged, when the result
// would be shorter than the minimum slot.
func Extend(t *domain.Task, delta int) bool {
	end := t.EndMinutes() + delta
	if end > domain.EndOfDayMinutes {
		end = domain.EndOfDayMinutes
	}
	if end-t.StartMinutes() < domain.MinSlotMinutes {
		return false
	}
	t.SetEndMinutes(end)
	return true
}
