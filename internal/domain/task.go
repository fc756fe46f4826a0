// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// OriginalKind identifies the source table a task was loaded from.
// It is decoded once at the adapter boundary and is the only value used
// to route write-backs; display logic must never consult it.
type OriginalKind string

const (
	OriginalTimeBlock OriginalKind = "time_block"
	OriginalMeeting   OriginalKind = "meeting"
	OriginalTodo      OriginalKind = "todo"
)

// Valid returns true if the kind names a known source table.
func (k OriginalKind) Valid() bool {
	switch k {
	case OriginalTimeBlock, OriginalMeeting, OriginalTodo:
		return true
	}
	return false
}

// Kind is the presentation category of a task. It is not 1:1 with
// OriginalKind: a meeting record can render as a social item while
// still writing back to the meetings table.
type Kind string

const (
	KindTimeBlock Kind = "time_block"
	KindMeeting   Kind = "meeting"
	KindTodo      Kind = "todo"
	KindSocial    Kind = "social"
)

// Valid returns true if the kind is a known presentation category.
func (k Kind) Valid() bool {
	switch k {
	case KindTimeBlock, KindMeeting, KindTodo, KindSocial:
		return true
	}
	return false
}

// AllKinds returns all valid presentation kinds.
func AllKinds() []Kind {
	return []Kind{KindTimeBlock, KindMeeting, KindTodo, KindSocial}
}

// Priority represents task urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid returns true if the priority is a known level.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority maps a wire string to a Priority, defaulting to normal
// for empty or unknown values.
func ParsePriority(s string) Priority {
	p := Priority(s)
	if !p.Valid() {
		return PriorityNormal
	}
	return p
}

// Date is a calendar date with no time component. Wall-clock hours and
// minutes are kept separately on Task so offset math never crosses
// timezone or DST boundaries.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "2006-01-02" date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as "2006-01-02".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// At returns the moment at the given wall-clock time on this date in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.At(12, 0, time.UTC).AddDate(0, 0, n))
}

const (
	// MinutesPerDay is the number of wall-clock minutes in one day.
	MinutesPerDay = 24 * 60

	// EndOfDayMinutes is the clamp target for entities that would end
	// past midnight: 23:59, never a roll into the next day.
	EndOfDayMinutes = MinutesPerDay - 1

	// MinSlotMinutes is the smallest renderable time slot.
	MinSlotMinutes = 15
)

// Task is the normalized, source-agnostic entity representing one
// schedulable or checkable item. Instances are replaced wholesale by
// aggregation passes; time fields and completion/skip flags of guarded
// tasks survive a racing refresh (see EditGuard).
type Task struct {
	ID           string       // stable synthetic id, unique across sources
	OriginalID   string       // id in the source table, for write-back routing
	OriginalKind OriginalKind // which table produced this entity
	Kind         Kind         // presentation category
	Subtype      string       // time-block subtype ("focus", "break", ...), empty otherwise
	Title        string
	Description  string
	Notes        string
	Date         Date
	StartHour    int
	StartMinute  int
	EndHour      int
	EndMinute    int
	Priority     Priority
	IsCompleted  bool
	IsSkipped    bool
	SkipReason   string
	MeetingLink  string
}

// StartMinutes returns the start as minutes from midnight.
func (t *Task) StartMinutes() int {
	return t.StartHour*60 + t.StartMinute
}

// EndMinutes returns the end as minutes from midnight.
func (t *Task) EndMinutes() int {
	return t.EndHour*60 + t.EndMinute
}

// SetStartMinutes sets the start from minutes-from-midnight, clamped
// into the day.
func (t *Task) SetStartMinutes(m int) {
	m = clampMinutes(m)
	t.StartHour, t.StartMinute = m/60, m%60
}

// SetEndMinutes sets the end from minutes-from-midnight, clamped into
// the day.
func (t *Task) SetEndMinutes(m int) {
	m = clampMinutes(m)
	t.EndHour, t.EndMinute = m/60, m%60
}

// DurationMinutes returns the slot length in minutes. Can be zero or
// negative for malformed spans; callers decide how to treat those.
func (t *Task) DurationMinutes() int {
	return t.EndMinutes() - t.StartMinutes()
}

// HasTimeExtent reports whether the task occupies a slot on the grid.
// To-dos and entities with all-zero clock fields do not.
func (t *Task) HasTimeExtent() bool {
	if t.Kind == KindTodo {
		return false
	}
	return t.StartMinutes() != 0 || t.EndMinutes() != 0
}

// StartAt derives the start timestamp in loc. Derived values are for
// duration math and "is now / is past" queries only, never the source
// of truth.
func (t *Task) StartAt(loc *time.Location) time.Time {
	return t.Date.At(t.StartHour, t.StartMinute, loc)
}

// EndAt derives the end timestamp in loc.
func (t *Task) EndAt(loc *time.Location) time.Time {
	return t.Date.At(t.EndHour, t.EndMinute, loc)
}

// IsPast reports whether the task's slot has fully elapsed at now.
func (t *Task) IsPast(now time.Time) bool {
	return t.EndAt(now.Location()).Before(now)
}

// IsNow reports whether now falls inside the task's slot.
func (t *Task) IsNow(now time.Time) bool {
	start, end := t.StartAt(now.Location()), t.EndAt(now.Location())
	return !now.Before(start) && now.Before(end)
}

// Overlaps reports whether two same-day tasks collide in time.
// Strict inequalities: a slot ending exactly when another begins does
// not overlap, and zero-width slots overlap nothing.
func (t *Task) Overlaps(o *Task) bool {
	return t.StartMinutes() < o.EndMinutes() && o.StartMinutes() < t.EndMinutes()
}

func clampMinutes(m int) int {
	if m < 0 {
		return 0
	}
	if m > EndOfDayMinutes {
		return EndOfDayMinutes
	}
	return m
}
