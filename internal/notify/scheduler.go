// Package notify keeps track of which task starts next so the CLI can
// surface an upcoming-task reminder.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// Scheduler watches the published task collection and answers "what
// starts soon". It holds its own copy; OnUpdate is wired as a timeline
// subscriber.
type Scheduler struct {
	lead  time.Duration
	clock domain.Clock

	mu    sync.RWMutex
	tasks []domain.Task
}

func NewScheduler(lead time.Duration, clock domain.Clock) *Scheduler {
	return &Scheduler{lead: lead, clock: clock}
}

// OnUpdate replaces the watched collection.
func (s *Scheduler) OnUpdate(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

// Upcoming returns tasks that start within the lead window, soonest
// first. Completed and skipped tasks are excluded, as are tasks that
// have already started.
func (s *Scheduler) Upcoming() []domain.Task {
	now := s.clock.Now()
	loc := now.Location()
	cutoff := now.Add(s.lead)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Task
	for _, t := range s.tasks {
		if !t.HasTimeExtent() || t.IsCompleted || t.IsSkipped {
			continue
		}
		start := t.StartAt(loc)
		if start.After(now) && !start.After(cutoff) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt(loc).Before(out[j].StartAt(loc))
	})
	return out
}

// Next returns the soonest task still ahead of now, regardless of the
// lead window. The second return is false when nothing is left.
func (s *Scheduler) Next() (domain.Task, bool) {
	now := s.clock.Now()
	loc := now.Location()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best  domain.Task
		found bool
	)
	for _, t := range s.tasks {
		if !t.HasTimeExtent() || t.IsCompleted || t.IsSkipped {
			continue
		}
		start := t.StartAt(loc)
		if !start.After(now) {
			continue
		}
		if !found || start.Before(best.StartAt(loc)) {
			best = t
			found = true
		}
	}
	return best, found
}
