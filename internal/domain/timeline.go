package domain

import "sync"

// Timeline owns the published task collection. It is the single owner
// of the in-memory list: the aggregator replaces it wholesale, the
// mutation use cases apply optimistic edits through it, and everyone
// else only ever sees copies.
//
// Subscribers are invoked synchronously on the publishing goroutine,
// once per publication, with their own copy of the collection.
type Timeline struct {
	mu    sync.RWMutex
	tasks []Task
	subs  []func([]Task)
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Subscribe registers a callback for every publication.
func (tl *Timeline) Subscribe(fn func([]Task)) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.subs = append(tl.subs, fn)
}

// Snapshot returns a copy of the published collection. Ordering is not
// guaranteed; consumers that need chronological order sort explicitly.
func (tl *Timeline) Snapshot() []Task {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return copyTasks(tl.tasks)
}

// Get returns the task with the given id.
func (tl *Timeline) Get(id string) (Task, bool) {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	for i := range tl.tasks {
		if tl.tasks[i].ID == id {
			return tl.tasks[i], true
		}
	}
	return Task{}, false
}

// Day returns the tasks belonging to one calendar date, in published
// order.
func (tl *Timeline) Day(d Date) []Task {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	var out []Task
	for i := range tl.tasks {
		if tl.tasks[i].Date == d {
			out = append(out, tl.tasks[i])
		}
	}
	return out
}

// Replace swaps in a new collection and publishes it.
func (tl *Timeline) Replace(tasks []Task) {
	tl.mu.Lock()
	tl.tasks = copyTasks(tasks)
	tl.publishLocked()
}

// Apply mutates one task in place and publishes. Returns false if the
// id is not present.
func (tl *Timeline) Apply(id string, mutate func(*Task)) bool {
	tl.mu.Lock()
	for i := range tl.tasks {
		if tl.tasks[i].ID == id {
			mutate(&tl.tasks[i])
			tl.publishLocked()
			return true
		}
	}
	tl.mu.Unlock()
	return false
}

// Add appends a task and publishes.
func (tl *Timeline) Add(t Task) {
	tl.mu.Lock()
	tl.tasks = append(tl.tasks, t)
	tl.publishLocked()
}

// Remove deletes a task by id and publishes. Returns false if the id
// is not present.
func (tl *Timeline) Remove(id string) bool {
	tl.mu.Lock()
	for i := range tl.tasks {
		if tl.tasks[i].ID == id {
			tl.tasks = append(tl.tasks[:i], tl.tasks[i+1:]...)
			tl.publishLocked()
			return true
		}
	}
	tl.mu.Unlock()
	return false
}

// Rebind replaces a provisional task with its remote-confirmed form
// (same slot, new ids) and publishes. Returns false if the provisional
// id is not present.
func (tl *Timeline) Rebind(provisionalID string, t Task) bool {
	tl.mu.Lock()
	for i := range tl.tasks {
		if tl.tasks[i].ID == provisionalID {
			tl.tasks[i] = t
			tl.publishLocked()
			return true
		}
	}
	tl.mu.Unlock()
	return false
}

// publishLocked snapshots under the held write lock, releases it, and
// fans out. Subscribers must not assume they run under the lock.
func (tl *Timeline) publishLocked() {
	snapshot := copyTasks(tl.tasks)
	subs := make([]func([]Task), len(tl.subs))
	copy(subs, tl.subs)
	tl.mu.Unlock()
	for _, fn := range subs {
		fn(copyTasks(snapshot))
	}
}

func copyTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
