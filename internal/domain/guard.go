package domain

import "sync"

// EditGuard is the registry of task ids currently under local,
// unconfirmed edit. While an id is guarded, a racing aggregation pass
// must not overwrite that task's time fields or completion/skip flags.
//
// Membership is the only state: there is no payload and no expiry.
// Begin and End are idempotent, and Hold wraps the pair in a scoped
// acquisition so a forgotten End cannot leak a permanent lock.
type EditGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewEditGuard creates an empty guard registry.
func NewEditGuard() *EditGuard {
	return &EditGuard{held: make(map[string]struct{})}
}

// Begin marks the task as under local edit. Re-entering an already
// guarded id is a no-op.
func (g *EditGuard) Begin(taskID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.held[taskID] = struct{}{}
}

// End releases the guard. Ending a non-guarded id is a no-op.
func (g *EditGuard) End(taskID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, taskID)
}

// IsGuarded reports whether the task is under local edit.
func (g *EditGuard) IsGuarded(taskID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.held[taskID]
	return ok
}

// Hold begins a guard and returns its release function. The release is
// idempotent, so callers can both defer it for panic safety and invoke
// it explicitly once the remote write has settled.
func (g *EditGuard) Hold(taskID string) (release func()) {
	g.Begin(taskID)
	var once sync.Once
	return func() {
		once.Do(func() { g.End(taskID) })
	}
}
