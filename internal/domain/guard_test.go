package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditGuard_BeginEndIdempotent(t *testing.T) {
	g := NewEditGuard()

	assert.False(t, g.IsGuarded("t1"))

	g.Begin("t1")
	g.Begin("t1") // re-entry is a no-op
	assert.True(t, g.IsGuarded("t1"))

	g.End("t1")
	assert.False(t, g.IsGuarded("t1"))
	g.End("t1") // ending a non-guarded id is a no-op
	assert.False(t, g.IsGuarded("t1"))
}

func TestEditGuard_HoldReleasesOnce(t *testing.T) {
	g := NewEditGuard()

	release := g.Hold("t1")
	assert.True(t, g.IsGuarded("t1"))

	// Another caller re-guards the same id after our release; a second
	// release call must not strip their guard.
	release()
	assert.False(t, g.IsGuarded("t1"))
	g.Begin("t1")
	release()
	assert.True(t, g.IsGuarded("t1"))
}

func TestEditGuard_ConcurrentAccess(t *testing.T) {
	g := NewEditGuard()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := g.Hold("shared")
			g.IsGuarded("shared")
			release()
		}()
	}
	wg.Wait()
	assert.False(t, g.IsGuarded("shared"))
}
