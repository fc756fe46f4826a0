// Package usecase implements the application's use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

// AggregateInput contains the parameters for one aggregation pass.
type AggregateInput struct {
	UserID string
}

// AggregateOutput contains the result of one aggregation pass.
type AggregateOutput struct {
	Tasks         []domain.Task
	FailedSources int
}

// AggregateTasks fetches every source table concurrently, merges the
// results into one normalized collection, and publishes it to the
// timeline exactly once per completed pass.
//
// A single source failure degrades to "that source returned empty";
// only a pass in which every source fails keeps the previous snapshot
// and reports an error. Merging and publishing are serialized, so when
// passes race, the last pass to complete wins the publish.
type AggregateTasks struct {
	sources  []domain.TaskSource
	timeline *domain.Timeline
	guard    *domain.EditGuard
	logger   *slog.Logger

	mu sync.Mutex // serializes merge + publish
}

// NewAggregateTasks creates a new AggregateTasks use case.
func NewAggregateTasks(sources []domain.TaskSource, timeline *domain.Timeline, guard *domain.EditGuard, logger *slog.Logger) *AggregateTasks {
	return &AggregateTasks{
		sources:  sources,
		timeline: timeline,
		guard:    guard,
		logger:   logger,
	}
}

// Execute runs one fetch-and-merge cycle for the user.
func (uc *AggregateTasks) Execute(ctx context.Context, in AggregateInput) (*AggregateOutput, error) {
	results := make([][]domain.Task, len(uc.sources))
	failures := make([]bool, len(uc.sources))

	var wg sync.WaitGroup
	for i, src := range uc.sources {
		wg.Add(1)
		go func(i int, src domain.TaskSource) {
			defer wg.Done()
			tasks, err := src.Fetch(ctx, in.UserID)
			if err != nil {
				uc.logger.Warn("source fetch failed, continuing without it",
					"source", string(src.Kind()), "error", err)
				failures[i] = true
				return
			}
			results[i] = tasks
		}(i, src)
	}
	wg.Wait()

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	if len(uc.sources) > 0 && failed == len(uc.sources) {
		// Keep the stale snapshot rather than wiping the view.
		return nil, fmt.Errorf("aggregate tasks: %w", domain.ErrSourceUnavailable)
	}

	merged := make([]domain.Task, 0, totalLen(results))
	for _, tasks := range results {
		merged = append(merged, tasks...)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	prev := make(map[string]domain.Task)
	for _, t := range uc.timeline.Snapshot() {
		prev[t.ID] = t
	}
	for i := range merged {
		t := &merged[i]
		if !uc.guard.IsGuarded(t.ID) {
			continue
		}
		old, ok := prev[t.ID]
		if !ok {
			continue
		}
		// A drag or toggle in progress must never be snapped back by a
		// refresh that raced it: keep the locally edited fields and
		// adopt everything else from this pass.
		t.StartHour, t.StartMinute = old.StartHour, old.StartMinute
		t.EndHour, t.EndMinute = old.EndHour, old.EndMinute
		t.IsCompleted = old.IsCompleted
		t.IsSkipped = old.IsSkipped
		t.SkipReason = old.SkipReason
	}

	uc.timeline.Replace(merged)
	uc.logger.Debug("aggregation pass published", "tasks", len(merged), "failed_sources", failed)

	return &AggregateOutput{Tasks: merged, FailedSources: failed}, nil
}

func totalLen(results [][]domain.Task) int {
	n := 0
	for _, r := range results {
		n += len(r)
	}
	return n
}
