package usecase

import (
	"context"
	"log/slog"
)

// rollbackByRefetch resynchronizes the timeline from the authoritative
// remote state after a failed write. No attempt is made to reconstruct
// the exact prior state locally; the refetch may visibly revert the
// optimistic change, and that snap-back is the whole error surface the
// user sees.
func rollbackByRefetch(ctx context.Context, resync *AggregateTasks, userID, op string, cause error, logger *slog.Logger) {
	logger.Warn("remote write failed, resynchronizing", "op", op, "error", cause)
	if _, err := resync.Execute(ctx, AggregateInput{UserID: userID}); err != nil {
		logger.Error("rollback refetch failed, timeline may be stale", "op", op, "error", err)
	}
}
