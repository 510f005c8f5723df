package port

import (
	"context"

	"paxscan/internal/domain"
)

// StatsRepository persists extraction attempts and serves aggregate queries.
// The attempts table is append-only.
type StatsRepository interface {
	InsertAttempt(ctx context.Context, res *domain.ExtractionResult) error
	GetStats(ctx context.Context) (*domain.Stats, error)
}

// StatsRecorder is the fire-and-forget usage sink the pipeline writes to.
// Record must never block the caller; concurrent callers are expected.
type StatsRecorder interface {
	Record(res *domain.ExtractionResult)
}
