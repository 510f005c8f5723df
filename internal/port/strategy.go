package port

import (
	"context"

	"paxscan/internal/domain"
)

// StrategyOutput is the candidate a single strategy produced. Record may be
// nil or partial; the orchestrator's validator decides whether it is kept.
type StrategyOutput struct {
	Record     *domain.BoardingPassRecord
	Confidence float64
	TokenCost  *domain.TokenCost
}

// ExtractionStrategy is one self-contained method of turning an image into a
// candidate boarding-pass record.
type ExtractionStrategy interface {
	Name() domain.Strategy
	Extract(ctx context.Context, image domain.ImageInput) (*StrategyOutput, error)
}
