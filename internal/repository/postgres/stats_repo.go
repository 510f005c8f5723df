package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"paxscan/internal/domain"
	"paxscan/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const insertAttemptQuery = `INSERT INTO extraction_attempts
	(id, request_id, strategy, succeeded, elapsed_ms, confidence, tokens, estimated_cost, error)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *statsRepo) InsertAttempt(ctx context.Context, res *domain.ExtractionResult) error {
	var tokens int
	var cost float64
	if res.TokenCost != nil {
		tokens = res.TokenCost.Tokens
		cost = res.TokenCost.EstimatedCost
	}
	if _, err := r.db.ExecContext(ctx, insertAttemptQuery,
		uuid.New(), res.RequestID, res.Strategy, res.Succeeded(),
		res.Elapsed.Milliseconds(), res.Confidence, tokens, cost, res.Error,
	); err != nil {
		return fmt.Errorf("statsRepo.InsertAttempt: %w", err)
	}
	return nil
}

const strategyStatsQuery = `SELECT
	strategy,
	COUNT(*) AS attempts,
	COUNT(CASE WHEN succeeded THEN 1 END) AS successes,
	COUNT(CASE WHEN NOT succeeded THEN 1 END) AS failures,
	COALESCE(AVG(elapsed_ms), 0) AS avg_elapsed_ms,
	COALESCE(SUM(tokens), 0) AS total_tokens,
	COALESCE(SUM(estimated_cost), 0) AS estimated_cost
FROM extraction_attempts
GROUP BY strategy
ORDER BY strategy`

func (r *statsRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	var perStrategy []domain.StrategyStats
	if err := r.db.SelectContext(ctx, &perStrategy, strategyStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats: %w", err)
	}

	stats := &domain.Stats{PerStrategy: perStrategy}
	for _, s := range perStrategy {
		stats.TotalAttempts += s.Attempts
		stats.TotalSuccesses += s.Successes
	}
	return stats, nil
}
