package service

import (
	"context"
	"time"

	"paxscan/internal/domain"
	"paxscan/internal/port"
	"paxscan/internal/report"
)

// StatsService provides aggregate usage statistics.
type StatsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	StatsReport(ctx context.Context) (filename string, content []byte, err error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.statsRepo.GetStats(ctx)
}

func (s *statsService) StatsReport(ctx context.Context) (string, []byte, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return "", nil, err
	}
	content, err := report.StatsWorkbook(stats)
	if err != nil {
		return "", nil, err
	}
	return report.Filename(time.Now()), content, nil
}
