package stats_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paxscan/internal/domain"
	"paxscan/internal/stats"
	"paxscan/mocks"
)

func result(requestID string) *domain.ExtractionResult {
	return &domain.ExtractionResult{
		RequestID: requestID,
		Strategy:  domain.StrategyOCRPattern,
		Record:    &domain.BoardingPassRecord{FlightNumber: "6E6252", DepartureCode: "HYD"},
	}
}

func TestAsyncRecorder_FlushesOnClose(t *testing.T) {
	repo := new(mocks.MockStatsRepository)
	repo.On("InsertAttempt", mock.Anything, mock.Anything).Return(nil)

	r := stats.NewAsyncRecorder(repo, 16)
	for i := 0; i < 5; i++ {
		r.Record(result("req-1"))
	}
	r.Close()

	repo.AssertNumberOfCalls(t, "InsertAttempt", 5)
	assert.Equal(t, int64(0), r.Dropped())
}

func TestAsyncRecorder_InsertErrorsDoNotStopDrain(t *testing.T) {
	repo := new(mocks.MockStatsRepository)
	repo.On("InsertAttempt", mock.Anything, mock.Anything).Return(errors.New("db down"))

	r := stats.NewAsyncRecorder(repo, 4)
	r.Record(result("req-1"))
	r.Record(result("req-2"))
	r.Close()

	repo.AssertNumberOfCalls(t, "InsertAttempt", 2)
}

// gateRepo blocks every insert until released, to hold the drain goroutine
// busy while the queue fills.
type gateRepo struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	seen    int
}

func (g *gateRepo) InsertAttempt(context.Context, *domain.ExtractionResult) error {
	g.started <- struct{}{}
	<-g.release
	g.mu.Lock()
	g.seen++
	g.mu.Unlock()
	return nil
}

func (g *gateRepo) GetStats(context.Context) (*domain.Stats, error) { return nil, nil }

func TestAsyncRecorder_DropsInsteadOfBlocking(t *testing.T) {
	repo := &gateRepo{started: make(chan struct{}, 8), release: make(chan struct{})}
	r := stats.NewAsyncRecorder(repo, 1)

	// First result is taken by the drain goroutine, which then parks
	// inside the repo.
	r.Record(result("in-flight"))
	<-repo.started

	r.Record(result("queued"))
	r.Record(result("dropped"))
	require.Equal(t, int64(1), r.Dropped())

	close(repo.release)
	r.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, 2, repo.seen)
}

func TestAsyncRecorder_IgnoresNilAndDoubleClose(t *testing.T) {
	repo := new(mocks.MockStatsRepository)
	r := stats.NewAsyncRecorder(repo, 0)
	r.Record(nil)
	r.Close()
	r.Close()
	repo.AssertNotCalled(t, "InsertAttempt", mock.Anything, mock.Anything)
}

func TestNopRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		stats.NopRecorder{}.Record(result("req"))
		stats.NopRecorder{}.Record(nil)
	})
}
