// Package stats implements the usage sink. Writes are decoupled from the
// extraction path by a buffered channel so a slow or down database can
// never stall a request.
package stats

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"paxscan/internal/domain"
	"paxscan/internal/port"
)

const insertTimeout = 5 * time.Second

// AsyncRecorder drains extraction results into a StatsRepository on a
// single background goroutine. When the buffer is full new results are
// dropped and counted instead of blocking the pipeline.
type AsyncRecorder struct {
	repo    port.StatsRepository
	queue   chan *domain.ExtractionResult
	dropped atomic.Int64
	done    chan struct{}
	once    sync.Once
}

// NewAsyncRecorder starts the drain goroutine. buffer <= 0 falls back to
// a small default.
func NewAsyncRecorder(repo port.StatsRepository, buffer int) *AsyncRecorder {
	if buffer <= 0 {
		buffer = 64
	}
	r := &AsyncRecorder{
		repo:  repo,
		queue: make(chan *domain.ExtractionResult, buffer),
		done:  make(chan struct{}),
	}
	go r.drain()
	return r
}

// Record enqueues a result without blocking. Safe for concurrent use.
func (r *AsyncRecorder) Record(res *domain.ExtractionResult) {
	if res == nil {
		return
	}
	select {
	case r.queue <- res:
	default:
		n := r.dropped.Add(1)
		if n%100 == 1 {
			log.Printf("stats.AsyncRecorder: buffer full, dropped %d results so far", n)
		}
	}
}

// Dropped reports how many results were discarded because the buffer
// was full.
func (r *AsyncRecorder) Dropped() int64 {
	return r.dropped.Load()
}

// Close stops accepting results and waits for the queue to flush.
func (r *AsyncRecorder) Close() {
	r.once.Do(func() {
		close(r.queue)
		<-r.done
	})
}

func (r *AsyncRecorder) drain() {
	defer close(r.done)
	for res := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), insertTimeout)
		if err := r.repo.InsertAttempt(ctx, res); err != nil {
			log.Printf("stats.AsyncRecorder: insert attempt %s/%s: %v", res.RequestID, res.Strategy, err)
		}
		cancel()
	}
}

// NopRecorder discards everything. Used by the one-shot CLI and in tests
// where persistence is irrelevant.
type NopRecorder struct{}

func (NopRecorder) Record(*domain.ExtractionResult) {}
