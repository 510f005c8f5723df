// Package pipeline drives the ordered strategy chain. Strategies run
// strictly sequentially to bound monetary and latency cost; the first one
// whose record passes the minimal gate wins and nothing after it runs.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"paxscan/internal/domain"
	"paxscan/internal/port"
	"paxscan/internal/validator"
)

// Orchestrator owns one fallback chain. It holds no per-request state
// beyond the stack frame, so concurrent Extract calls are independent.
type Orchestrator struct {
	strategies []port.ExtractionStrategy
	probe      port.NetworkProbe
	stats      port.StatsRecorder
}

// New creates an orchestrator over an ordered strategy list.
func New(strategies []port.ExtractionStrategy, probe port.NetworkProbe, stats port.StatsRecorder) *Orchestrator {
	return &Orchestrator{strategies: strategies, probe: probe, stats: stats}
}

// Extract runs the chain over one image. All strategy failures are recorded
// as data and the chain continues; the only errors returned are context
// cancellation and exhaustion of every strategy.
func (o *Orchestrator) Extract(ctx context.Context, image domain.ImageInput) (*domain.BoardingPassRecord, error) {
	if len(image.Bytes) == 0 {
		return nil, domain.ErrEmptyImage
	}

	requestID := uuid.New().String()
	// Polled once per invocation, not per strategy.
	networkUp := o.probe.IsAvailable()

	for _, s := range o.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if s.Name().RequiresNetwork() && !networkUp {
			log.Printf("pipeline.Orchestrator: [%s] skipping %s: network unavailable", requestID, s.Name())
			o.record(&domain.ExtractionResult{
				RequestID: requestID,
				Strategy:  s.Name(),
				Error:     domain.ErrStrategyUnavailable.Error(),
			})
			continue
		}

		start := time.Now()
		out, err := s.Extract(ctx, image)
		elapsed := time.Since(start)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		res := &domain.ExtractionResult{
			RequestID: requestID,
			Strategy:  s.Name(),
			Elapsed:   elapsed,
		}
		switch {
		case err != nil:
			res.Error = err.Error()
			log.Printf("pipeline.Orchestrator: [%s] %s failed after %s: %v", requestID, s.Name(), elapsed.Round(time.Millisecond), err)
		case !validator.Acceptable(out.Record):
			res.Error = domain.ErrRecordBelowMinimal.Error()
			log.Printf("pipeline.Orchestrator: [%s] %s produced %s record, continuing", requestID, s.Name(), validator.Classify(out.Record))
		default:
			res.Record = out.Record
			res.Confidence = out.Confidence
			res.TokenCost = out.TokenCost
			o.record(res)
			log.Printf("pipeline.Orchestrator: [%s] accepted %s record from %s (confidence %.2f) in %s",
				requestID, validator.Classify(out.Record), s.Name(), out.Confidence, elapsed.Round(time.Millisecond))
			return out.Record, nil
		}
		o.record(res)
	}

	log.Printf("pipeline.Orchestrator: [%s] %v", requestID, domain.ErrAllStrategiesExhausted)
	return nil, domain.ErrAllStrategiesExhausted
}

// record forwards an attempt to the statistics sink. Fire and forget: the
// sink must never block or fail the pipeline.
func (o *Orchestrator) record(res *domain.ExtractionResult) {
	if o.stats != nil {
		o.stats.Record(res)
	}
}
