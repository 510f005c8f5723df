// Package ocrmatch is the last strategy in the chain: raw OCR plus the
// shared field pattern extractors. It is the only strategy with no model
// dependency, so it retries with different recognition settings before
// conceding.
package ocrmatch

import (
	"context"
	"fmt"
	"log"
	"time"

	"paxscan/internal/domain"
	"paxscan/internal/extract/airports"
	"paxscan/internal/extract/fields"
	"paxscan/internal/ocr"
	"paxscan/internal/port"
	"paxscan/internal/validator"
)

// attemptLevels is the fixed retry schedule: one high-accuracy pass, then
// two fast passes.
var attemptLevels = []domain.AccuracyLevel{domain.AccuracyHigh, domain.AccuracyFast, domain.AccuracyFast}

// Strategy implements port.ExtractionStrategy over a local OCR engine.
type Strategy struct {
	engine        port.OCREngine
	resolver      *airports.Resolver
	minConfidence float64
	retryPause    time.Duration
}

// NewStrategy creates the OCR+patterns strategy. retryPause separates the
// internal attempts so repeated passes do not hammer local resources.
func NewStrategy(engine port.OCREngine, resolver *airports.Resolver, minConfidence float64, retryPause time.Duration) *Strategy {
	if retryPause <= 0 {
		retryPause = 500 * time.Millisecond
	}
	return &Strategy{engine: engine, resolver: resolver, minConfidence: minConfidence, retryPause: retryPause}
}

func (s *Strategy) Name() domain.Strategy {
	return domain.StrategyOCRPattern
}

// Extract runs up to three OCR passes. The first attempt whose record is
// minimally valid short-circuits the loop; otherwise the best record seen
// so far is returned and the validator upstream decides its fate. The pause
// between attempts is cancellable and local to this call.
func (s *Strategy) Extract(ctx context.Context, image domain.ImageInput) (*port.StrategyOutput, error) {
	var best *domain.BoardingPassRecord
	var lastErr error

	for i, level := range attemptLevels {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.retryPause):
			}
		}

		obs, err := s.engine.Recognize(ctx, image, level)
		if err != nil {
			log.Printf("ocrmatch.Strategy: attempt %d (%s) failed: %v", i+1, level, err)
			lastErr = err
			continue
		}

		rec := fields.Extract(ocr.Lines(obs, s.minConfidence), s.resolver)
		if validator.Acceptable(rec) {
			return &port.StrategyOutput{Record: rec, Confidence: validator.Confidence(rec)}, nil
		}
		if best == nil || moreComplete(rec, best) {
			best = rec
		}
	}

	if best == nil {
		if lastErr != nil {
			return nil, fmt.Errorf("all ocr attempts failed: %w", lastErr)
		}
		return nil, fmt.Errorf("no ocr attempt produced text")
	}
	return &port.StrategyOutput{Record: best, Confidence: validator.Confidence(best)}, nil
}

// moreComplete orders candidate records by classification first and by
// populated field count second, so a flight-only record beats an empty one.
func moreComplete(a, b *domain.BoardingPassRecord) bool {
	ca, cb := validator.Classify(a), validator.Classify(b)
	if ca != cb {
		return ca > cb
	}
	return fieldCount(a) > fieldCount(b)
}

func fieldCount(rec *domain.BoardingPassRecord) int {
	var n int
	for _, f := range []string{
		rec.FlightNumber, rec.Airline, rec.PassengerName,
		rec.DepartureCode, rec.DepartureCity, rec.ArrivalCode, rec.ArrivalCity,
		rec.DepartureDate, rec.DepartureTime, rec.ArrivalTime,
		rec.Gate, rec.Terminal, rec.Seat,
		rec.ConfirmationCode, rec.TicketNumber, rec.BoardingTime,
	} {
		if f != "" {
			n++
		}
	}
	return n
}
