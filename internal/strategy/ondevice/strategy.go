// Package ondevice is the second strategy in the chain: a fast OCR pass
// produces text, a local language model restructures it, and the loose
// key/value parser turns the model's free-text answer into a record. When
// the model contributes nothing usable the raw OCR text falls through to
// the shared field pattern extractors.
package ondevice

import (
	"context"
	"fmt"
	"strings"

	"paxscan/internal/domain"
	"paxscan/internal/extract/airports"
	"paxscan/internal/extract/fields"
	"paxscan/internal/ocr"
	"paxscan/internal/port"
	"paxscan/internal/validator"
)

// Strategy implements port.ExtractionStrategy over a text-only local model.
type Strategy struct {
	model         port.OnDeviceModel
	engine        port.OCREngine
	resolver      *airports.Resolver
	minConfidence float64
}

// NewStrategy creates the on-device strategy.
func NewStrategy(model port.OnDeviceModel, engine port.OCREngine, resolver *airports.Resolver, minConfidence float64) *Strategy {
	return &Strategy{model: model, engine: engine, resolver: resolver, minConfidence: minConfidence}
}

func (s *Strategy) Name() domain.Strategy {
	return domain.StrategyOnDevice
}

func (s *Strategy) Extract(ctx context.Context, image domain.ImageInput) (*port.StrategyOutput, error) {
	obs, err := s.engine.Recognize(ctx, image, domain.AccuracyFast)
	if err != nil {
		return nil, fmt.Errorf("ocr pass: %w", err)
	}
	lines := ocr.Lines(obs, s.minConfidence)
	if len(lines) == 0 {
		return nil, fmt.Errorf("ocr pass produced no usable text")
	}

	answer, err := s.model.Respond(ctx, buildPrompt(lines))
	if err != nil {
		return nil, fmt.Errorf("on-device model: %w", err)
	}

	rec := ParseKV(answer)
	if validator.Classify(rec) == domain.RecordEmpty {
		// The model gave nothing usable; the raw text may still pattern-match.
		rec = fields.Extract(lines, s.resolver)
	}

	return &port.StrategyOutput{
		Record:     rec,
		Confidence: validator.Confidence(rec),
	}, nil
}

func buildPrompt(lines []string) string {
	var b strings.Builder
	b.WriteString("The following lines were read from a boarding pass. Extract the fields you can identify.\n")
	b.WriteString("Answer with one line per field in the form \"Label: value\" using these labels: ")
	b.WriteString("Flight Number, Airline, Passenger Name, Departure City, Departure Code, Arrival City, Arrival Code, ")
	b.WriteString("Departure Date, Departure Time, Arrival Time, Boarding Time, Gate, Terminal, Seat, PNR, Ticket Number.\n")
	b.WriteString("Write \"none\" for fields that are not present. Do not add commentary.\n\nText:\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
