// Package vision is the remote multimodal strategy: the image goes to a
// vision-language model and the reply is trusted only after passing a strict
// JSON schema gate.
package vision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paxscan/internal/domain"
	"paxscan/internal/port"
)

// Strategy implements port.ExtractionStrategy over a VisionClient.
type Strategy struct {
	client          port.VisionClient
	costPer1KTokens float64
}

// NewStrategy creates the remote-vision strategy.
func NewStrategy(client port.VisionClient, costPer1KTokens float64) *Strategy {
	return &Strategy{client: client, costPer1KTokens: costPer1KTokens}
}

func (s *Strategy) Name() domain.Strategy {
	return domain.StrategyRemoteVision
}

func (s *Strategy) Extract(ctx context.Context, image domain.ImageInput) (*port.StrategyOutput, error) {
	raw, err := s.client.Infer(ctx, image, BuildBoardingPassPrompt())
	if err != nil {
		return nil, err
	}

	reply, err := decodeReply(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if !reply.Success {
		return nil, fmt.Errorf("%w: model reported failure: %s", domain.ErrMalformedResponse, strings.Join(reply.Errors, "; "))
	}

	out := &port.StrategyOutput{
		Record:     reply.toRecord(),
		Confidence: reply.Confidence,
	}
	if raw.Tokens > 0 {
		out.TokenCost = &domain.TokenCost{
			Tokens:        raw.Tokens,
			EstimatedCost: float64(raw.Tokens) / 1000 * s.costPer1KTokens,
		}
	}
	return out, nil
}

func (r *modelReply) toRecord() *domain.BoardingPassRecord {
	return &domain.BoardingPassRecord{
		FlightNumber:     strings.ToUpper(strings.TrimSpace(r.FlightNumber)),
		Airline:          strings.TrimSpace(r.Airline),
		PassengerName:    strings.TrimSpace(r.PassengerName),
		DepartureCode:    strings.ToUpper(strings.TrimSpace(r.DepartureCode)),
		DepartureCity:    strings.TrimSpace(r.DepartureCity),
		ArrivalCode:      strings.ToUpper(strings.TrimSpace(r.ArrivalCode)),
		ArrivalCity:      strings.TrimSpace(r.ArrivalCity),
		DepartureDate:    strings.TrimSpace(r.DepartureDate),
		DepartureTime:    strings.TrimSpace(r.DepartureTime),
		ArrivalTime:      strings.TrimSpace(r.ArrivalTime),
		Gate:             strings.ToUpper(strings.TrimSpace(r.Gate)),
		Terminal:         strings.ToUpper(strings.TrimSpace(r.Terminal)),
		Seat:             strings.ToUpper(strings.TrimSpace(r.Seat)),
		ConfirmationCode: strings.ToUpper(strings.TrimSpace(r.ConfirmationCode)),
		TicketNumber:     strings.TrimSpace(r.TicketNumber),
		BoardingTime:     strings.TrimSpace(r.BoardingTime),
		FlightDuration:   strings.TrimSpace(r.FlightDuration),
		FoundAt:          time.Now().UTC(),
	}
}
