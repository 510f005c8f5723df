// Package validator classifies candidate records. It is the acceptance gate
// for every extraction strategy: the orchestrator accepts on Minimal or
// better, while Complete is advisory and only feeds confidence reporting.
package validator

import "paxscan/internal/domain"

// Classify scores a candidate record.
//
//	Minimal:  flight number plus at least one route endpoint.
//	Complete: flight number plus both a departure and an arrival identifier.
//	Empty:    anything else.
//
// The policy deliberately favors availability over completeness; no
// boarding-pass format guarantees full data.
func Classify(rec *domain.BoardingPassRecord) domain.RecordStatus {
	if rec == nil || rec.FlightNumber == "" {
		return domain.RecordEmpty
	}
	switch {
	case rec.HasDeparture() && rec.HasArrival():
		return domain.RecordComplete
	case rec.HasDeparture() || rec.HasArrival():
		return domain.RecordMinimal
	default:
		return domain.RecordEmpty
	}
}

// Acceptable reports whether a record passes the orchestrator's gate.
func Acceptable(rec *domain.BoardingPassRecord) bool {
	return Classify(rec) >= domain.RecordMinimal
}

// Confidence assigns a heuristic score to records produced by strategies
// that do not self-report one. The classification sets the base; secondary
// fields add small boosts. Telemetry only, never used for acceptance.
func Confidence(rec *domain.BoardingPassRecord) float64 {
	var score float64
	switch Classify(rec) {
	case domain.RecordComplete:
		score = 0.75
	case domain.RecordMinimal:
		score = 0.5
	default:
		return 0.0
	}
	for _, f := range []string{
		rec.Seat, rec.Gate, rec.DepartureTime, rec.DepartureDate,
		rec.ConfirmationCode, rec.PassengerName,
	} {
		if f != "" {
			score += 0.03
		}
	}
	if score > 0.95 {
		score = 0.95
	}
	return score
}
