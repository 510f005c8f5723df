// Package fields holds the per-field pattern extractors shared by every
// OCR-based strategy. Each extractor is a pure function over recognized text
// lines with no shared mutable state; when no pattern matches it returns the
// empty string rather than a guess.
package fields

import (
	"time"

	"paxscan/internal/domain"
	"paxscan/internal/extract/airports"
)

// Extract runs every field extractor over the lines and assembles a record.
// Extractor order does not matter; each works on the raw lines alone.
func Extract(lines []string, resolver *airports.Resolver) *domain.BoardingPassRecord {
	rec := &domain.BoardingPassRecord{FoundAt: time.Now().UTC()}

	rec.FlightNumber = ExtractFlightNumber(lines)

	route := ExtractRoute(lines, resolver)
	rec.DepartureCode = route.DepartureCode
	rec.DepartureCity = route.DepartureCity
	rec.ArrivalCode = route.ArrivalCode
	rec.ArrivalCity = route.ArrivalCity

	rec.DepartureTime, rec.ArrivalTime = ExtractTimes(lines)
	rec.DepartureDate = ExtractDate(lines)
	rec.Gate = ExtractGate(lines)
	rec.Terminal = ExtractTerminal(lines)
	rec.Seat = ExtractSeat(lines)
	rec.ConfirmationCode = ExtractConfirmationCode(lines, resolver)
	rec.PassengerName = ExtractPassengerName(lines, resolver)

	return rec
}
