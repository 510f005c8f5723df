package ondevice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKV_TypicalAnswer(t *testing.T) {
	rec := ParseKV(`Flight Number: 6E 6252
Airline: IndiGo
Passenger Name: Priya Sharma
Departure City: Hyderabad (HYD)
Arrival City: Chandigarh (IXC)
Departure Time: 19:45
Seat: 24d
Gate: 14
PNR: zajims
Ticket Number: none`)

	require.NotNil(t, rec)
	assert.Equal(t, "6E6252", rec.FlightNumber)
	assert.Equal(t, "IndiGo", rec.Airline)
	assert.Equal(t, "Priya Sharma", rec.PassengerName)
	assert.Equal(t, "HYD", rec.DepartureCode)
	assert.Equal(t, "Hyderabad", rec.DepartureCity)
	assert.Equal(t, "IXC", rec.ArrivalCode)
	assert.Equal(t, "Chandigarh", rec.ArrivalCity)
	assert.Equal(t, "19:45", rec.DepartureTime)
	assert.Equal(t, "24D", rec.Seat)
	assert.Equal(t, "14", rec.Gate)
	assert.Equal(t, "ZAJIMS", rec.ConfirmationCode)
	assert.Empty(t, rec.TicketNumber)
}

func TestParseKV_BulletsAndQuotes(t *testing.T) {
	rec := ParseKV(`- Flight Number: "UA546"
* Departure Code: EWR
1. Arrival Code: SFO`)

	assert.Equal(t, "UA546", rec.FlightNumber)
	assert.Equal(t, "EWR", rec.DepartureCode)
	assert.Equal(t, "SFO", rec.ArrivalCode)
}

func TestParseKV_BareCodeAsCityValue(t *testing.T) {
	rec := ParseKV("Departure City: HYD\nArrival City: Chandigarh")

	assert.Equal(t, "HYD", rec.DepartureCode)
	assert.Empty(t, rec.DepartureCity)
	assert.Equal(t, "Chandigarh", rec.ArrivalCity)
	assert.Empty(t, rec.ArrivalCode)
}

func TestParseKV_EmptyMarkersSkipped(t *testing.T) {
	rec := ParseKV(`Flight Number: N/A
Gate: unknown
Seat: not visible
Terminal: -
PNR: None`)

	assert.Empty(t, rec.FlightNumber)
	assert.Empty(t, rec.Gate)
	assert.Empty(t, rec.Seat)
	assert.Empty(t, rec.Terminal)
	assert.Empty(t, rec.ConfirmationCode)
}

func TestParseKV_InvalidTimeDiscarded(t *testing.T) {
	rec := ParseKV("Departure Time: 69:46\nArrival Time: 21:10")

	assert.Empty(t, rec.DepartureTime)
	assert.Equal(t, "21:10", rec.ArrivalTime)
}

func TestParseKV_BoardingBeforeDeparture(t *testing.T) {
	rec := ParseKV("Boarding Time: 18:15\nDeparture Time: 19:45")

	assert.Equal(t, "18:15", rec.BoardingTime)
	assert.Equal(t, "19:45", rec.DepartureTime)
}

func TestParseKV_DateNormalized(t *testing.T) {
	rec := ParseKV("Departure Date: 25 Dec 2024")
	assert.Equal(t, "2024-12-25", rec.DepartureDate)
}

func TestParseKV_CommentaryIgnored(t *testing.T) {
	rec := ParseKV(`Here is what I found.
Flight Number: UA546
That is everything readable.`)

	assert.Equal(t, "UA546", rec.FlightNumber)
	assert.Empty(t, rec.PassengerName)
}

func TestParseKV_NoLabels(t *testing.T) {
	rec := ParseKV("the image is too blurry to read")

	assert.Empty(t, rec.FlightNumber)
	assert.False(t, rec.FoundAt.IsZero())
}
