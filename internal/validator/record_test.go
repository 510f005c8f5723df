package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paxscan/internal/domain"
	"paxscan/internal/validator"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rec  *domain.BoardingPassRecord
		want domain.RecordStatus
	}{
		{"nil record", nil, domain.RecordEmpty},
		{"zero record", &domain.BoardingPassRecord{}, domain.RecordEmpty},
		{
			"flight alone is still empty",
			&domain.BoardingPassRecord{FlightNumber: "UA546"},
			domain.RecordEmpty,
		},
		{
			"route without flight is empty",
			&domain.BoardingPassRecord{DepartureCode: "EWR", ArrivalCode: "SFO"},
			domain.RecordEmpty,
		},
		{
			"flight plus departure code",
			&domain.BoardingPassRecord{FlightNumber: "UA546", DepartureCode: "EWR"},
			domain.RecordMinimal,
		},
		{
			"flight plus arrival city only",
			&domain.BoardingPassRecord{FlightNumber: "UA546", ArrivalCity: "San Francisco"},
			domain.RecordMinimal,
		},
		{
			"both endpoints",
			&domain.BoardingPassRecord{FlightNumber: "6E6252", DepartureCode: "HYD", ArrivalCode: "IXC"},
			domain.RecordComplete,
		},
		{
			"city on one side code on the other",
			&domain.BoardingPassRecord{FlightNumber: "6E6252", DepartureCity: "Hyderabad", ArrivalCode: "IXC"},
			domain.RecordComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Classify(tt.rec))
		})
	}
}

func TestAcceptable(t *testing.T) {
	assert.False(t, validator.Acceptable(nil))
	assert.False(t, validator.Acceptable(&domain.BoardingPassRecord{FlightNumber: "UA546"}))
	assert.True(t, validator.Acceptable(&domain.BoardingPassRecord{FlightNumber: "UA546", DepartureCode: "EWR"}))
	assert.True(t, validator.Acceptable(&domain.BoardingPassRecord{
		FlightNumber: "UA546", DepartureCode: "EWR", ArrivalCode: "SFO",
	}))
}

func TestConfidence(t *testing.T) {
	assert.Zero(t, validator.Confidence(nil))
	assert.Zero(t, validator.Confidence(&domain.BoardingPassRecord{FlightNumber: "UA546"}))

	minimal := &domain.BoardingPassRecord{FlightNumber: "UA546", DepartureCode: "EWR"}
	assert.InDelta(t, 0.5, validator.Confidence(minimal), 1e-9)

	complete := &domain.BoardingPassRecord{
		FlightNumber: "6E6252", DepartureCode: "HYD", ArrivalCode: "IXC",
		Seat: "24D", Gate: "14", DepartureTime: "19:45",
	}
	assert.InDelta(t, 0.84, validator.Confidence(complete), 1e-9)

	// Fully loaded records cap out below certainty.
	loaded := &domain.BoardingPassRecord{
		FlightNumber: "6E6252", DepartureCode: "HYD", ArrivalCode: "IXC",
		Seat: "24D", Gate: "14", DepartureTime: "19:45", DepartureDate: "2024-12-25",
		ConfirmationCode: "ZAJIMS", PassengerName: "Priya Sharma",
	}
	assert.LessOrEqual(t, validator.Confidence(loaded), 0.95)
	assert.InDelta(t, 0.93, validator.Confidence(loaded), 1e-9)
}
