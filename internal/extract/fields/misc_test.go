package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paxscan/internal/extract/airports"
	"paxscan/internal/extract/fields"
)

func TestExtractSeat(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"labeled", []string{"SEAT 24D"}, "24D"},
		{"labeled with colon", []string{"Seat: 12A"}, "12A"},
		{"labeled digits only", []string{"SEAT 7"}, "7"},
		{"bare fallback", []string{"24D"}, "24D"},
		{"carrier code is not a seat", []string{"6E 6252"}, ""},
		{"labeled wins over bare", []string{"1A something", "SEAT 24D"}, "24D"},
		{"none", []string{"GATE 14"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields.ExtractSeat(tt.lines))
		})
	}
}

func TestExtractGateAndTerminal(t *testing.T) {
	lines := []string{"GATE 14", "Terminal 2"}
	assert.Equal(t, "14", fields.ExtractGate(lines))
	assert.Equal(t, "2", fields.ExtractTerminal(lines))

	assert.Equal(t, "B7", fields.ExtractGate([]string{"Gate: B7 Boarding"}))
	assert.Empty(t, fields.ExtractGate([]string{"no gates"}))
	assert.Empty(t, fields.ExtractTerminal([]string{"24D"}))
}

func TestExtractConfirmationCode(t *testing.T) {
	r := airports.NewDefaultResolver()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"pnr label", []string{"PNR ZAJIMS"}, "ZAJIMS"},
		{"booking ref label", []string{"Booking Ref: X9K2PQ"}, "X9K2PQ"},
		{"record locator", []string{"RECORD LOCATOR ABQPRT"}, "ABQPRT"},
		{"bare fallback", []string{"ZAJIMS"}, "ZAJIMS"},
		{"flight shape rejected", []string{"UA5462"}, ""},
		{"all digits rejected", []string{"123456"}, ""},
		{"seat shape rejected", []string{"123A"}, ""},
		{"chrome rejected", []string{"BOARDING", "ECONOMY"}, ""},
		{"city name rejected", []string{"MUMBAI"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields.ExtractConfirmationCode(tt.lines, r))
		})
	}
}

func TestExtractPassengerName(t *testing.T) {
	r := airports.NewDefaultResolver()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"slash convention", []string{"DOE/JOHN"}, "John Doe"},
		{"slash with honorific", []string{"SHARMA/PRIYAMS"}, "Priya Sharma"},
		{"caps words fallback", []string{"Rahul Verma"}, "Rahul Verma"},
		{"three word name", []string{"Anna Maria Gomez"}, "Anna Maria Gomez"},
		{"route line is not a name", []string{"Hyderabad To Chandigarh"}, ""},
		{"chrome line is not a name", []string{"Boarding Pass"}, ""},
		{"airline is not a name", []string{"Air India"}, ""},
		{"none", []string{"GATE 14"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields.ExtractPassengerName(tt.lines, r))
		})
	}
}
