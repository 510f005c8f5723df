package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paxscan/internal/extract/fields"
)

func TestExtractFlightNumber(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"labeled with space", []string{"FLIGHT 6E 6252"}, "6E6252"},
		{"labeled with colon", []string{"Flight No: AI 202"}, "AI202"},
		{"bare alpha carrier", []string{"UA546 Boarding"}, "UA546"},
		{"spaced alpha carrier", []string{"BA 2490"}, "BA2490"},
		{"digit carrier unlabeled", []string{"9W431"}, "9W431"},
		{"labeled wins over earlier bare", []string{"SQ 802", "FLIGHT NO QF 144"}, "QF144"},
		{"sequence number ignored", []string{"SEQ 001"}, ""},
		{"row number ignored", []string{"ROW 12"}, ""},
		{"airport code alone is not a flight", []string{"DEL"}, ""},
		{"no match", []string{"WELCOME ABOARD"}, ""},
		{"empty input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fields.ExtractFlightNumber(tt.lines))
		})
	}
}
