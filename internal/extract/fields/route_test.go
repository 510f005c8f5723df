package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"paxscan/internal/extract/airports"
	"paxscan/internal/extract/fields"
)

func TestExtractRoute_DirectionalPhrase(t *testing.T) {
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"HYDERABAD To CHANDIGARH"}, r)

	assert.Equal(t, "HYD", route.DepartureCode)
	assert.Equal(t, "Hyderabad", route.DepartureCity)
	assert.Equal(t, "IXC", route.ArrivalCode)
	assert.Equal(t, "Chandigarh", route.ArrivalCity)
}

func TestExtractRoute_DirectionalBeatsOrder(t *testing.T) {
	// The phrase names Delhi first, but directionality says Mumbai departs.
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"New Delhi", "MUMBAI to DELHI"}, r)

	assert.Equal(t, "BOM", route.DepartureCode)
	assert.Equal(t, "DEL", route.ArrivalCode)
}

func TestExtractRoute_CityScanOrder(t *testing.T) {
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"Bengaluru", "weather fine", "Kolkata"}, r)

	assert.Equal(t, "BLR", route.DepartureCode)
	assert.Equal(t, "CCU", route.ArrivalCode)
}

func TestExtractRoute_BareCodes(t *testing.T) {
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"EWR - SFO"}, r)

	assert.Equal(t, "EWR", route.DepartureCode)
	assert.Equal(t, "Newark", route.DepartureCity)
	assert.Equal(t, "SFO", route.ArrivalCode)
	assert.Equal(t, "San Francisco", route.ArrivalCity)
}

func TestExtractRoute_BlacklistedTrigramsIgnored(t *testing.T) {
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"PNR AND SEQ", "GMT HRS"}, r)

	assert.Empty(t, route.DepartureCode)
	assert.Empty(t, route.ArrivalCode)
}

func TestExtractRoute_SingleEndpoint(t *testing.T) {
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"UA546", "EWR"}, r)

	assert.Equal(t, "EWR", route.DepartureCode)
	assert.Empty(t, route.ArrivalCode)
}

func TestExtractRoute_DuplicateCodeNotBothEndpoints(t *testing.T) {
	r := airports.NewDefaultResolver()
	route := fields.ExtractRoute([]string{"DEL", "DEL"}, r)

	assert.Equal(t, "DEL", route.DepartureCode)
	assert.Empty(t, route.ArrivalCode)
}
