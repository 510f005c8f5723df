package airports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paxscan/internal/extract/airports"
	"paxscan/internal/domain"
)

func TestResolver_CodeForCity(t *testing.T) {
	r := airports.NewDefaultResolver()

	code, ok := r.CodeForCity("Hyderabad")
	require.True(t, ok)
	assert.Equal(t, "HYD", code)

	// Case-insensitive, alias-aware.
	code, ok = r.CodeForCity("BOMBAY")
	require.True(t, ok)
	assert.Equal(t, "BOM", code)

	_, ok = r.CodeForCity("Atlantis")
	assert.False(t, ok)
}

func TestResolver_CityForCode(t *testing.T) {
	r := airports.NewDefaultResolver()

	city, ok := r.CityForCode("ixc")
	require.True(t, ok)
	assert.Equal(t, "Chandigarh", city)

	_, ok = r.CityForCode("ZZZ")
	assert.False(t, ok)
}

func TestResolver_EntryNormalizesAlias(t *testing.T) {
	r := airports.NewDefaultResolver()

	e, ok := r.Entry("Calcutta")
	require.True(t, ok)
	assert.Equal(t, "Kolkata", e.City)
	assert.Equal(t, "CCU", e.IATACode)
}

func TestResolver_ScanLine(t *testing.T) {
	r := airports.NewDefaultResolver()

	matches := r.ScanLine("HYDERABAD To CHANDIGARH")
	require.Len(t, matches, 2)
	assert.Equal(t, "HYD", matches[0].Entry.IATACode)
	assert.Equal(t, "IXC", matches[1].Entry.IATACode)
	assert.Less(t, matches[0].Index, matches[1].Index)
}

func TestResolver_ScanLineLongestWins(t *testing.T) {
	r := airports.NewDefaultResolver()

	matches := r.ScanLine("New Delhi Airport")
	require.Len(t, matches, 1)
	assert.Equal(t, "DEL", matches[0].Entry.IATACode)
	assert.Equal(t, 0, matches[0].Index)
}

func TestResolver_ScanLineWordBounded(t *testing.T) {
	r := airports.NewResolver([]domain.CityCodeEntry{
		{City: "Pune", IATACode: "PNQ"},
	})

	// "Pune" embedded in another word must not match.
	assert.Empty(t, r.ScanLine("Tribune review"))
	assert.Len(t, r.ScanLine("Pune departure"), 1)
}

func TestResolver_LooksLikeCode(t *testing.T) {
	r := airports.NewDefaultResolver()

	assert.True(t, r.LooksLikeCode("HYD"))
	assert.True(t, r.LooksLikeCode("ZZZ"))
	assert.False(t, r.LooksLikeCode("AND"))
	assert.False(t, r.LooksLikeCode("PNR"))
	assert.False(t, r.LooksLikeCode("HY"))
	assert.False(t, r.LooksLikeCode("hyd"))
	assert.False(t, r.LooksLikeCode("H7D"))
}
