// Package airports holds the canonical bidirectional city/IATA-code table
// used by the route extractor. The table is built once at process start and
// is immutable afterwards; concurrent reads need no synchronization.
package airports

import (
	"sort"
	"strings"

	"paxscan/internal/domain"
)

// Match is one known city found in a line of text.
type Match struct {
	Entry domain.CityCodeEntry
	Index int
}

// Resolver answers city<->code lookups and scans free text for city names.
type Resolver struct {
	cityToCode map[string]string
	codeToCity map[string]string
	// city names in scan order: longest first so "New Delhi" wins over "Delhi".
	scanNames []string
	nameEntry map[string]domain.CityCodeEntry
}

// NewResolver builds a resolver from an explicit entry list.
func NewResolver(entries []domain.CityCodeEntry) *Resolver {
	r := &Resolver{
		cityToCode: make(map[string]string, len(entries)),
		codeToCity: make(map[string]string, len(entries)),
		nameEntry:  make(map[string]domain.CityCodeEntry, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToLower(e.City)
		if _, ok := r.cityToCode[key]; ok {
			continue
		}
		r.cityToCode[key] = e.IATACode
		if _, ok := r.codeToCity[e.IATACode]; !ok {
			r.codeToCity[e.IATACode] = e.City
		}
		r.nameEntry[key] = e
		r.scanNames = append(r.scanNames, key)
	}
	sort.Slice(r.scanNames, func(i, j int) bool {
		return len(r.scanNames[i]) > len(r.scanNames[j])
	})
	return r
}

// NewDefaultResolver builds a resolver from the built-in table.
func NewDefaultResolver() *Resolver {
	return NewResolver(defaultEntries)
}

// CodeForCity resolves a city name to its canonical IATA code.
func (r *Resolver) CodeForCity(city string) (string, bool) {
	code, ok := r.cityToCode[strings.ToLower(strings.TrimSpace(city))]
	return code, ok
}

// CityForCode resolves an IATA code to its display city name.
func (r *Resolver) CityForCode(code string) (string, bool) {
	city, ok := r.codeToCity[strings.ToUpper(strings.TrimSpace(code))]
	return city, ok
}

// Entry returns the canonical entry for a city name.
func (r *Resolver) Entry(city string) (domain.CityCodeEntry, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	code, ok := r.cityToCode[key]
	if !ok {
		return domain.CityCodeEntry{}, false
	}
	// Normalize aliases to the display city for the code.
	return domain.CityCodeEntry{City: r.codeToCity[code], IATACode: code}, true
}

// ScanLine finds known city names in a line, case-insensitive, in order of
// first appearance. Overlapping matches keep the longer name.
func (r *Resolver) ScanLine(line string) []Match {
	lower := strings.ToLower(line)
	var matches []Match
	claimed := make([]bool, len(lower))

	for _, name := range r.scanNames {
		from := 0
		for {
			idx := strings.Index(lower[from:], name)
			if idx < 0 {
				break
			}
			idx += from
			from = idx + len(name)
			if !wordBounded(lower, idx, len(name)) || overlaps(claimed, idx, len(name)) {
				continue
			}
			for i := idx; i < idx+len(name); i++ {
				claimed[i] = true
			}
			entry := r.nameEntry[name]
			matches = append(matches, Match{
				Entry: domain.CityCodeEntry{City: r.codeToCity[entry.IATACode], IATACode: entry.IATACode},
				Index: idx,
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
	return matches
}

// LooksLikeCode reports whether a bare token is a plausible IATA code:
// three uppercase letters not on the false-positive blacklist.
func (r *Resolver) LooksLikeCode(token string) bool {
	if len(token) != 3 {
		return false
	}
	for _, c := range token {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return !codeBlacklist[token]
}

func wordBounded(s string, idx, n int) bool {
	if idx > 0 && isLetter(s[idx-1]) {
		return false
	}
	if end := idx + n; end < len(s) && isLetter(s[end]) {
		return false
	}
	return true
}

func overlaps(claimed []bool, idx, n int) bool {
	for i := idx; i < idx+n; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
