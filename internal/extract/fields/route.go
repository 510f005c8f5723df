package fields

import (
	"regexp"
	"strings"

	"paxscan/internal/domain"
	"paxscan/internal/extract/airports"
)

// Route is the resolved departure/arrival pair. Either endpoint may carry a
// code without a city; that is still enough for a minimally valid record.
type Route struct {
	DepartureCode string
	DepartureCity string
	ArrivalCode   string
	ArrivalCity   string
}

var (
	reCityToCity = regexp.MustCompile(`(?i)\b([A-Za-z][A-Za-z .]*?)\s+to\s+([A-Za-z][A-Za-z .]*)`)
	reBareCode   = regexp.MustCompile(`\b[A-Z]{3}\b`)
)

// ExtractRoute resolves the departure and arrival endpoints. Four steps in
// descending confidence; the first conclusive one wins:
//  1. an explicit "<CITY> To <CITY>" phrase resolving on both sides,
//  2. known city names in order of first appearance,
//  3. bare three-letter codes filtered against the false-positive blacklist,
//  4. codes with no city match keep an empty city.
func ExtractRoute(lines []string, r *airports.Resolver) Route {
	// Step 1: explicit directionality.
	for _, line := range lines {
		m := reCityToCity.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		dep, depOK := resolvePhrase(m[1], r)
		arr, arrOK := resolvePhrase(m[2], r)
		if depOK && arrOK && dep.IATACode != arr.IATACode {
			return Route{
				DepartureCode: dep.IATACode, DepartureCity: dep.City,
				ArrivalCode: arr.IATACode, ArrivalCity: arr.City,
			}
		}
	}

	// Step 2: known city names, order of first appearance.
	var route Route
	found := 0
	seen := map[string]bool{}
	for _, line := range lines {
		for _, match := range r.ScanLine(line) {
			if seen[match.Entry.IATACode] {
				continue
			}
			seen[match.Entry.IATACode] = true
			switch found {
			case 0:
				route.DepartureCode = match.Entry.IATACode
				route.DepartureCity = match.Entry.City
			case 1:
				route.ArrivalCode = match.Entry.IATACode
				route.ArrivalCity = match.Entry.City
			}
			found++
			if found == 2 {
				return route
			}
		}
	}

	// Step 3/4: bare codes fill whatever the city scan left open.
	for _, line := range lines {
		for _, tok := range reBareCode.FindAllString(strings.ToUpper(line), -1) {
			if !r.LooksLikeCode(tok) || seen[tok] {
				continue
			}
			seen[tok] = true
			city, _ := r.CityForCode(tok)
			switch found {
			case 0:
				route.DepartureCode = tok
				route.DepartureCity = city
			case 1:
				route.ArrivalCode = tok
				route.ArrivalCity = city
			}
			found++
			if found == 2 {
				return route
			}
		}
	}
	return route
}

// resolvePhrase tries the whole captured phrase, then its trailing and
// leading words, against the city table. OCR lines often glue chrome onto
// the city name on either side.
func resolvePhrase(phrase string, r *airports.Resolver) (domain.CityCodeEntry, bool) {
	candidates := []string{strings.TrimSpace(phrase)}
	words := strings.Fields(phrase)
	if len(words) > 1 {
		candidates = append(candidates,
			strings.Join(words[len(words)-2:], " "),
			words[len(words)-1],
			strings.Join(words[:2], " "),
			words[0],
		)
	}
	for _, c := range candidates {
		if e, found := r.Entry(c); found {
			return e, true
		}
	}
	return domain.CityCodeEntry{}, false
}
