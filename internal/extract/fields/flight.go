package fields

import (
	"regexp"
	"strings"
)

var (
	// Explicit label, e.g. "FLIGHT: 6E 6252" or "FLIGHT NO AI 202".
	reFlightLabeled = regexp.MustCompile(`(?i)\bFLIGHT\s*(?:NO\.?|NUMBER|#)?[:\s]*([A-Z0-9]{1,3}\s?\d{3,4})\b`)
	// Carrier letters followed by the flight digits, e.g. "UA546", "BA 2490".
	reFlightAlpha = regexp.MustCompile(`\b([A-Z]{2,3})\s?(\d{3,4})\b`)
	// Carrier codes that start with a digit, e.g. "6E 6252", "9W431".
	reFlightDigit = regexp.MustCompile(`\b(\d[A-Z])\s?(\d{3,4})\b`)
)

// Letter prefixes that produce flight-shaped tokens but are chrome, not
// carriers ("SEQ 001", "ROW 12").
var flightPrefixBlacklist = map[string]bool{
	"SEQ": true, "ROW": true, "GRP": true, "BAG": true, "PNR": true,
	"STD": true, "STA": true, "GMT": true, "UTC": true, "HRS": true,
}

// ExtractFlightNumber finds the flight designator. Patterns are tried in
// descending specificity across all lines; the first valid match wins.
func ExtractFlightNumber(lines []string) string {
	for _, line := range lines {
		if m := reFlightLabeled.FindStringSubmatch(line); m != nil {
			if fn, ok := normalizeFlightNumber(m[1]); ok {
				return fn
			}
		}
	}
	for _, re := range []*regexp.Regexp{reFlightAlpha, reFlightDigit} {
		for _, line := range lines {
			for _, m := range re.FindAllStringSubmatch(strings.ToUpper(line), -1) {
				if fn, ok := normalizeFlightNumber(m[1] + m[2]); ok {
					return fn
				}
			}
		}
	}
	return ""
}

// normalizeFlightNumber strips whitespace and checks the candidate is a
// plausible designator: 3-7 chars, both a letter and a digit, not a bare
// airport-code trigram, and not a blacklisted prefix.
func normalizeFlightNumber(raw string) (string, bool) {
	fn := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	if len(fn) < 3 || len(fn) > 7 {
		return "", false
	}
	var letters, digits int
	for _, c := range fn {
		switch {
		case c >= 'A' && c <= 'Z':
			letters++
		case c >= '0' && c <= '9':
			digits++
		default:
			return "", false
		}
	}
	// A bare trigram like "DEL" is an airport code, never a flight.
	if letters == 0 || digits == 0 {
		return "", false
	}
	prefix := strings.TrimRight(fn, "0123456789")
	if flightPrefixBlacklist[prefix] {
		return "", false
	}
	return fn, true
}

// isFlightShaped reports whether a token looks like a flight designator.
// Used by other extractors to avoid stealing the flight number.
func isFlightShaped(token string) bool {
	t := strings.ToUpper(token)
	return reFlightAlpha.MatchString(t) || reFlightDigit.MatchString(t)
}
