package fields

import (
	"regexp"
	"strings"

	"paxscan/internal/extract/airports"
)

var (
	reConfLabeled = regexp.MustCompile(`(?i)\b(?:PNR|CONFIRMATION(?:\s*(?:NO|CODE|NUMBER))?\.?|BOOKING(?:\s*(?:REF|REFERENCE|ID))?|RECORD\s*LOCATOR|LOCATOR|REF)\b[.:#\s]*([A-Z0-9]{5,8})\b`)
	reConfBare    = regexp.MustCompile(`\b([A-Z0-9]{5,8})\b`)
	reSeatShape   = regexp.MustCompile(`^\d{1,3}[A-F]$`)
	reAllDigits   = regexp.MustCompile(`^\d+$`)
)

// Interface chrome that matches the 5-8 alphanumeric shape.
var confirmationNoise = map[string]bool{
	"FLIGHT": true, "BOARDING": true, "ECONOMY": true, "BUSINESS": true,
	"PREMIUM": true, "SEQUENCE": true, "TERMINAL": true, "DEPART": true,
	"ARRIVE": true, "ARRIVAL": true, "GROUP": true, "CLASS": true,
	"CABIN": true, "CHECK": true, "CHECKIN": true, "TICKET": true,
	"TRAVEL": true, "PLEASE": true, "BEFORE": true, "CLOSES": true,
	"AIRWAYS": true, "AIRLINE": true, "EXPRESS": true,
}

// ExtractConfirmationCode finds the booking reference. Label-adjacent tokens
// ("PNR", "confirmation", "booking", "locator", "ref") are preferred; a bare
// scan across all lines is the fallback. Tokens shaped like a flight number,
// a seat, a bare number, or a known city name are rejected.
func ExtractConfirmationCode(lines []string, r *airports.Resolver) string {
	for _, line := range lines {
		if m := reConfLabeled.FindStringSubmatch(strings.ToUpper(line)); m != nil {
			if validConfirmation(m[1], r) {
				return m[1]
			}
		}
	}
	for _, line := range lines {
		for _, m := range reConfBare.FindAllStringSubmatch(strings.ToUpper(line), -1) {
			if validConfirmation(m[1], r) {
				return m[1]
			}
		}
	}
	return ""
}

func validConfirmation(tok string, r *airports.Resolver) bool {
	if len(tok) < 5 || len(tok) > 8 {
		return false
	}
	if confirmationNoise[tok] {
		return false
	}
	if reAllDigits.MatchString(tok) || reSeatShape.MatchString(tok) {
		return false
	}
	if isFlightShaped(tok) {
		return false
	}
	if _, isCity := r.CodeForCity(tok); isCity {
		return false
	}
	return true
}
