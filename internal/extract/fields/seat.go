package fields

import (
	"regexp"
	"strings"
)

var (
	reSeatLabeled = regexp.MustCompile(`(?i)\bseat\b[:\s]*(\d{1,3}[A-Z]?)\b`)
	reSeatBare    = regexp.MustCompile(`\b(\d{1,3}[A-F])\b`)
	reSeatTrail   = regexp.MustCompile(`^\s?\d{3,4}`)
)

// ExtractSeat looks first at lines that mention "seat" (the label gives the
// match context), then falls back to a bare row+letter scan across all
// lines. Bare matches that continue into flight digits are skipped so a
// carrier code like "6E 6252" is never read as a seat.
func ExtractSeat(lines []string) string {
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "seat") {
			continue
		}
		if m := reSeatLabeled.FindStringSubmatch(line); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	for _, line := range lines {
		upper := strings.ToUpper(line)
		for _, loc := range reSeatBare.FindAllStringSubmatchIndex(upper, -1) {
			tok := upper[loc[2]:loc[3]]
			rest := upper[loc[3]:]
			if reSeatTrail.MatchString(rest) {
				continue
			}
			return tok
		}
	}
	return ""
}
