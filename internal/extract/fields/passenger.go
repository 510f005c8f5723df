package fields

import (
	"regexp"
	"strings"

	"paxscan/internal/extract/airports"
)

var (
	// Airline convention: SURNAME/FIRSTNAME, optionally with an honorific
	// glued to the end ("DOE/JOHNMR").
	reSlashName = regexp.MustCompile(`\b([A-Z]{2,})/([A-Z]{2,})\b`)
	reCapsWords = regexp.MustCompile(`^([A-Z][A-Za-z]+)(\s+[A-Z][A-Za-z]+){1,2}$`)

	honorifics = []string{"MSTR", "MRS", "MR", "MS", "DR"}
)

// Words that mark a line as boarding-pass chrome, not a name.
var nameNoise = map[string]bool{
	"BOARDING": true, "PASS": true, "FLIGHT": true, "GATE": true,
	"SEAT": true, "CLASS": true, "ECONOMY": true, "BUSINESS": true,
	"DEPARTURE": true, "ARRIVAL": true, "TERMINAL": true, "AIRLINES": true,
	"AIRWAYS": true, "AIR": true, "INDIGO": true, "SPICEJET": true,
	"VISTARA": true, "INDIA": true, "CARD": true, "ZONE": true,
	"GROUP": true, "SECURITY": true, "CHECKED": true, "CABIN": true,
	"BAGGAGE": true, "WEB": true, "COUNTER": true,
}

// ExtractPassengerName prefers the slash-delimited LASTNAME/FIRSTNAME token;
// the fallback is a line of two or three capitalized words that is neither
// chrome nor a city name. Output is title-cased "First Last".
func ExtractPassengerName(lines []string, r *airports.Resolver) string {
	for _, line := range lines {
		m := reSlashName.FindStringSubmatch(strings.ToUpper(line))
		if m == nil {
			continue
		}
		last, first := m[1], stripHonorific(m[2])
		if first == "" || nameNoise[last] || nameNoise[first] {
			continue
		}
		return titleWord(first) + " " + titleWord(last)
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !reCapsWords.MatchString(trimmed) {
			continue
		}
		words := strings.Fields(trimmed)
		if noisyWords(words) {
			continue
		}
		// Route lines ("Hyderabad To Chandigarh") are capitalized words too.
		if len(r.ScanLine(trimmed)) > 0 {
			continue
		}
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = titleWord(w)
		}
		return strings.Join(out, " ")
	}
	return ""
}

func noisyWords(words []string) bool {
	for _, w := range words {
		if nameNoise[strings.ToUpper(w)] {
			return true
		}
	}
	return false
}

func stripHonorific(first string) string {
	for _, h := range honorifics {
		if strings.HasSuffix(first, h) && len(first) > len(h)+1 {
			return first[:len(first)-len(h)]
		}
	}
	return first
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
