package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reTime24     = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reTime4Digit = regexp.MustCompile(`^(\d{2})(\d{2})$`)
	reTime12     = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

	// Time tokens inside a line. Bare four-digit groups are only treated as
	// times when suffixed with an hours marker, otherwise they collide with
	// flight digits.
	reTimeToken = regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}\s*(?:AM|PM)?|\d{4}\s*HRS?)\b`)

	departureKeywords = []string{"depart", "board", "std"}
	arrivalKeywords   = []string{"arriv", "land", "sta"}
)

// ValidateTime accepts exactly three shapes: 24-hour HH:MM, four-digit
// undelimited 24-hour (reformatted to HH:MM), and 12-hour H:MM AM/PM. Any
// other shape, including impossible values like "69:46", is rejected; the
// normalizer never clamps or repairs.
func ValidateTime(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	if m := reTime12.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h >= 1 && h <= 12 && min <= 59 {
			return fmt.Sprintf("%d:%02d %s", h, min, m[3]), true
		}
		return "", false
	}
	if m := reTime24.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h <= 23 && min <= 59 {
			return fmt.Sprintf("%02d:%02d", h, min), true
		}
		return "", false
	}
	if m := reTime4Digit.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h <= 23 && min <= 59 {
			return fmt.Sprintf("%02d:%02d", h, min), true
		}
		return "", false
	}
	return "", false
}

// ExtractTimes finds up to two valid times. Each token binds to the side
// of its nearest context keyword, so a single line carrying both keywords
// ("Depart 19:45 Arrive 21:10") still yields both times. Tokens with no
// keyword, or whose side is already taken, fill the remaining slots in
// order. Never more than two are retained.
func ExtractTimes(lines []string) (departure, arrival string) {
	var unbound []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		depPos := keywordPositions(lower, departureKeywords)
		arrPos := keywordPositions(lower, arrivalKeywords)
		for _, loc := range reTimeToken.FindAllStringIndex(line, -1) {
			t, ok := ValidateTime(stripHours(line[loc[0]:loc[1]]))
			if !ok {
				continue
			}
			switch bindSide(loc[0], depPos, arrPos) {
			case bindDeparture:
				if departure == "" {
					departure = t
					continue
				}
			case bindArrival:
				if arrival == "" {
					arrival = t
					continue
				}
			}
			unbound = append(unbound, t)
		}
	}
	if departure == "" && len(unbound) > 0 {
		departure = unbound[0]
		unbound = unbound[1:]
	}
	if arrival == "" && len(unbound) > 0 {
		arrival = unbound[0]
	}
	return departure, arrival
}

type timeBinding int

const (
	bindNone timeBinding = iota
	bindDeparture
	bindArrival
)

// bindSide picks the side whose keyword sits closest to the token. Keywords
// before the token win over keywords after it ("Depart 19:45" labels the
// time it precedes); ties go to departure.
func bindSide(at int, depPos, arrPos []int) timeBinding {
	if d, a := nearestAtOrBefore(at, depPos), nearestAtOrBefore(at, arrPos); d >= 0 || a >= 0 {
		if a < 0 || (d >= 0 && d <= a) {
			return bindDeparture
		}
		return bindArrival
	}
	if d, a := nearestAfter(at, depPos), nearestAfter(at, arrPos); d >= 0 || a >= 0 {
		if a < 0 || (d >= 0 && d <= a) {
			return bindDeparture
		}
		return bindArrival
	}
	return bindNone
}

func keywordPositions(lower string, keywords []string) []int {
	var pos []int
	for _, k := range keywords {
		for off := 0; ; {
			i := strings.Index(lower[off:], k)
			if i < 0 {
				break
			}
			pos = append(pos, off+i)
			off += i + len(k)
		}
	}
	return pos
}

// nearestAtOrBefore returns the distance to the closest position <= at,
// or -1 when there is none.
func nearestAtOrBefore(at int, positions []int) int {
	best := -1
	for _, p := range positions {
		if p <= at {
			if d := at - p; best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

// nearestAfter returns the distance to the closest position > at, or -1
// when there is none.
func nearestAfter(at int, positions []int) int {
	best := -1
	for _, p := range positions {
		if p > at {
			if d := p - at; best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

func stripHours(tok string) string {
	s := strings.TrimSpace(tok)
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"HRS", "HR"} {
		if strings.HasSuffix(upper, suffix) {
			return strings.TrimSpace(s[:len(s)-len(suffix)])
		}
	}
	return s
}

// dateFormats are tried in order. Month names must be title-cased before
// parsing; normalizeDateToken takes care of that.
var dateFormats = []string{
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02Jan2006",
	"02-Jan-2006",
}

// partial formats carry no year; the current year is injected after parsing.
var partialDateFormats = []string{
	"02 Jan",
	"2 Jan",
	"Jan 2",
	"02 January",
	"2 January",
	"02Jan",
	"02/01",
	"2/1",
}

// ParseDate parses a raw date token against the ordered format list. When a
// candidate lacks a year the current year is injected and the parse retried;
// if that still fails the date is absent rather than guessed.
func ParseDate(raw string) (time.Time, bool) {
	s := normalizeDateToken(raw)
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	year := time.Now().Year()
	for _, f := range partialDateFormats {
		if _, err := time.Parse(f, s); err != nil {
			continue
		}
		withYear := fmt.Sprintf("%s %d", s, year)
		if t, err := time.Parse(f+" 2006", withYear); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthPat keeps arbitrary words like "Date" or "Gate" from being taken for
// a month and swallowing the digits next to them.
const monthPat = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`

var reDateCandidate = regexp.MustCompile(`(?i)\b(\d{4}-\d{2}-\d{2}|\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{1,2}[- ]?` + monthPat + `\.?,?[- ]?\d{0,4}|` + monthPat + ` \d{1,2},? ?\d{0,4})\b`)

// ExtractDate scans all lines for date-like tokens and returns the first one
// that parses, formatted as ISO 8601.
func ExtractDate(lines []string) string {
	for _, line := range lines {
		for _, cand := range reDateCandidate.FindAllString(line, -1) {
			if t, ok := ParseDate(cand); ok {
				return t.Format("2006-01-02")
			}
		}
	}
	return ""
}

var reAlphaRun = regexp.MustCompile(`[A-Za-z]+`)

// normalizeDateToken title-cases month names ("25 DEC 2024" -> "25 Dec 2024")
// and collapses repeated whitespace so time.Parse can match.
func normalizeDateToken(raw string) string {
	s := strings.Join(strings.Fields(strings.TrimSpace(raw)), " ")
	s = strings.TrimSuffix(s, ",")
	return reAlphaRun.ReplaceAllStringFunc(s, func(w string) string {
		if len(w) == 1 {
			return strings.ToUpper(w)
		}
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
}
