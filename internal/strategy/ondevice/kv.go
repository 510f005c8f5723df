package ondevice

import (
	"regexp"
	"strings"
	"time"

	"paxscan/internal/domain"
	"paxscan/internal/extract/fields"
)

// The on-device model answers in free text, typically one "Label: value"
// line per field. This loose parser is deliberately separate from the strict
// schema gate of the remote strategy: it salvages what it can and discards
// the rest.

var (
	reBulletPrefix = regexp.MustCompile(`^[\s\-*•\d.)]+`)
	reCode         = regexp.MustCompile(`^[A-Z]{3}$`)
	reParenCode    = regexp.MustCompile(`\(([A-Za-z]{3})\)`)
)

var emptyMarkers = map[string]bool{
	"": true, "none": true, "n/a": true, "na": true, "not found": true,
	"unknown": true, "not available": true, "not visible": true, "-": true,
}

// ParseKV extracts record fields from free model text via label-keyword
// matching. Unrecognized labels are ignored; field values pass through the
// same validators the pattern extractors use, so garbage never propagates.
func ParseKV(text string) *domain.BoardingPassRecord {
	rec := &domain.BoardingPassRecord{FoundAt: time.Now().UTC()}

	for _, line := range strings.Split(text, "\n") {
		line = reBulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(line[:idx]))
		value := strings.Trim(strings.TrimSpace(line[idx+1:]), `"'`)
		if emptyMarkers[strings.ToLower(value)] {
			continue
		}
		assign(rec, label, value)
	}
	return rec
}

func assign(rec *domain.BoardingPassRecord, label, value string) {
	switch {
	case has(label, "flight"):
		if fn := strings.ToUpper(strings.ReplaceAll(value, " ", "")); len(fn) >= 3 && len(fn) <= 7 {
			rec.FlightNumber = fn
		}
	case has(label, "airline", "carrier"):
		rec.Airline = value
	case has(label, "passenger", "name"):
		rec.PassengerName = value
	case has(label, "departure code", "origin code", "from code"):
		setCode(&rec.DepartureCode, value)
	case has(label, "arrival code", "destination code", "to code"):
		setCode(&rec.ArrivalCode, value)
	case has(label, "departure city", "origin", "from"):
		setEndpoint(&rec.DepartureCode, &rec.DepartureCity, value)
	case has(label, "arrival city", "destination", "to"):
		setEndpoint(&rec.ArrivalCode, &rec.ArrivalCity, value)
	case has(label, "boarding time", "boarding"):
		if t, ok := fields.ValidateTime(value); ok {
			rec.BoardingTime = t
		}
	case has(label, "departure time"):
		if t, ok := fields.ValidateTime(value); ok {
			rec.DepartureTime = t
		}
	case has(label, "arrival time"):
		if t, ok := fields.ValidateTime(value); ok {
			rec.ArrivalTime = t
		}
	case has(label, "time"):
		if t, ok := fields.ValidateTime(value); ok && rec.DepartureTime == "" {
			rec.DepartureTime = t
		}
	case has(label, "date"):
		if d, ok := fields.ParseDate(value); ok {
			rec.DepartureDate = d.Format("2006-01-02")
		}
	case has(label, "gate"):
		rec.Gate = strings.ToUpper(value)
	case has(label, "terminal"):
		rec.Terminal = strings.ToUpper(value)
	case has(label, "seat"):
		rec.Seat = strings.ToUpper(value)
	case has(label, "pnr", "confirmation", "booking", "locator", "record"):
		rec.ConfirmationCode = strings.ToUpper(value)
	case has(label, "ticket"):
		rec.TicketNumber = value
	case has(label, "duration"):
		rec.FlightDuration = value
	}
}

// setEndpoint handles values that may be a city ("Hyderabad"), a code
// ("HYD"), or both ("Hyderabad (HYD)").
func setEndpoint(code, city *string, value string) {
	if m := reParenCode.FindStringSubmatch(value); m != nil {
		*code = strings.ToUpper(m[1])
		*city = strings.TrimSpace(strings.Split(value, "(")[0])
		return
	}
	upper := strings.ToUpper(strings.TrimSpace(value))
	if reCode.MatchString(upper) {
		*code = upper
		return
	}
	*city = strings.TrimSpace(value)
}

func setCode(dst *string, value string) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if reCode.MatchString(upper) {
		*dst = upper
	}
}

func has(label string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(label, k) {
			return true
		}
	}
	return false
}
