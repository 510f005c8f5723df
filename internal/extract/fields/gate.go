package fields

import (
	"regexp"
	"strings"
)

var (
	reGate     = regexp.MustCompile(`(?i)\bgate\b[:\s]*([A-Z0-9]{1,4})\b`)
	reTerminal = regexp.MustCompile(`(?i)\b(?:terminal|term)\b[:\s]*([A-Z0-9]{1,4})\b`)
)

// ExtractGate finds a label-anchored gate token, 1-4 alphanumerics.
func ExtractGate(lines []string) string {
	return labelAnchored(lines, reGate)
}

// ExtractTerminal finds a label-anchored terminal token, 1-4 alphanumerics.
func ExtractTerminal(lines []string) string {
	return labelAnchored(lines, reTerminal)
}

func labelAnchored(lines []string, re *regexp.Regexp) string {
	for _, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tok := strings.ToUpper(m[1])
		// The label word itself can be re-captured when OCR doubles it.
		if tok == "GATE" || tok == "TERM" || tok == "NO" {
			continue
		}
		return tok
	}
	return ""
}
