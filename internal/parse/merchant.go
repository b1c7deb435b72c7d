package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// merchantPatterns are tried in order; each captures the trailing span after
// a vendor preposition.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+(.+)$`),
	regexp.MustCompile(`(?i)\bfrom\s+(.+)$`),
	regexp.MustCompile(`@\s*(.+)$`),
}

// minMerchantLength rejects implausibly short captures such as stray
// articles; those are treated as non-matches.
const minMerchantLength = 3

// ExtractMerchant returns the trailing vendor name mentioned in text, or ""
// when no pattern produces a plausible capture.
func ExtractMerchant(text string) string {
	for _, re := range merchantPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		captured := strings.TrimSpace(m[1])
		captured = strings.TrimRight(captured, ".,!?;: ")
		if utf8.RuneCountInString(captured) < minMerchantLength {
			continue
		}
		return captured
	}
	return ""
}
