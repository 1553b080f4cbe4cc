package extract

import (
	"regexp"
	"strings"

	"github.com/cashflow-ng/cashflow-parser/constants"
)

// Person patterns run against the ORIGINAL-case transcript: capitalization
// is the name signal. Transcripts from lower-cased speech-to-text output
// will degrade this extractor. Acknowledged limitation, not a bug.
var personPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:from|to|by|for)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`), // from Iya Biliki
	regexp.MustCompile(`(?:from|to|by|for)\s+([A-Z][a-z]+)`),               // from Ngozi
	regexp.MustCompile(`(?i:mama|baba|iya|brother|sister)\s+([A-Z][a-z]+)`), // Mama Ngozi
}

// Person extracts a counterparty name, trying each pattern in order and
// returning on the first match. A leading honorific in the captured name
// ("Iya Biliki") is stripped so only the name proper remains ("Biliki").
func Person(transcript string) *string {
	for _, pattern := range personPatterns {
		m := pattern.FindStringSubmatch(transcript)
		if m == nil {
			continue
		}
		name := stripHonorific(m[1])
		return &name
	}
	return nil
}

func stripHonorific(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name
	}
	first := strings.ToLower(fields[0])
	for _, h := range constants.Honorifics {
		if first == h {
			return strings.Join(fields[1:], " ")
		}
	}
	return name
}
