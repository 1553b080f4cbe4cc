package extract

import "regexp"

// Amount patterns run against the ORIGINAL-case transcript so currency
// markers like "k" and "NGN" survive. They are tried in order and the
// first match wins; on transcripts with several large numbers this can
// pick the wrong one (a phone number beside the price). That precedence
// is a known heuristic limitation and is pinned by tests; do not reorder.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:,\d{3})*)\s*(k|kobo|naira|ngn)`), // 1,500 naira / 15k / 500 kobo
	regexp.MustCompile(`(?i)(\d+)k`),                                // 15k
	regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*(thousand|grand)`),  // 15 thousand / 2.50 grand
	regexp.MustCompile(`(\d+)\s*(\d{3})`),                           // "15 000" spoken as two groups
	regexp.MustCompile(`\b(\d{3,})\b`),                              // any bare run of 3+ digits
}

var (
	reAmountUnits    = regexp.MustCompile(`(?i)k|thousand|grand|naira|ngn|,`)
	reAmountSpace    = regexp.MustCompile(`\s+`)
	reThousandSuffix = regexp.MustCompile(`(?i)(\d+)k|(\d+)\s*(thousand|grand)`)
)

// Amount extracts a monetary value in whole naira, or nil when no pattern
// matches. The matched text has unit words and separators stripped, the
// remaining leading digits are parsed, and the value is multiplied by 1000
// when the match carried a "k" suffix or a thousand/grand word.
func Amount(transcript string) *float64 {
	for _, pattern := range amountPatterns {
		matched := pattern.FindString(transcript)
		if matched == "" {
			continue
		}

		cleaned := reAmountUnits.ReplaceAllString(matched, "")
		cleaned = reAmountSpace.ReplaceAllString(cleaned, "")
		n, ok := leadingInt(cleaned)
		if !ok {
			return nil
		}

		amount := float64(n)
		if reThousandSuffix.MatchString(matched) {
			amount *= 1000
		}
		return &amount
	}
	return nil
}

// leadingInt parses the leading run of ASCII digits, mirroring how the
// unit-stripped match text is turned into a number (trailing residue such
// as "obo" left over from "kobo" is ignored, and a decimal part like
// "15.00" truncates to 15).
func leadingInt(s string) (int, bool) {
	n := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	return n, seen
}
