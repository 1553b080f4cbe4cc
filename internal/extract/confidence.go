package extract

import (
	"strings"

	"github.com/cashflow-ng/cashflow-parser/constants"
)

// Score is the point-weighted heuristic behind the confidence label, a
// proxy for how much structure was recovered rather than a statistical
// confidence. Amount dominates, a non-default type is the next strongest
// signal, then item and quantity.
func Score(transcript string, vocab []string) int {
	lower := strings.ToLower(transcript)

	score := 0
	if Amount(transcript) != nil {
		score += 40
	}
	if DetectType(lower) != constants.Expense {
		score += 30
	}
	if Item(lower, vocab) != nil {
		score += 20
	}
	if Quantity(transcript) != nil {
		score += 10
	}
	return score
}

// ConfidenceLevel maps a score onto the three ordered levels:
// >=70 high, >=40 medium, else low.
func ConfidenceLevel(score int) constants.Confidence {
	switch {
	case score >= 70:
		return constants.ConfidenceHigh
	case score >= 40:
		return constants.ConfidenceMedium
	}
	return constants.ConfidenceLow
}
