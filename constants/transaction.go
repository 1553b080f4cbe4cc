package constants

import "strings"

// CurrencyNGN is the fixed domain currency. It is never inferred from the
// transcript and never trusted from a remote model.
const CurrencyNGN = "NGN"

type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
	Debt    TxType = "debt"
)

var allTxTypes = []TxType{Income, Expense, Debt}

// CanonicalTxType coerces an arbitrary label into one of the three valid
// transaction types. Anything unrecognized collapses to Expense, the
// domain default.
func CanonicalTxType(input string) (TxType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, t := range allTxTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return Expense, false
}

type Method string

const (
	MethodCash     Method = "cash"
	MethodPOS      Method = "pos"
	MethodTransfer Method = "transfer"
)

var allMethods = []Method{MethodCash, MethodPOS, MethodTransfer}

// CanonicalMethod coerces an arbitrary label into a valid payment method.
// Unrecognized labels report ok=false and the caller should treat the
// method as absent.
func CanonicalMethod(input string) (Method, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, m := range allMethods {
		if normalized == string(m) {
			return m, true
		}
	}
	return "", false
}

// Confidence is a coarse three-level quality signal describing how much
// structure was recovered from a transcript. It is not a probability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Rank orders confidence levels for routing decisions: high > medium > low.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// AtLeast reports whether c is at least as confident as other.
func (c Confidence) AtLeast(other Confidence) bool {
	return c.Rank() >= other.Rank()
}

// Source tags identify which strategy produced a record. The orchestration
// layers append these; the extractors themselves only know SourceRegexParser.
const (
	SourceRegexParser     = "regex_parser"
	SourceRegexPrimary    = "regex_primary"
	SourceRegexFallback   = "regex_fallback"
	SourceRegexAIFallback = "regex_ai_fallback"
	SourceRegexAfterAI    = "regex_after_ai_check"
	SourceHuggingFace     = "huggingface_primary"
)

// Strategy names recognized by the provider client.
const (
	StrategyRegex       = "regex"
	StrategyHuggingFace = "huggingface"
)
