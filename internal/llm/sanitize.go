package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// Sanitize normalizes a candidate JSON fragment from the model into a
// valid transaction record. The model is never trusted:
//   - type is coerced to a valid enum value or defaults to expense
//   - quantity/amount are kept only when numeric (amount also non-negative)
//   - method is coerced to a valid enum value or dropped
//   - currency is forced to the domain constant
//   - raw is forced to the original transcript (never the model's echo)
//   - date stays null
//
// Confidence is recomputed from the fields that survived, so the record
// carries the same coarse quality signal as a local parse.
func Sanitize(candidate []byte, transcript string, logger *slog.Logger) (*transaction.Parsed, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(candidate, &m); err != nil {
		return nil, &InvalidJSONError{Err: err}
	}

	dropped := make([]string, 0, 4)

	rec := &transaction.Parsed{
		Currency: constants.CurrencyNGN,
		Raw:      transcript,
		Date:     nil,
	}

	txType, ok := constants.CanonicalTxType(stringField(m, "type"))
	if !ok && stringField(m, "type") != "" {
		dropped = append(dropped, "type")
	}
	rec.Type = txType

	if s := strings.TrimSpace(stringField(m, "item")); s != "" && !strings.EqualFold(s, "null") {
		rec.Item = &s
	}
	if s := strings.TrimSpace(stringField(m, "person")); s != "" && !strings.EqualFold(s, "null") {
		rec.Person = &s
	}

	switch q := m["quantity"].(type) {
	case float64:
		if q > 0 && q == math.Trunc(q) {
			n := int(q)
			rec.Quantity = &n
		} else {
			dropped = append(dropped, "quantity")
		}
	case nil:
	default:
		dropped = append(dropped, "quantity")
	}

	switch a := m["amount"].(type) {
	case float64:
		if a >= 0 && !math.IsInf(a, 0) && !math.IsNaN(a) {
			v := a
			rec.Amount = &v
		} else {
			dropped = append(dropped, "amount")
		}
	case nil:
	default:
		dropped = append(dropped, "amount")
	}

	// The prompt offers "null" as a literal method choice; a "null" string
	// is an absent method, not a drop worth warning about.
	if s := stringField(m, "method"); s != "" && !strings.EqualFold(s, "null") {
		if method, ok := constants.CanonicalMethod(s); ok {
			rec.Method = &method
		} else {
			dropped = append(dropped, "method")
		}
	}

	rec.Confidence = confidenceFromFields(rec)

	if len(dropped) > 0 {
		logger.Warn("llm.sanitize.dropped_fields", "dropped", dropped)
	}

	// Guard the structural invariants behind the schema before handing the
	// record up the stack.
	encoded, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("sanitize: encode record: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildTransactionJSONSchema(), encoded); err != nil {
		return nil, fmt.Errorf("sanitize: %w", err)
	}
	return rec, nil
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// confidenceFromFields applies the local scoring weights to an already
// sanitized record: which fields were populated, not how they were found.
func confidenceFromFields(rec *transaction.Parsed) constants.Confidence {
	score := 0
	if rec.Amount != nil && *rec.Amount != 0 {
		score += 40
	}
	if rec.Type != constants.Expense {
		score += 30
	}
	if rec.Item != nil {
		score += 20
	}
	if rec.Quantity != nil {
		score += 10
	}
	switch {
	case score >= 70:
		return constants.ConfidenceHigh
	case score >= 40:
		return constants.ConfidenceMedium
	}
	return constants.ConfidenceLow
}
