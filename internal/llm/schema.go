package llm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cashflow-ng/cashflow-parser/constants"
)

// BuildTransactionJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. Sanitized remote payloads are validated against it
// before being accepted, so the structural invariants (enum membership,
// non-negative amount, fixed currency) hold no matter what the model said.
func BuildTransactionJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": []string{string(constants.Income), string(constants.Expense), string(constants.Debt)},
			},
			"item":     map[string]any{"type": []string{"string", "null"}},
			"quantity": map[string]any{"type": []string{"integer", "null"}, "exclusiveMinimum": 0},
			"amount":   map[string]any{"type": []string{"number", "null"}, "minimum": 0},
			"currency": map[string]any{"const": constants.CurrencyNGN},
			"method": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "null"},
					map[string]any{"enum": []string{
						string(constants.MethodCash), string(constants.MethodPOS), string(constants.MethodTransfer),
					}},
				},
			},
			"person": map[string]any{"type": []string{"string", "null"}},
			"date":   map[string]any{"type": "null"},
			"raw":    map[string]any{"type": "string"},
			"confidence": map[string]any{
				"enum": []string{
					string(constants.ConfidenceHigh), string(constants.ConfidenceMedium), string(constants.ConfidenceLow),
				},
			},
		},
		"required": []string{"type", "currency", "raw", "confidence"},
	}
}

// ValidateJSONAgainstSchema validates a JSON document against a schema map.
func ValidateJSONAgainstSchema(schema map[string]any, doc []byte) error {
	sb, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	sch, err := jsonschema.CompileString("transaction.schema.json", string(sb))
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
