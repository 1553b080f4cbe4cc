package transaction

import (
	"github.com/cashflow-ng/cashflow-parser/constants"
)

// Parsed is the central value object: one structured transaction extracted
// from a transcript. A record is created fresh on every parse call and is
// never mutated after construction; wrapping layers that need to annotate
// provenance or timing work on a Clone.
type Parsed struct {
	Type     constants.TxType  `json:"type"`
	Item     *string           `json:"item"`
	Quantity *int              `json:"quantity"`
	Amount   *float64          `json:"amount"`
	Currency string            `json:"currency"`
	Method   *constants.Method `json:"method"`
	Person   *string           `json:"person"`

	// Date is always null in this core; date extraction is unimplemented
	// upstream and deliberately out of scope here.
	Date *string `json:"date"`

	// Raw preserves the original transcript verbatim for audit/debugging.
	Raw string `json:"raw"`

	Confidence constants.Confidence `json:"confidence"`

	// Source identifies the strategy that produced this record. Appended by
	// the orchestration layer, not by the extractor itself.
	Source string `json:"source"`

	// ProcessingTime is wall-clock milliseconds spent producing the record,
	// stamped by the provider client.
	ProcessingTime int64 `json:"processingTime"`

	// FallbackReason carries the triggering error message when a remote
	// strategy failed and the local result was substituted.
	FallbackReason string `json:"fallbackReason,omitempty"`
}

// Clone returns a copy of the record. Pointer fields are duplicated so the
// copy shares no mutable state with the original.
func (p *Parsed) Clone() *Parsed {
	c := *p
	c.Item = clonePtr(p.Item)
	c.Quantity = clonePtr(p.Quantity)
	c.Amount = clonePtr(p.Amount)
	c.Method = clonePtr(p.Method)
	c.Person = clonePtr(p.Person)
	c.Date = clonePtr(p.Date)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// StrPtr and friends keep call sites terse when building records by hand.
func StrPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }

func FloatPtr(f float64) *float64 { return &f }

func MethodPtr(m constants.Method) *constants.Method { return &m }
