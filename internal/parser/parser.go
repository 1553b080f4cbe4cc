// Package parser assembles full transaction records from the individual
// field extractors. It is the local, deterministic strategy: no I/O, no
// network, and no failure mode. Any string input, including the empty
// string, yields a valid record.
package parser

import (
	"strings"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/extract"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// Parser is the rule-based local strategy. The item vocabulary is fixed at
// construction; two Parse calls on the same transcript are byte-identical.
type Parser struct {
	vocab []string
}

// New returns a parser over the default item vocabulary plus any extra
// entries from configuration. Extras go after the defaults so the default
// precedence is preserved.
func New(extraItems ...string) *Parser {
	vocab := make([]string, 0, len(constants.DefaultItems)+len(extraItems))
	vocab = append(vocab, constants.DefaultItems...)
	for _, it := range extraItems {
		it = strings.ToLower(strings.TrimSpace(it))
		if it != "" {
			vocab = append(vocab, it)
		}
	}
	return &Parser{vocab: vocab}
}

// Parse extracts every field once and assembles the record. Currency is
// fixed to the domain constant, date stays null, and the source tag names
// the local strategy.
func (p *Parser) Parse(transcript string) *transaction.Parsed {
	lower := strings.ToLower(transcript)

	return &transaction.Parsed{
		Type:       extract.DetectType(lower),
		Item:       extract.Item(lower, p.vocab),
		Quantity:   extract.Quantity(transcript),
		Amount:     extract.Amount(transcript),
		Currency:   constants.CurrencyNGN,
		Method:     extract.Method(lower),
		Person:     extract.Person(transcript),
		Date:       nil,
		Raw:        transcript,
		Confidence: extract.ConfidenceLevel(extract.Score(transcript, p.vocab)),
		Source:     constants.SourceRegexParser,
	}
}

// Vocabulary exposes the active item vocabulary (for status/debugging).
func (p *Parser) Vocabulary() []string {
	out := make([]string, len(p.vocab))
	copy(out, p.vocab)
	return out
}
