// Package extract holds the rule-based field extractors for informal
// financial speech (English and Nigerian Pidgin). Every function is pure:
// one transcript in, one optional field out, no shared state between calls.
//
// Pattern order inside each extractor is load-bearing business logic, not
// an artifact. Income and debt phrasing is lexically narrower than the
// broad expense vocabulary and must not be shadowed by it.
package extract

import (
	"regexp"
	"strings"

	"github.com/cashflow-ng/cashflow-parser/constants"
)

var (
	reIncome  = regexp.MustCompile(`(?i)(sold|collect|received|paid me|give me|i get|i collect|na him pay me)`)
	reDebt    = regexp.MustCompile(`(?i)(owe|debt|borrow|i owe|i dey owe|him owe|she owe|na him owe)`)
	reExpense = regexp.MustCompile(`(?i)(buy|bought|spent|pay|i buy|i pay|i spend|make i buy)`)

	reQuantity = regexp.MustCompile(`(?i)\b(\d+)\s+(bag|bags|crate|crates|item|items|piece|pieces)`)
)

// DetectType classifies a lower-cased transcript by testing the keyword
// groups in fixed priority order: income > debt > expense. If nothing
// matches, the type defaults to expense.
func DetectType(lower string) constants.TxType {
	if reIncome.MatchString(lower) {
		return constants.Income
	}
	if reDebt.MatchString(lower) {
		return constants.Debt
	}
	if reExpense.MatchString(lower) {
		return constants.Expense
	}
	return constants.Expense
}

// Item scans a lower-cased transcript for the first vocabulary entry it
// contains, in vocabulary order. This is a closed-set lookup, not NLP.
func Item(lower string, vocab []string) *string {
	for _, item := range vocab {
		if strings.Contains(lower, item) {
			v := item
			return &v
		}
	}
	return nil
}

// Quantity captures an integer immediately followed by a unit-of-count
// word (bag/crate/item/piece, singular or plural).
func Quantity(transcript string) *int {
	m := reQuantity.FindStringSubmatch(transcript)
	if m == nil {
		return nil
	}
	n, ok := leadingInt(m[1])
	if !ok {
		return nil
	}
	return &n
}

// Method maps payment wording to a method enum. Test order is fixed:
// cash, then pos/card, then transfer/bank.
func Method(lower string) *constants.Method {
	switch {
	case strings.Contains(lower, "cash"):
		m := constants.MethodCash
		return &m
	case strings.Contains(lower, "pos") || strings.Contains(lower, "card"):
		m := constants.MethodPOS
		return &m
	case strings.Contains(lower, "transfer") || strings.Contains(lower, "bank"):
		m := constants.MethodTransfer
		return &m
	}
	return nil
}
