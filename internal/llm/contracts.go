// Package llm holds the remote-extraction contract and the shared plumbing
// around it: prompt construction, JSON recovery from free-form model text,
// payload sanitization, schema validation, and the error taxonomy the
// orchestration layers absorb into local fallback.
package llm

import (
	"context"

	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// Extractor is the interface the provider client and orchestrator depend
// on. Implementations transform a transcript into a sanitized transaction
// record or fail with one of this package's typed errors.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (*transaction.Parsed, error)
}
