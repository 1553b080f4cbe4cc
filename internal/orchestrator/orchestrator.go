// Package orchestrator implements the confidence-gated two-tier parsing
// policy: the local parser always runs first and the remote model is
// consulted only when the local result is weak, and trusted only when it
// is clearly richer. Remote calls are slow and must prove themselves.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/llm"
	"github.com/cashflow-ng/cashflow-parser/internal/parser"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// detailMargin is how many detail-score points a remote result must beat
// the local one by before it is preferred.
const detailMargin = 10

type Config struct {
	Local       *parser.Parser
	Remote      llm.Extractor
	RemoteReady bool

	// UseAIForComplexCases gates the whole two-tier policy. When false the
	// orchestrator degenerates to local-only with a fallback source tag.
	UseAIForComplexCases bool

	Logger *slog.Logger
}

type Orchestrator struct {
	local       *parser.Parser
	remote      llm.Extractor
	remoteReady bool
	useAI       bool
	logger      *slog.Logger
}

type Status struct {
	AIEnabled        bool   `json:"aiEnabled"`
	HuggingFaceReady bool   `json:"huggingFaceReady"`
	Strategy         string `json:"strategy"`
}

func New(cfg Config) *Orchestrator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Local == nil {
		cfg.Local = parser.New()
	}
	return &Orchestrator{
		local:       cfg.Local,
		remote:      cfg.Remote,
		remoteReady: cfg.RemoteReady && cfg.Remote != nil,
		useAI:       cfg.UseAIForComplexCases,
		logger:      cfg.Logger,
	}
}

// Parse routes a transcript through the two-tier policy. It never fails:
// every path ends in a usable record whose source tag names the route
// taken.
func (o *Orchestrator) Parse(ctx context.Context, transcript string) *transaction.Parsed {
	start := time.Now()

	local := o.local.Parse(transcript)

	// Fast path: a high-confidence local parse wins outright.
	if local.Confidence == constants.ConfidenceHigh && o.useAI {
		local.Source = constants.SourceRegexPrimary
		local.ProcessingTime = time.Since(start).Milliseconds()
		o.logger.Info("orchestrator.local_primary", "confidence", local.Confidence)
		return local
	}

	if o.useAI && o.remoteReady {
		o.logger.Info("orchestrator.trying_remote", "local_confidence", local.Confidence)

		remote, err := o.remote.Extract(ctx, transcript)
		if err != nil {
			o.logger.Warn("orchestrator.remote_failed", "error", err)
			local.Source = constants.SourceRegexAIFallback
			local.FallbackReason = err.Error()
			local.ProcessingTime = time.Since(start).Milliseconds()
			return local
		}

		remote = remote.Clone()
		remote.Source = constants.SourceHuggingFace

		localScore := DetailScore(local)
		remoteScore := DetailScore(remote)
		if remoteScore > localScore+detailMargin {
			remote.ProcessingTime = time.Since(start).Milliseconds()
			o.logger.Info("orchestrator.remote_better",
				"remote_score", remoteScore, "local_score", localScore)
			return remote
		}

		o.logger.Info("orchestrator.local_kept",
			"remote_score", remoteScore, "local_score", localScore)
		local.Source = constants.SourceRegexAfterAI
		local.ProcessingTime = time.Since(start).Milliseconds()
		return local
	}

	local.Source = constants.SourceRegexFallback
	local.ProcessingTime = time.Since(start).Milliseconds()
	return local
}

func (o *Orchestrator) Status() Status {
	strategy := "regex only"
	if o.useAI {
		strategy = "smart routing"
	}
	return Status{
		AIEnabled:        o.useAI,
		HuggingFaceReady: o.remoteReady,
		Strategy:         strategy,
	}
}

// DetailScore is the heuristic richness total used to compare candidate
// records from different strategies. A zero amount or quantity counts as
// absent, matching the local extractor's notion of "recovered".
func DetailScore(rec *transaction.Parsed) int {
	score := 0
	if rec.Amount != nil && *rec.Amount != 0 {
		score += 30
	}
	if rec.Item != nil {
		score += 20
	}
	if rec.Quantity != nil && *rec.Quantity != 0 {
		score += 15
	}
	if rec.Person != nil {
		score += 15
	}
	if rec.Method != nil {
		score += 10
	}
	if rec.Type != "" && rec.Type != constants.Expense {
		score += 10
	}
	return score
}
