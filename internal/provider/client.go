// Package provider exposes a single configurable parse entry point over
// the two extraction strategies. The active strategy is an immutable value
// resolved at construction; reconfiguration returns a new client so
// concurrent requests never observe a half-switched state.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/llm"
	"github.com/cashflow-ng/cashflow-parser/internal/parser"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// Config wires the client. Strategy defaults to regex; requesting the
// huggingface strategy without a ready remote silently downgrades to regex
// (logged, not fatal).
type Config struct {
	Strategy    string
	Local       *parser.Parser
	Remote      llm.Extractor
	RemoteReady bool
	Logger      *slog.Logger
}

type Client struct {
	strategy    string
	local       *parser.Parser
	remote      llm.Extractor
	remoteReady bool
	logger      *slog.Logger
}

// Status is the read-only view of the client's configuration.
type Status struct {
	Current     string   `json:"current"`
	RemoteReady bool     `json:"huggingFaceReady"`
	Available   []string `json:"available"`
}

func New(cfg Config) *Client {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Local == nil {
		cfg.Local = parser.New()
	}
	if cfg.Strategy == "" {
		cfg.Strategy = constants.StrategyRegex
	}

	if cfg.Strategy == constants.StrategyHuggingFace && (!cfg.RemoteReady || cfg.Remote == nil) {
		cfg.Logger.Warn("provider.downgrade",
			"requested", constants.StrategyHuggingFace,
			"reason", "remote credential not configured",
		)
		cfg.Strategy = constants.StrategyRegex
	}

	cfg.Logger.Info("provider.ready", "strategy", cfg.Strategy, "remote_ready", cfg.RemoteReady)

	return &Client{
		strategy:    cfg.Strategy,
		local:       cfg.Local,
		remote:      cfg.Remote,
		remoteReady: cfg.RemoteReady && cfg.Remote != nil,
		logger:      cfg.Logger,
	}
}

// Parse runs the active strategy, stamps provenance and timing, and falls
// back to the local parser on any strategy error. It never fails for a
// well-formed string input.
func (c *Client) Parse(ctx context.Context, transcript string) *transaction.Parsed {
	start := time.Now()

	var rec *transaction.Parsed
	var err error
	switch c.strategy {
	case constants.StrategyHuggingFace:
		rec, err = c.remote.Extract(ctx, transcript)
	default:
		rec = c.local.Parse(transcript)
	}

	if err != nil {
		c.logger.Warn("provider.fallback",
			"strategy", c.strategy,
			"error", err,
		)
		rec = c.local.Parse(transcript)
		rec.Source = constants.SourceRegexFallback
		rec.FallbackReason = err.Error()
		rec.ProcessingTime = time.Since(start).Milliseconds()
		return rec
	}

	rec = rec.Clone()
	rec.Source = c.strategy
	rec.ProcessingTime = time.Since(start).Milliseconds()

	c.logger.Info("provider.parse.ok",
		"strategy", c.strategy,
		"confidence", rec.Confidence,
		"elapsed_ms", rec.ProcessingTime,
	)
	return rec
}

// WithStrategy returns a new client with the given strategy active,
// sharing the underlying parsers. Switching to huggingface without a
// ready remote fails instead of downgrading, since the caller asked for
// it explicitly.
func (c *Client) WithStrategy(strategy string) (*Client, error) {
	switch strategy {
	case constants.StrategyRegex:
	case constants.StrategyHuggingFace:
		if !c.remoteReady {
			return nil, fmt.Errorf("strategy %q not usable: remote credential not configured", strategy)
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	c.logger.Info("provider.switch", "from", c.strategy, "to", strategy)
	clone := *c
	clone.strategy = strategy
	return &clone, nil
}

func (c *Client) Status() Status {
	available := []string{constants.StrategyRegex}
	if c.remoteReady {
		available = append(available, constants.StrategyHuggingFace)
	}
	return Status{
		Current:     c.strategy,
		RemoteReady: c.remoteReady,
		Available:   available,
	}
}

// Strategy reports the active strategy name.
func (c *Client) Strategy() string { return c.strategy }
