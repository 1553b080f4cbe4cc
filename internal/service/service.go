// Package service is the externally consumed entry point: one
// ParseTransaction operation wrapping a routing policy, plus aggregate
// statistics. A Service instance is constructed once per process by the
// caller; there is no package-level singleton and ResetStats is explicit,
// so tests never leak state into each other.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// Router is any policy that turns a transcript into a record without
// failing: the orchestrator or the provider client.
type Router interface {
	Parse(ctx context.Context, transcript string) *transaction.Parsed
}

// Envelope is the response shape handed to external consumers.
type Envelope struct {
	Success        bool                 `json:"success"`
	Data           *transaction.Parsed `json:"data"`
	Confidence     constants.Confidence `json:"confidence,omitempty"`
	Source         string               `json:"source,omitempty"`
	ProcessingTime int64                `json:"processingTime"`
	Error          string               `json:"error,omitempty"`
}

// Stats are the aggregate counters. Rates are computed at read time.
type Stats struct {
	TotalRequests     int64   `json:"totalRequests"`
	SuccessfulParses  int64   `json:"successfulParses"`
	FailedParses      int64   `json:"failedParses"`
	RegexUsed         int64   `json:"regexUsed"`
	AIUsed            int64   `json:"aiUsed"`
	AIFailed          int64   `json:"aiFailed"`
	SuccessRate       float64 `json:"successRate"`
	AverageConfidence float64 `json:"averageConfidence"`
}

type Service struct {
	router  Router
	logger  *slog.Logger
	metrics *Metrics

	mu                sync.Mutex
	totalRequests     int64
	successfulParses  int64
	failedParses      int64
	regexUsed         int64
	aiUsed            int64
	aiFailed          int64
	averageConfidence float64
}

// New builds a service around a router. Metrics may be nil when no
// registry is wired (CLI one-shot runs).
func New(router Router, logger *slog.Logger, metrics *Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{router: router, logger: logger, metrics: metrics}
}

// ParseTransaction parses one transcript and returns a success envelope.
// An extraction miss is NOT a failure; it is a valid low-confidence
// record. Success is false only for failures the local fallback cannot
// absorb (internal programming errors), which are caught rather than
// propagated so the caller always gets an envelope.
func (s *Service) ParseTransaction(ctx context.Context, transcript string) (env Envelope) {
	rid := uuid.New().String()
	start := time.Now()

	s.mu.Lock()
	s.totalRequests++
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("service.parse.panic", "req_id", rid, "panic", fmt.Sprint(r))
			s.recordFailure()
			env = Envelope{
				Success:    false,
				Error:      "failed to parse transaction",
				Confidence: constants.ConfidenceLow,
			}
		}
	}()

	s.logger.Info("service.parse.start", "req_id", rid, "transcript_len", len(transcript))

	rec := s.router.Parse(ctx, transcript)
	if rec == nil {
		s.logger.Error("service.parse.nil_record", "req_id", rid)
		s.recordFailure()
		return Envelope{
			Success:    false,
			Error:      "failed to parse transaction",
			Confidence: constants.ConfidenceLow,
		}
	}

	s.recordSuccess(rec)

	s.logger.Info("service.parse.ok",
		"req_id", rid,
		"source", rec.Source,
		"confidence", rec.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return Envelope{
		Success:        true,
		Data:           rec,
		Confidence:     rec.Confidence,
		Source:         rec.Source,
		ProcessingTime: rec.ProcessingTime,
	}
}

func (s *Service) recordSuccess(rec *transaction.Parsed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.successfulParses++

	// Source classification is substring-based on purpose: it must keep
	// working as orchestration layers add source tag variants.
	if strings.Contains(rec.Source, "regex") {
		s.regexUsed++
	}
	if strings.Contains(rec.Source, "huggingface") {
		s.aiUsed++
	}
	if strings.Contains(rec.Source, "fallback") {
		s.aiFailed++
	}

	score := confidenceScore(rec.Confidence)
	n := float64(s.successfulParses)
	s.averageConfidence = (s.averageConfidence*(n-1) + score) / n

	if s.metrics != nil {
		s.metrics.observe(rec)
	}
}

func (s *Service) recordFailure() {
	s.mu.Lock()
	s.failedParses++
	s.mu.Unlock()
	if s.metrics != nil {
		s.metrics.failures.Inc()
	}
}

// Stats returns a snapshot with derived rates, rounded to one decimal the
// way the dashboard consumes them.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		TotalRequests:     s.totalRequests,
		SuccessfulParses:  s.successfulParses,
		FailedParses:      s.failedParses,
		RegexUsed:         s.regexUsed,
		AIUsed:            s.aiUsed,
		AIFailed:          s.aiFailed,
		AverageConfidence: round1(s.averageConfidence),
	}
	if s.totalRequests > 0 {
		st.SuccessRate = round1(float64(s.successfulParses) / float64(s.totalRequests) * 100)
	}
	return st
}

// ResetStats zeroes all counters. Prometheus counters are monotonic by
// design and are left alone.
func (s *Service) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalRequests = 0
	s.successfulParses = 0
	s.failedParses = 0
	s.regexUsed = 0
	s.aiUsed = 0
	s.aiFailed = 0
	s.averageConfidence = 0
}

func confidenceScore(c constants.Confidence) float64 {
	switch c {
	case constants.ConfidenceHigh:
		return 100
	case constants.ConfidenceMedium:
		return 60
	case constants.ConfidenceLow:
		return 30
	}
	return 50
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
