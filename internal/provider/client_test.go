package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/parser"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// fakeExtractor is a canned remote strategy for routing tests.
type fakeExtractor struct {
	rec   *transaction.Parsed
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, transcript string) (*transaction.Parsed, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rec, nil
}

func remoteRecord() *transaction.Parsed {
	return &transaction.Parsed{
		Type:       constants.Income,
		Amount:     transaction.FloatPtr(15000),
		Currency:   constants.CurrencyNGN,
		Raw:        "Sold 3 bags of rice for 15k cash",
		Confidence: constants.ConfidenceHigh,
	}
}

func TestRegexStrategyParse(t *testing.T) {
	c := New(Config{Strategy: constants.StrategyRegex, Local: parser.New()})

	rec := c.Parse(context.Background(), "Sold 3 bags of rice for 15k cash")

	if rec.Source != constants.StrategyRegex {
		t.Errorf("Source = %q, want regex", rec.Source)
	}
	if rec.Type != constants.Income {
		t.Errorf("Type = %v, want income", rec.Type)
	}
	if rec.ProcessingTime < 0 {
		t.Errorf("ProcessingTime = %d, want >= 0", rec.ProcessingTime)
	}
}

func TestHuggingFaceStrategyParse(t *testing.T) {
	remote := &fakeExtractor{rec: remoteRecord()}
	c := New(Config{
		Strategy:    constants.StrategyHuggingFace,
		Local:       parser.New(),
		Remote:      remote,
		RemoteReady: true,
	})

	rec := c.Parse(context.Background(), "Sold 3 bags of rice for 15k cash")

	if remote.calls != 1 {
		t.Errorf("remote calls = %d, want 1", remote.calls)
	}
	if rec.Source != constants.StrategyHuggingFace {
		t.Errorf("Source = %q, want huggingface", rec.Source)
	}
	// The stamped record is a clone; the extractor's own record stays
	// untouched.
	if remote.rec.Source != "" {
		t.Errorf("extractor record mutated: Source = %q", remote.rec.Source)
	}
}

func TestRemoteFailureFallsBackToLocal(t *testing.T) {
	remote := &fakeExtractor{err: errors.New("model is loading")}
	c := New(Config{
		Strategy:    constants.StrategyHuggingFace,
		Local:       parser.New(),
		Remote:      remote,
		RemoteReady: true,
	})

	rec := c.Parse(context.Background(), "Sold 3 bags of rice for 15k cash")

	if rec == nil {
		t.Fatal("expected a record from fallback")
	}
	if rec.Source != constants.SourceRegexFallback {
		t.Errorf("Source = %q, want regex_fallback", rec.Source)
	}
	if rec.FallbackReason != "model is loading" {
		t.Errorf("FallbackReason = %q", rec.FallbackReason)
	}
	if rec.Type != constants.Income {
		t.Errorf("Type = %v, want income from local parse", rec.Type)
	}
}

func TestDowngradeWithoutRemote(t *testing.T) {
	c := New(Config{Strategy: constants.StrategyHuggingFace, Local: parser.New()})

	if c.Strategy() != constants.StrategyRegex {
		t.Errorf("Strategy = %q, want regex after downgrade", c.Strategy())
	}

	rec := c.Parse(context.Background(), "I buy market for 8k")
	if rec.Source != constants.StrategyRegex {
		t.Errorf("Source = %q, want regex", rec.Source)
	}
}

func TestWithStrategy(t *testing.T) {
	remote := &fakeExtractor{rec: remoteRecord()}
	c := New(Config{
		Strategy:    constants.StrategyRegex,
		Local:       parser.New(),
		Remote:      remote,
		RemoteReady: true,
	})

	switched, err := c.WithStrategy(constants.StrategyHuggingFace)
	if err != nil {
		t.Fatalf("WithStrategy: %v", err)
	}
	if switched.Strategy() != constants.StrategyHuggingFace {
		t.Errorf("switched strategy = %q", switched.Strategy())
	}
	// The original is unchanged; reconfiguration is not in-place.
	if c.Strategy() != constants.StrategyRegex {
		t.Errorf("original strategy = %q, want regex", c.Strategy())
	}

	if _, err := c.WithStrategy("markov"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestWithStrategyRequiresReadyRemote(t *testing.T) {
	c := New(Config{Strategy: constants.StrategyRegex, Local: parser.New()})

	if _, err := c.WithStrategy(constants.StrategyHuggingFace); err == nil {
		t.Error("expected error switching to huggingface without a remote")
	}
}

func TestStatus(t *testing.T) {
	remote := &fakeExtractor{rec: remoteRecord()}

	withRemote := New(Config{
		Strategy:    constants.StrategyRegex,
		Local:       parser.New(),
		Remote:      remote,
		RemoteReady: true,
	})
	st := withRemote.Status()
	if st.Current != constants.StrategyRegex {
		t.Errorf("Current = %q", st.Current)
	}
	if !st.RemoteReady {
		t.Error("RemoteReady = false, want true")
	}
	if len(st.Available) != 2 {
		t.Errorf("Available = %v, want both strategies", st.Available)
	}

	withoutRemote := New(Config{Strategy: constants.StrategyRegex, Local: parser.New()})
	st = withoutRemote.Status()
	if len(st.Available) != 1 || st.Available[0] != constants.StrategyRegex {
		t.Errorf("Available = %v, want regex only", st.Available)
	}
}
