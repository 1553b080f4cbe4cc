package hf

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/llm"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		Token:   "test-token",
		BaseURL: srv.URL,
		Model:   "test-model",
	}, nil)
}

func TestExtractSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"generated_text": `Here you go: {"type":"income","item":"rice","quantity":3,"amount":15000,"method":"cash"}`},
		})
	})

	rec, err := c.Extract(context.Background(), "Sold 3 bags of rice for 15k cash")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if gotPath != "/test-model" {
		t.Errorf("path = %q, want /test-model", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth header = %q", gotAuth)
	}
	inputs, _ := gotBody["inputs"].(string)
	if !strings.Contains(inputs, "Sold 3 bags of rice for 15k cash") {
		t.Error("prompt does not carry the transcript")
	}

	if rec.Type != constants.Income {
		t.Errorf("Type = %v, want income", rec.Type)
	}
	if rec.Amount == nil || *rec.Amount != 15000 {
		t.Errorf("Amount = %v, want 15000", rec.Amount)
	}
	if rec.Raw != "Sold 3 bags of rice for 15k cash" {
		t.Errorf("Raw = %q", rec.Raw)
	}
	if rec.Currency != constants.CurrencyNGN {
		t.Errorf("Currency = %q, want NGN", rec.Currency)
	}
}

func TestExtractModelLoading(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":          "Model test-model is currently loading",
			"estimated_time": 12.5,
		})
	})

	_, err := c.Extract(context.Background(), "t")

	var transient *llm.TransientUnavailableError
	if !errors.As(err, &transient) {
		t.Fatalf("err = %v, want TransientUnavailableError", err)
	}
	if transient.RetryAfter != 12500*time.Millisecond {
		t.Errorf("RetryAfter = %v, want 12.5s", transient.RetryAfter)
	}
}

func TestExtractModelLoadingDefaultRetry(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Extract(context.Background(), "t")

	var transient *llm.TransientUnavailableError
	if !errors.As(err, &transient) {
		t.Fatalf("err = %v, want TransientUnavailableError", err)
	}
	if transient.RetryAfter != 20*time.Second {
		t.Errorf("RetryAfter = %v, want default 20s", transient.RetryAfter)
	}
}

func TestExtractStatusError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Extract(context.Background(), "t")

	var status *llm.StatusError
	if !errors.As(err, &status) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if status.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", status.StatusCode)
	}
}

func TestExtractEmbeddedModelError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "input too long"})
	})

	_, err := c.Extract(context.Background(), "t")

	var modelErr *llm.ModelError
	if !errors.As(err, &modelErr) {
		t.Fatalf("err = %v, want ModelError", err)
	}
	if modelErr.Message != "input too long" {
		t.Errorf("Message = %q", modelErr.Message)
	}
}

func TestExtractNoJSONInOutput(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"generated_text": "I could not find a transaction in that text."},
		})
	})

	_, err := c.Extract(context.Background(), "t")
	if !errors.Is(err, llm.ErrNoJSONFound) {
		t.Fatalf("err = %v, want ErrNoJSONFound", err)
	}
}

func TestExtractNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(Config{Token: "test-token", BaseURL: srv.URL, Model: "m"}, nil)

	_, err := c.Extract(context.Background(), "t")
	if err == nil {
		t.Fatal("expected error after server shutdown")
	}
}

func TestReady(t *testing.T) {
	t.Setenv("HUGGING_FACE_TOKEN", "")

	if NewClient(Config{Token: "x"}, nil).Ready() != true {
		t.Error("client with token should be ready")
	}
	if NewClient(Config{}, nil).Ready() != false {
		t.Error("client without token should not be ready")
	}
}
