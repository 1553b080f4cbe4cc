// Package hf implements llm.Extractor against a HuggingFace-style
// text-generation inference endpoint.
package hf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-ng/cashflow-parser/internal/llm"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// generation is one completion object in the endpoint's success payload.
type generation struct {
	GeneratedText string `json:"generated_text"`
}

// errorPayload is the endpoint's error envelope. EstimatedTime accompanies
// "model loading" responses as a suggested wait in seconds.
type errorPayload struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Extract sends the extraction prompt and normalizes the model output into
// a sanitized transaction record. Every failure maps onto the llm error
// taxonomy so the orchestration layers can absorb it into local fallback.
func (c *Client) Extract(ctx context.Context, transcript string) (*transaction.Parsed, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("hf.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"transcript_len", len(transcript),
	)

	body := map[string]any{
		"inputs": llm.BuildExtractionPrompt(transcript),
		"parameters": map[string]any{
			"max_new_tokens":   c.cfg.MaxNewTokens,
			"temperature":      c.cfg.Temperature,
			"return_full_text": false,
		},
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + c.cfg.Model
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.Token}

	raw, status, httpErr := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)

	if status == http.StatusServiceUnavailable {
		retry := c.cfg.RetryAfter
		var ep errorPayload
		if json.Unmarshal(raw, &ep) == nil && ep.EstimatedTime > 0 {
			retry = time.Duration(ep.EstimatedTime * float64(time.Second))
		}
		c.logger.Warn("hf.extract.model_loading", "req_id", rid, "retry_after", retry)
		return nil, &llm.TransientUnavailableError{RetryAfter: retry}
	}
	if httpErr != nil {
		if status != 0 {
			c.logger.Error("hf.extract.status_error", "req_id", rid, "status", status)
			return nil, &llm.StatusError{StatusCode: status}
		}
		c.logger.Error("hf.extract.send_error", "req_id", rid, "error", httpErr)
		return nil, fmt.Errorf("send request: %w", httpErr)
	}

	generated, err := c.generatedText(raw)
	if err != nil {
		c.logger.Error("hf.extract.payload_error", "req_id", rid, "error", err)
		return nil, err
	}

	candidate, err := llm.ScanJSONObject(generated)
	if err != nil {
		c.logger.Error("hf.extract.no_json", "req_id", rid, "generated_len", len(generated))
		return nil, err
	}

	rec, err := llm.Sanitize([]byte(candidate), transcript, c.logger)
	if err != nil {
		c.logger.Error("hf.extract.sanitize_error", "req_id", rid, "error", err)
		return nil, err
	}

	c.logger.Info("hf.extract.ok",
		"req_id", rid,
		"type", rec.Type,
		"confidence", rec.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// generatedText pulls the model output from the payload, which is either
// an array of completion objects or an object with an embedded error.
func (c *Client) generatedText(raw []byte) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		var ep errorPayload
		if err := json.Unmarshal(raw, &ep); err == nil && ep.Error != "" {
			return "", &llm.ModelError{Message: ep.Error}
		}
		return "", fmt.Errorf("unexpected payload shape: %s", snippet(trimmed))
	}

	var gens []generation
	if err := json.Unmarshal(raw, &gens); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}
	if len(gens) == 0 {
		return "", fmt.Errorf("empty completion array")
	}
	return gens[0].GeneratedText, nil
}

func snippet(s string) string {
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
