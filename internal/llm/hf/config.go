package hf

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the HuggingFace inference client.
type Config struct {
	Token        string        // if empty, falls back to env HUGGING_FACE_TOKEN
	BaseURL      string        // default https://api-inference.huggingface.co/models
	Model        string        // e.g. "microsoft/DialoGPT-medium"
	MaxNewTokens int           // default 200
	Temperature  float32       // default 0.1
	Timeout      time.Duration // http client timeout, default 30s
	RetryAfter   time.Duration // suggested delay on "model loading", default 20s
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Token == "" {
		cfg.Token = os.Getenv("HUGGING_FACE_TOKEN")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-inference.huggingface.co/models"
	}
	if cfg.Model == "" {
		cfg.Model = "microsoft/DialoGPT-medium"
	}
	if cfg.MaxNewTokens <= 0 {
		cfg.MaxNewTokens = 200
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryAfter <= 0 {
		cfg.RetryAfter = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Ready reports whether the client has a credential and can be used as a
// strategy. A client without a token is constructed but never selected.
func (c *Client) Ready() bool {
	return c.cfg.Token != ""
}
