// Package cli wires the cobra command surface: parse, batch, compare and
// status. The CLI is the external collaborator of the parsing core. It
// feeds transcript strings in and renders structured records out.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cashflow-ng/cashflow-parser/internal/config"
	"github.com/cashflow-ng/cashflow-parser/internal/llm/hf"
	"github.com/cashflow-ng/cashflow-parser/internal/orchestrator"
	"github.com/cashflow-ng/cashflow-parser/internal/parser"
	"github.com/cashflow-ng/cashflow-parser/internal/provider"
	"github.com/cashflow-ng/cashflow-parser/internal/service"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Parse informal financial speech into structured transactions",
	Long: `cashflow turns voice-transcript text such as
"Sold 3 bags of rice for 15k cash" into structured transaction records.

A fast rule-based parser handles the common cases; an optional remote
language model is consulted for low-confidence transcripts when a
HuggingFace token is configured (HUGGING_FACE_TOKEN or config file).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// stack is everything a command needs, built once per invocation.
type stack struct {
	cfg    config.Config
	logger *slog.Logger
	local  *parser.Parser
	remote *hf.Client
	orch   *orchestrator.Orchestrator
	client *provider.Client
	svc    *service.Service
}

func buildStack() (*stack, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	local := parser.New(cfg.Parser.ExtraItems...)
	remote := hf.NewClient(hf.Config{
		Token:        cfg.Remote.Token,
		BaseURL:      cfg.Remote.BaseURL,
		Model:        cfg.Remote.Model,
		MaxNewTokens: cfg.Remote.MaxNewTokens,
		Timeout:      cfg.RemoteTimeout(),
	}, logger)

	orch := orchestrator.New(orchestrator.Config{
		Local:                local,
		Remote:               remote,
		RemoteReady:          remote.Ready(),
		UseAIForComplexCases: cfg.Orchestrator.UseAIForComplexCases,
		Logger:               logger,
	})
	client := provider.New(provider.Config{
		Strategy:    cfg.Provider,
		Local:       local,
		Remote:      remote,
		RemoteReady: remote.Ready(),
		Logger:      logger,
	})

	var router service.Router = orch
	if cfg.Router == config.RouterProvider {
		router = providerRouter{client}
	}
	svc := service.New(router, logger, nil)

	return &stack{
		cfg:    cfg,
		logger: logger,
		local:  local,
		remote: remote,
		orch:   orch,
		client: client,
		svc:    svc,
	}, nil
}

// providerRouter adapts the provider client to the service.Router shape.
type providerRouter struct {
	client *provider.Client
}

func (r providerRouter) Parse(ctx context.Context, transcript string) *transaction.Parsed {
	return r.client.Parse(ctx, transcript)
}
