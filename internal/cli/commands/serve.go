package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/metrics"
	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/internal/server"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lint API over HTTP",
		Long: `Start an HTTP server that lints documents posted to it.

Routes:
  POST /v1/lint        lint {"path", "format", "content", "fail_on"}
  GET  /v1/rules       list rules (?group= filters)
  GET  /v1/rules/{id}  show one rule
  GET  /healthz        liveness probe
  GET  /metrics        Prometheus metrics

The server uses the same rule configuration as the lint command.`,
		Example: `  # Serve on the default address
  contentlint serve

  # Listen on all interfaces
  contentlint serve --addr 0.0.0.0:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().String("addr", config.DefaultServeAddr, "Listen address")
	cmd.Flags().String("html-mode", config.DefaultHTMLMode, "HTML normalization: text, markdown")
	cmd.Flags().Int("workers", 0, "Documents linted in parallel (default: number of CPUs)")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	m := metrics.New()
	analyzer := lint.NewAnalyzer(cfg.LintConfig(), cmdCtx.Logger,
		lint.WithWorkers(cfg.Workers),
		lint.WithObserver(m),
	)
	if len(analyzer.Checkers()) == 0 {
		return fmt.Errorf("%w: every rule is disabled or failed to load", config.ErrNoRules)
	}

	srv := server.New(server.Config{
		Addr:     cfg.Serve.Addr,
		Analyzer: analyzer,
		Parser:   parser.New(parser.HTMLMode(cfg.HTMLMode)),
		Metrics:  m,
		Logger:   cmdCtx.Logger,
	})

	r := cmdCtx.Renderer
	r.Eprintln(r.Styles().Success.Render(fmt.Sprintf("Serving %d rules on http://%s", len(analyzer.Checkers()), srv.Addr())))
	return srv.Serve(cmd.Context())
}
