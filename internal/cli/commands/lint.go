package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/internal/discover"
	"github.com/leapstack-labs/contentlint/internal/metrics"
	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/internal/provider"
	"github.com/leapstack-labs/contentlint/internal/report"
	"github.com/leapstack-labs/contentlint/internal/state"
	"github.com/leapstack-labs/contentlint/internal/watch"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules" // register all rules
)

// ErrLintFailed is returned when findings reach the fail_on threshold.
var ErrLintFailed = errors.New("linting failed")

// LintOptions holds options for the lint command.
// Settings that also live in contentlint.yaml (format, fail_on, recursive,
// workers, include, exclude, html_mode, history) arrive through the config.
type LintOptions struct {
	Path    string   // File or directory path
	Out     string   // Report file; stdout when empty
	Watch   bool     // Re-lint on change until interrupted
	Disable []string // Rule IDs to disable
	Rules   []string // Run only specific rules
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint <path>",
		Short: "Lint content files for writing quality issues",
		Long: `Scan Markdown and HTML files for AI-tells and weak prose patterns.

The report (Markdown or JSON) goes to stdout or --out. A severity summary
table is printed to stderr. The command exits with status 1 when any
finding reaches the --fail-on level.

Rules are configured in contentlint.yaml. Without one, every built-in rule
runs with its default thresholds.`,
		Example: `  # Lint a directory
  contentlint lint ./content

  # Write a JSON report
  contentlint lint ./content --format json --out ./reports/report.json

  # Fail on warnings too
  contentlint lint ./content --fail-on WARN

  # Lint a single file as Markdown
  contentlint lint ./docs/article.md --format md

  # Re-lint whenever a file changes
  contentlint lint ./content --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Report format: md, json")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Report file path (default: stdout)")
	cmd.Flags().String("fail-on", config.DefaultFailOn, "Exit with error at this severity or higher: FAIL, WARN, PASS")
	cmd.Flags().BoolP("recursive", "r", true, "Recursively scan directories")
	cmd.Flags().Int("workers", 0, "Documents linted in parallel (default: number of CPUs)")
	cmd.Flags().StringSlice("include", nil, "Glob patterns to lint instead of the default extensions")
	cmd.Flags().StringSlice("exclude", nil, "Glob patterns to skip")
	cmd.Flags().String("html-mode", config.DefaultHTMLMode, "HTML normalization: text, markdown")
	cmd.Flags().Bool("history", false, "Record the run in the history database")
	cmd.Flags().String("history-path", config.DefaultHistoryPath, "History database path")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint when files change")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return report.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("fail-on", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"FAIL", "WARN", "PASS"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	if _, err := os.Stat(opts.Path); err != nil {
		return fmt.Errorf("cannot lint %s: %w", opts.Path, err)
	}

	rep, err := report.New(cfg.Format)
	if err != nil {
		return err
	}

	analyzer := lint.NewAnalyzer(buildLintConfig(cfg, opts), cmdCtx.Logger,
		lint.WithWorkers(cfg.Workers),
		lint.WithObserver(metrics.New()),
	)
	if len(analyzer.Checkers()) == 0 {
		return fmt.Errorf("%w: every rule is disabled or failed to load", config.ErrNoRules)
	}

	l := &linter{
		cfg:      cfg,
		opts:     opts,
		logger:   cmdCtx.Logger,
		r:        cmdCtx.Renderer,
		reporter: rep,
		analyzer: analyzer,
		docs:     provider.New(parser.New(parser.HTMLMode(cfg.HTMLMode)), cmdCtx.Logger),
	}

	if cfg.History.Enabled {
		store, err := cmdCtx.OpenHistory()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		l.history = store
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Watch {
		return l.watch(ctx)
	}

	failed, err := l.run(ctx)
	if err != nil {
		return err
	}
	if failed {
		return ErrLintFailed
	}
	return nil
}

// buildLintConfig applies --rule and --disable on top of the configured rules.
func buildLintConfig(cfg *config.Config, opts *LintOptions) *lint.Config {
	var lintCfg *lint.Config
	if cfg != nil {
		lintCfg = cfg.LintConfig()
	} else {
		lintCfg = lint.NewConfig()
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}
	for _, id := range opts.Rules {
		lintCfg.Only(strings.TrimSpace(id))
	}

	return lintCfg
}

// linter runs one lint pass and, in watch mode, repeats it on change.
type linter struct {
	cfg      *config.Config
	opts     *LintOptions
	logger   *slog.Logger
	r        *output.Renderer
	reporter report.Reporter
	analyzer *lint.Analyzer
	docs     *provider.Provider
	history  state.Store
}

// run lints the target once, writes the report and summary, and reports
// whether the fail_on threshold was reached.
func (l *linter) run(ctx context.Context) (bool, error) {
	started := time.Now()

	paths, err := discover.Files(l.opts.Path, discover.Options{
		Recursive: l.cfg.Recursive,
		Include:   l.cfg.Include,
		Exclude:   l.cfg.Exclude,
	})
	if err != nil {
		return false, err
	}
	l.logger.Debug("discovered files", "path", l.opts.Path, "count", len(paths))

	results, err := l.analyzer.LintPaths(ctx, paths, l.docs.Load)
	if err != nil {
		return false, err
	}
	elapsed := time.Since(started)

	if err := l.writeReport(results); err != nil {
		return false, err
	}

	counts := lint.CountSeverities(results)
	l.r.SeverityTable(l.r.ErrWriter(), counts)

	threshold := l.cfg.FailOnSeverity()
	failed := lint.ShouldFail(counts, threshold)

	if l.history != nil {
		run, err := l.history.RecordRun(ctx, state.RunInput{
			Target:    l.opts.Path,
			StartedAt: started,
			Duration:  elapsed,
			FailOn:    threshold,
			Results:   results,
		})
		if err != nil {
			return failed, fmt.Errorf("record run: %w", err)
		}
		l.logger.Info("recorded run", "id", run.ID)
	}

	styles := l.r.Styles()
	if failed {
		l.r.Eprintln(styles.Error.Render(fmt.Sprintf("%s Linting failed: Found issues at %s level or higher", output.SymbolError, threshold)))
	} else {
		l.r.Eprintln(styles.Success.Render(output.SymbolSuccess + " Linting passed"))
	}
	return failed, nil
}

func (l *linter) writeReport(results *lint.Results) error {
	if l.opts.Out == "" {
		if err := l.reporter.Write(l.r.Writer(), results); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	if err := report.WriteFile(l.opts.Out, l.reporter, results); err != nil {
		return err
	}
	l.r.Eprintln(l.r.Styles().Success.Render("Report written to: " + l.opts.Out))
	return nil
}

// watch runs once, then again after each settled batch of file changes,
// until ctx is cancelled. Unchanged files are served from the parse cache.
func (l *linter) watch(ctx context.Context) error {
	if _, err := l.run(ctx); err != nil {
		return err
	}
	l.r.Eprintln(l.r.Styles().Muted.Render("Watching " + l.opts.Path + " for changes (Ctrl+C to stop)"))

	w := &watch.Watcher{
		Root:      l.opts.Path,
		Recursive: l.cfg.Recursive,
		Logger:    l.logger,
		OnChange: func(ctx context.Context, changed, removed []string) {
			for _, p := range changed {
				l.docs.Invalidate(p)
			}
			for _, p := range removed {
				l.docs.Invalidate(p)
			}
			l.logger.Info("files changed", "changed", len(changed), "removed", len(removed))
			if _, err := l.run(ctx); err != nil && ctx.Err() == nil {
				l.r.Error(err.Error())
			}
		},
	}
	return w.Run(ctx)
}
