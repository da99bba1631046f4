package lint

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"golang.org/x/sync/errgroup"
)

// Observer receives per-document and per-checker events from an Analyzer.
// Implementations must be safe for concurrent use.
type Observer interface {
	DocumentLinted(path string, findings []Finding, elapsed time.Duration)
	CheckerFailed(ruleID string, err error)
}

// Loader produces the document for a path. Used by LintPaths so parsing runs
// inside the worker pool.
type Loader func(ctx context.Context, path string) (*core.Document, error)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers bounds how many documents are linted at once. Values below 1 mean one.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

// WithObserver attaches an observer for metrics.
func WithObserver(o Observer) Option {
	return func(a *Analyzer) { a.observer = o }
}

// Analyzer runs the configured checkers against documents.
type Analyzer struct {
	checkers []*Checker
	logger   *slog.Logger
	workers  int
	observer Observer
}

// NewAnalyzer builds one checker per active rule entry, in configuration order.
// Entries that fail to build (unknown id, bad setup) are logged and skipped so
// a single bad rule never blocks linting.
func NewAnalyzer(cfg *Config, logger *slog.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Analyzer{
		logger:  logger,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, rc := range cfg.ActiveRules() {
		c, err := NewChecker(rc)
		if err != nil {
			a.logger.Warn("skipping rule", "rule", rc.ID(), "error", err)
			continue
		}
		a.checkers = append(a.checkers, c)
	}
	return a
}

// Observer returns the attached observer, or nil.
func (a *Analyzer) Observer() Observer {
	return a.observer
}

// Checkers returns the active checkers in run order.
func (a *Analyzer) Checkers() []*Checker {
	return a.checkers
}

// LintDocument runs every checker against doc and concatenates their findings
// in checker order. A checker that errors or panics is logged and contributes nothing.
func (a *Analyzer) LintDocument(ctx context.Context, doc *core.Document) []Finding {
	start := time.Now()
	var findings []Finding
	for _, c := range a.checkers {
		if ctx.Err() != nil {
			break
		}
		found, err := a.runChecker(c, doc)
		if err != nil {
			a.logger.Warn("rule failed", "rule", c.ID(), "path", doc.Path, "error", err)
			if a.observer != nil {
				a.observer.CheckerFailed(c.ID(), err)
			}
			continue
		}
		findings = append(findings, found...)
	}
	if a.observer != nil {
		a.observer.DocumentLinted(doc.Path, findings, time.Since(start))
	}
	return findings
}

func (a *Analyzer) runChecker(c *Checker, doc *core.Document) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Check(doc)
}

// LintDocuments lints already-parsed documents. Only documents with findings
// appear in the results, in input order.
func (a *Analyzer) LintDocuments(ctx context.Context, docs []*core.Document) (*Results, error) {
	paths := make([]string, len(docs))
	byPath := make(map[string]*core.Document, len(docs))
	for i, d := range docs {
		paths[i] = d.Path
		byPath[d.Path] = d
	}
	return a.LintPaths(ctx, paths, func(_ context.Context, path string) (*core.Document, error) {
		return byPath[path], nil
	})
}

// LintPaths loads and lints each path on a bounded worker pool. A path that
// fails to load is logged and yields no findings. Only documents with findings
// appear in the results, in input order regardless of worker count.
func (a *Analyzer) LintPaths(ctx context.Context, paths []string, load Loader) (*Results, error) {
	perPath := make([][]Finding, len(paths))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)
	for i, path := range paths {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			doc, err := load(egctx, path)
			if err != nil {
				a.logger.Warn("skipping document", "path", path, "error", err)
				return nil
			}
			perPath[i] = a.LintDocument(egctx, doc)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	results := NewResults()
	for i, path := range paths {
		if len(perPath[i]) > 0 {
			results.Add(path, perPath[i])
		}
	}
	return results, nil
}
