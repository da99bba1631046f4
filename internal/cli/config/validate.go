package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/internal/report"
	"github.com/leapstack-labs/contentlint/pkg/core"
)

// validOutputModes mirrors the modes understood by the output renderer.
var validOutputModes = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
// Problems in individual rule entries are not reported here: the engine
// logs and skips them so one bad entry does not stop the run.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Rules) == 0 {
		errs = append(errs, ErrNoRules)
	}
	if _, ok := core.ParseSeverity(c.FailOn); !ok {
		errs = append(errs, fmt.Errorf("fail_on: unknown severity %q (want FAIL, WARN or PASS)", c.FailOn))
	}
	if _, err := report.New(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	if c.Output != "" && !slices.Contains(validOutputModes, strings.ToLower(c.Output)) {
		errs = append(errs, fmt.Errorf("output: unknown mode %q (want %s)", c.Output, strings.Join(validOutputModes, ", ")))
	}
	switch parser.HTMLMode(c.HTMLMode) {
	case parser.HTMLModeText, parser.HTMLModeMarkdown, "":
	default:
		errs = append(errs, fmt.Errorf("html_mode: unknown mode %q (want text or markdown)", c.HTMLMode))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers: must not be negative, got %d", c.Workers))
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format))
	}

	return errors.Join(errs...)
}

// ParseLogLevel maps a level name to a slog level. Empty means warn.
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}
