// Package config provides configuration management for the contentlint CLI.
//
// Values are layered from built-in defaults, a contentlint.yaml file,
// CONTENTLINT_ environment variables and finally explicitly set flags.
// The rule list itself uses the shared core.RuleConfig type.
package config

import (
	"github.com/leapstack-labs/contentlint/internal/server"
	"github.com/leapstack-labs/contentlint/internal/state"
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// RuleConfig is an alias for the shared rule entry type.
type RuleConfig = core.RuleConfig

// HistoryConfig controls the run history store.
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// ServeConfig holds settings for the HTTP API.
type ServeConfig struct {
	Addr string `koanf:"addr"`
}

// LogConfig selects the level and encoding of diagnostic logs on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Config holds all CLI configuration options.
type Config struct {
	Rules     []RuleConfig  `koanf:"rules"`
	FailOn    string        `koanf:"fail_on"`
	Format    string        `koanf:"format"`
	Output    string        `koanf:"output"` // Terminal mode: auto, text, markdown, json
	Recursive bool          `koanf:"recursive"`
	Workers   int           `koanf:"workers"`
	Include   []string      `koanf:"include"`
	Exclude   []string      `koanf:"exclude"`
	HTMLMode  string        `koanf:"html_mode"`
	History   HistoryConfig `koanf:"history"`
	Serve     ServeConfig   `koanf:"serve"`
	Log       LogConfig     `koanf:"log"`
}

// Default configuration values.
const (
	DefaultFailOn      = "FAIL"
	DefaultFormat      = "md"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultHTMLMode    = "text"
	DefaultHistoryPath = state.DefaultPath
	DefaultServeAddr   = server.DefaultAddr
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// ConfigFileNames are searched for in the working directory, in order.
var ConfigFileNames = []string{"contentlint.yaml", "contentlint.yml"}

// FailOnSeverity returns the parsed fail_on threshold.
// Validate has already rejected unknown names, so the fallback is FAIL.
func (c *Config) FailOnSeverity() core.Severity {
	sev, ok := core.ParseSeverity(c.FailOn)
	if !ok {
		return core.SeverityFail
	}
	return sev
}

// LintConfig builds the engine configuration from the rule list.
func (c *Config) LintConfig() *lint.Config {
	return lint.NewConfig(c.Rules...)
}
