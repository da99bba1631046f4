package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// defaultConfigYAML is written by `contentlint init` and supplies the rules
// when no configuration file is found.
//
//go:embed contentlint.yaml
var defaultConfigYAML []byte

var (
	// ErrConfigNotFound is returned when an explicitly named config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrNoRules is returned when the loaded configuration enables nothing to check.
	ErrNoRules = errors.New("no rules configured")
)

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// envPrefix is stripped from environment variables before they become keys.
const envPrefix = "CONTENTLINT_"

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// flagKeys bridges flag names that differ from their config keys.
var flagKeys = map[string]string{
	"history":      "history.enabled",
	"history-path": "history.path",
	"addr":         "serve.addr",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// NoBindAnnotation marks flags that share a name with a config key but mean
// something else for their command, so LoadConfig leaves them alone.
const NoBindAnnotation = "contentlint_no_bind"

// NoBind marks the named flags with NoBindAnnotation.
func NoBind(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = flags.SetAnnotation(name, NoBindAnnotation, []string{"true"})
	}
}

// DefaultConfigYAML returns the embedded default configuration file.
func DefaultConfigYAML() []byte {
	out := make([]byte, len(defaultConfigYAML))
	copy(out, defaultConfigYAML)
	return out
}

// findConfigFile finds the config file to use.
// Priority: explicit path > contentlint.yaml > contentlint.yml
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
			}
			return "", fmt.Errorf("stat config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, name := range ConfigFileNames {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"fail_on":         DefaultFailOn,
		"format":          DefaultFormat,
		"output":          DefaultOutput,
		"recursive":       true,
		"workers":         0,
		"html_mode":       DefaultHTMLMode,
		"history.enabled": false,
		"history.path":    DefaultHistoryPath,
		"serve.addr":      DefaultServeAddr,
		"log.level":       DefaultLogLevel,
		"log.format":      DefaultLogFormat,
	}
}

// loadEmbedded layers the embedded default file onto kf.
func loadEmbedded(kf *koanf.Koanf) error {
	m, err := yaml.Parser().Unmarshal(defaultConfigYAML)
	if err != nil {
		return fmt.Errorf("failed to parse default config: %w", err)
	}
	return kf.Load(confmap.Provider(m, ""), nil)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// Default returns the configuration contentlint uses when nothing is
// configured: the built-in defaults plus the embedded rule list.
func Default() *Config {
	dk := koanf.New(".")
	_ = dk.Load(confmap.Provider(defaults(), "."), nil)
	if err := loadEmbedded(dk); err != nil {
		panic(err) // embedded file is covered by tests
	}
	var cfg Config
	if err := dk.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// When no config file is found the embedded default supplies the rules.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")
	configFileUsed = ""

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file, or fall back to the embedded one
	path, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		configFileUsed = path
	} else if err := loadEmbedded(k); err != nil {
		return nil, err
	}

	// 3. Load environment variables (CONTENTLINT_ prefix)
	// Transform: CONTENTLINT_FAIL_ON -> fail_on, CONTENTLINT_HISTORY__PATH -> history.path
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			if _, ok := f.Annotations[NoBindAnnotation]; ok {
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
// An empty result means the embedded default supplied the rules.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.New(slog.DiscardHandler)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
