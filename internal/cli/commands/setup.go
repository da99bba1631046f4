package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/internal/state"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// WithFormat returns the renderer to use when a command-level format flag is set.
func (c *CommandContext) WithFormat(cmd *cobra.Command, format string) *output.Renderer {
	if format == "" {
		return c.Renderer
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
}

// OpenHistory opens the run history store named by the configuration.
// The caller must Close it.
func (c *CommandContext) OpenHistory() (*state.SQLiteStore, error) {
	path := c.Cfg.History.Path
	if path == "" {
		path = state.DefaultPath
	}
	return state.Open(path, c.Logger)
}

// getConfig returns the current configuration.
// Commands run outside the root command (tests, embedding) get the defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
