package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
)

// ErrConfigExists is returned when init would overwrite a file without --force.
var ErrConfigExists = errors.New("config file already exists")

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default contentlint.yaml",
		Long: `Write the built-in configuration to a file so it can be customized.

The generated file enables every rule with its default thresholds. The
custom-script rule is included but disabled until a script is configured.`,
		Example: `  # Create ./contentlint.yaml
  contentlint init

  # Write somewhere else
  contentlint init --output config/contentlint.yaml

  # Replace an existing file
  contentlint init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, outPath, force)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", config.ConfigFileNames[0], "Output path for config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	r := NewCommandContext(cmd).Renderer

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s. Use --force to overwrite", ErrConfigExists, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, config.DefaultConfigYAML(), 0o644); err != nil { //nolint:gosec // G306: config files are meant to be shared
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	r.Success("Created " + path)
	r.Println("Edit this file to customize linting rules.")
	return nil
}
