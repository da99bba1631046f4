package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display contentlint version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ContentLint v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Prose linter with %d built-in rules\n", lint.Count())
		},
	}
}
