package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/internal/report"
	"github.com/leapstack-labs/contentlint/internal/state"
)

// shortIDLen is how much of a run ID listings show. Any unique prefix is
// accepted by show and delete.
const shortIDLen = 8

// NewHistoryCommand creates the history command and its subcommands.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded lint runs",
		Long: `Inspect lint runs recorded with 'contentlint lint --history'.

Runs are stored in a SQLite database (history.path in contentlint.yaml,
default .contentlint/history.db).`,
		Example: `  # List recent runs
  contentlint history list

  # Re-render the report of a run
  contentlint history show 3f2a9c1e --format json`,
	}

	cmd.PersistentFlags().String("history-path", "", "History database path")

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryDeleteCommand())
	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			store, err := cmdCtx.OpenHistory()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return renderRuns(cmdCtx.Renderer, runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to show (0 for all)")
	return cmd
}

func renderRuns(r *output.Renderer, runs []*state.Run) error {
	if r.EffectiveMode() == output.ModeJSON {
		if runs == nil {
			runs = []*state.Run{}
		}
		return r.JSON(runs)
	}
	if len(runs) == 0 {
		r.Println("No runs recorded. Use 'contentlint lint --history' to record one.")
		return nil
	}

	rows := make([]output.RunRow, 0, len(runs))
	for _, run := range runs {
		id := run.ID
		if len(id) > shortIDLen {
			id = id[:shortIDLen]
		}
		rows = append(rows, output.RunRow{
			ID:       id,
			Started:  run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			Target:   run.Target,
			Files:    run.TotalFiles,
			Fail:     run.Fail,
			Warn:     run.Warn,
			Pass:     run.Pass,
			Failed:   run.Failed,
			Duration: run.Duration.Round(time.Millisecond).String(),
		})
	}
	r.RunsTable(rows)
	return nil
}

func newHistoryShowCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Re-render the report of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if format == "" {
				format = cmdCtx.Cfg.Format
			}
			rep, err := report.New(format)
			if err != nil {
				return err
			}

			store, err := cmdCtx.OpenHistory()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			results, err := store.RunResults(cmd.Context(), run.ID)
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			r.Eprintln(r.Styles().Muted.Render(fmt.Sprintf("Run %s: %s at %s (fail_on %s)",
				run.ID, run.Target, run.StartedAt.Local().Format(time.RFC3339), run.FailOn)))
			return rep.Write(r.Writer(), results)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: md, json (default: config format)")
	return cmd
}

func newHistoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			store, err := cmdCtx.OpenHistory()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := store.DeleteRun(cmd.Context(), run.ID); err != nil {
				return err
			}
			cmdCtx.Renderer.Success("Deleted run " + run.ID)
			return nil
		},
	}
}
