package output

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// SeverityTable writes the FAIL/WARN/PASS summary table to w.
// Markdown mode produces a pipe table; other modes a boxed one.
func (r *Renderer) SeverityTable(w io.Writer, counts lint.SeverityCounts) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Summary")
	t.AppendHeader(table.Row{"Severity", "Count"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	for _, sev := range core.Severities {
		name := sev.String()
		if r.isTTY {
			name = r.styles.Severity(sev).Render(name)
		}
		t.AppendRow(table.Row{name, strconv.Itoa(counts[sev])})
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// RunRow is one line of a history listing.
type RunRow struct {
	ID       string
	Started  string
	Target   string
	Files    int
	Fail     int
	Warn     int
	Pass     int
	Failed   bool
	Duration string
}

// RunsTable writes a table of recorded runs to stdout.
func (r *Renderer) RunsTable(rows []RunRow) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run", "Started", "Target", "Files", "FAIL", "WARN", "PASS", "Result", "Duration"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	for _, row := range rows {
		result := r.styles.Success.Render("passed")
		if row.Failed {
			result = r.styles.Error.Render("failed")
		}
		t.AppendRow(table.Row{row.ID, row.Started, row.Target, row.Files, row.Fail, row.Warn, row.Pass, result, row.Duration})
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// RuleRow is one line of the rule catalog.
type RuleRow struct {
	ID          string
	Group       string
	Severity    core.Severity
	Description string
	Rationale   string // verbose only
	Options     string // verbose only
}

// RulesTable writes the rule catalog to stdout. The Why and Options columns
// appear only when some row carries them.
func (r *Renderer) RulesTable(rows []RuleRow) {
	verbose := false
	for _, row := range rows {
		if row.Rationale != "" || row.Options != "" {
			verbose = true
			break
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	header := table.Row{"Rule", "Group", "Severity", "Description"}
	if verbose {
		header = append(header, "Why", "Options")
	}
	t.AppendHeader(header)

	for _, row := range rows {
		line := table.Row{r.styles.Bold.Render(row.ID), row.Group, r.styles.Severity(row.Severity).Render(row.Severity.String()), row.Description}
		if verbose {
			line = append(line, row.Rationale, row.Options)
		}
		t.AppendRow(line)
	}

	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
