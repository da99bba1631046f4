package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/cli/output"
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
	_ "github.com/leapstack-labs/contentlint/pkg/lint/rules" // register all rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Only rules in this group
	Verbose bool   // Add rationale and options to listings
	Format  string // text, markdown or json; empty follows --output
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "Describe the built-in lint rules",
		Long: `Print the rule catalog, or the full documentation of one rule.

Groups are style, rhythm, ai-tells and custom. A rule's page explains why the
pattern hurts, shows a bad and a good example, and lists the options it reads
from contentlint.yaml.

A terminal gets a styled table, a pipe gets Markdown, and --format json
emits the catalog for tooling.`,
		Example: `  # Catalog of every rule
  contentlint rules

  # One rule's documentation
  contentlint rules banned-words

  # Only the AI-tell detectors, with rationale
  contentlint rules --group ai-tells -V

  # Machine-readable catalog
  contentlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := NewCommandContext(cmd).WithFormat(cmd, opts.Format)
			if len(args) == 1 {
				return describeRule(r, args[0])
			}
			return printCatalog(r, catalog(opts.Group), opts.Verbose)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return lint.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Only list rules in this group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Include rationale and options")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")
	config.NoBind(cmd.Flags(), "format")

	return cmd
}

// catalog returns rule metadata sorted by group then ID, optionally
// restricted to one group. It never returns nil.
func catalog(group string) []core.RuleInfo {
	infos := []core.RuleInfo{}
	for _, def := range lint.GetByGroup(group) {
		infos = append(infos, lint.GetRuleInfo(lint.WrapRuleDef(def)))
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func printCatalog(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(RulesJSONOutput{Rules: rules, Count: len(rules)})
	case output.ModeMarkdown:
		printCatalogMarkdown(r, rules, verbose)
	default:
		styles := r.Styles()
		r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
		r.RulesTable(catalogRows(rules, verbose))
		r.Println(styles.Muted.Render("Run 'contentlint rules <rule-id>' for a rule's documentation"))
	}
	return nil
}

func catalogRows(rules []core.RuleInfo, verbose bool) []output.RuleRow {
	rows := make([]output.RuleRow, 0, len(rules))
	for _, rule := range rules {
		row := output.RuleRow{
			ID:          rule.ID,
			Group:       groupTitle(rule.Group),
			Severity:    rule.DefaultSeverity,
			Description: rule.Description,
		}
		if verbose {
			row.Rationale = truncateOneLine(rule.Rationale, 80)
			row.Options = strings.Join(rule.ConfigKeys, ", ")
		}
		rows = append(rows, row)
	}
	return rows
}

// printCatalogMarkdown writes one bullet list per group.
func printCatalogMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) {
	r.Println("# Lint Rules")

	group := ""
	for _, rule := range rules {
		if rule.Group != group {
			group = rule.Group
			r.Printf("\n## %s\n\n", groupTitle(group))
		}
		r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Description, rule.DefaultSeverity)
		if verbose && rule.Rationale != "" {
			r.Println("  > " + rule.Rationale)
		}
	}
	r.Println("")
}

// docSection is one titled block of a rule's documentation page.
type docSection struct {
	title string
	lines []string
	quote bool // examples are quoted in Markdown and tinted in text
	good  bool
}

// ruleSections lays out a rule's documentation, skipping empty parts.
func ruleSections(rule core.RuleInfo) []docSection {
	var sections []docSection
	add := func(s docSection) {
		if len(s.lines) > 0 && s.lines[0] != "" {
			sections = append(sections, s)
		}
	}
	add(docSection{title: "Why This Matters", lines: []string{rule.Rationale}})
	add(docSection{title: "Bad Example", lines: strings.Split(rule.BadExample, "\n"), quote: true})
	add(docSection{title: "Good Example", lines: strings.Split(rule.GoodExample, "\n"), quote: true, good: true})
	add(docSection{title: "How to Fix", lines: []string{rule.Fix}})
	if len(rule.ConfigKeys) > 0 {
		add(docSection{title: "Configuration", lines: []string{"Options: " + strings.Join(rule.ConfigKeys, ", ")}})
	}
	return sections
}

func describeRule(r *output.Renderer, id string) error {
	def, ok := lint.GetByID(id)
	if !ok {
		return fmt.Errorf("rule %q not found (see 'contentlint rules')", id)
	}
	rule := lint.GetRuleInfo(lint.WrapRuleDef(def))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
		r.Printf("**Group:** %s | **Severity:** `%s`\n\n", rule.Group, rule.DefaultSeverity)
		r.Println(rule.Description)
		for _, s := range ruleSections(rule) {
			r.Printf("\n## %s\n\n", s.title)
			prefix := ""
			if s.quote {
				prefix = "> "
			}
			for _, line := range s.lines {
				r.Println(prefix + line)
			}
		}
		r.Println("")
	default:
		styles := r.Styles()
		r.Println(styles.Header1.Render(rule.ID + " - " + rule.Name))
		r.Println(output.FormatKeyValue("Group", rule.Group))
		r.Println(output.FormatKeyValue("Severity", styles.Severity(rule.DefaultSeverity).Render(rule.DefaultSeverity.String())))
		r.Println("")
		r.Println("  " + rule.Description)
		for _, s := range ruleSections(rule) {
			r.Println("")
			r.Println(styles.Bold.Render(s.title))
			body := styles.Info
			switch {
			case s.quote && s.good:
				body = styles.Success
			case s.quote:
				body = styles.Muted
			}
			for _, line := range s.lines {
				r.Println(body.Render("  " + line))
			}
		}
		r.Println("")
	}
	return nil
}

// groupTitle turns a group id into a heading: "ai-tells" -> "AI Tells".
func groupTitle(group string) string {
	parts := strings.Split(group, "-")
	for i, p := range parts {
		switch {
		case p == "ai":
			parts[i] = "AI"
		case p != "":
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// truncateOneLine returns the first line of s, cut to maxLen with an ellipsis.
func truncateOneLine(s string, maxLen int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
