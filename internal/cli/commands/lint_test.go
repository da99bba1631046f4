package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/internal/cli/config"
	"github.com/leapstack-labs/contentlint/internal/cli/testutil"
)

// jsonReport is the subset of the JSON report the tests inspect.
type jsonReport struct {
	Summary struct {
		TotalFiles     int            `json:"total_files"`
		TotalFindings  int            `json:"total_findings"`
		SeverityCounts map[string]int `json:"severity_counts"`
	} `json:"summary"`
	Files map[string][]struct {
		RuleID   string `json:"rule_id"`
		Severity string `json:"severity"`
		Line     *int   `json:"line"`
	} `json:"files"`
}

func decodeReport(t *testing.T, data string) jsonReport {
	t.Helper()
	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(data), &rep), "report should be valid JSON: %s", data)
	return rep
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("no options keeps configured rules", func(t *testing.T) {
		cfg := buildLintConfig(config.Default(), &LintOptions{})

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("adverbs"))
		assert.True(t, cfg.IsDisabled("custom-script"), "custom-script is disabled by default")
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg := buildLintConfig(config.Default(), &LintOptions{
			Disable: []string{"adverbs", " banned-words "},
		})

		assert.True(t, cfg.IsDisabled("adverbs"))
		assert.True(t, cfg.IsDisabled("banned-words"))
		assert.False(t, cfg.IsDisabled("weak-phrases"))
	})

	t.Run("only specific rules", func(t *testing.T) {
		cfg := buildLintConfig(config.Default(), &LintOptions{
			Rules: []string{"knowledge-cutoff"},
		})

		active := cfg.ActiveRules()
		require.Len(t, active, 1)
		assert.Equal(t, "knowledge-cutoff", active[0].ID())
		assert.True(t, cfg.IsDisabled("adverbs"))
	})

	t.Run("nil config", func(t *testing.T) {
		cfg := buildLintConfig(nil, &LintOptions{Disable: []string{"adverbs"}})

		assert.Empty(t, cfg.ActiveRules())
		assert.True(t, cfg.IsDisabled("adverbs"))
	})
}

func TestLintCommand_CleanFilePasses(t *testing.T) {
	t.Chdir(testutil.SetupTestProject(t))

	stdout, stderr, err := execute(t, NewLintCommand(), filepath.Join("docs", "clean.md"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "# ContentLint Report")
	assert.Contains(t, stderr, "Linting passed")
	testutil.AssertNoANSI(t, stderr)
}

func TestLintCommand_FailOnThreshold(t *testing.T) {
	t.Chdir(testutil.SetupTestProject(t))

	_, stderr, err := execute(t, NewLintCommand(), filepath.Join("docs", "cutoff.md"))
	require.ErrorIs(t, err, ErrLintFailed)
	assert.Contains(t, stderr, "Linting failed")
	assert.Contains(t, stderr, "FAIL")
}

func TestLintCommand_FailOnIgnoresDisabledRule(t *testing.T) {
	t.Chdir(testutil.SetupTestProject(t))

	_, _, err := execute(t, NewLintCommand(), filepath.Join("docs", "cutoff.md"), "--disable", "knowledge-cutoff")
	assert.NoError(t, err)
}

func TestLintCommand_JSONReport(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFiles int
	}{
		{
			name:      "recursive by default",
			args:      []string{"docs", "--format", "json"},
			wantFiles: 2,
		},
		{
			name:      "non-recursive",
			args:      []string{"docs", "--format", "json", "--recursive=false"},
			wantFiles: 1,
		},
		{
			name:      "exclude glob",
			args:      []string{"docs", "--format", "json", "--exclude", "**/nested/**"},
			wantFiles: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(testutil.SetupTestProject(t))

			stdout, _, err := execute(t, NewLintCommand(), tt.args...)
			require.ErrorIs(t, err, ErrLintFailed)

			// Only files with findings are reported.
			rep := decodeReport(t, stdout)
			assert.Equal(t, tt.wantFiles, rep.Summary.TotalFiles)
			assert.Len(t, rep.Files, tt.wantFiles)
			assert.NotContains(t, rep.Files, filepath.Join("docs", "clean.md"))
			assert.NotContains(t, rep.Files, filepath.Join("docs", "notes.txt"))

			findings := rep.Files[filepath.Join("docs", "cutoff.md")]
			require.NotEmpty(t, findings)
			var found bool
			for _, f := range findings {
				if f.RuleID == "knowledge-cutoff" {
					found = true
					assert.Equal(t, "FAIL", f.Severity)
					require.NotNil(t, f.Line)
					assert.Equal(t, 6, *f.Line)
				}
			}
			assert.True(t, found, "knowledge-cutoff finding expected")
		})
	}
}

func TestLintCommand_OutFile(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)
	out := filepath.Join("reports", "report.json")

	stdout, stderr, err := execute(t, NewLintCommand(), "docs", "--format", "json", "--out", out)
	require.ErrorIs(t, err, ErrLintFailed)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Report written to: "+out)

	data, err := os.ReadFile(filepath.Join(dir, out))
	require.NoError(t, err)
	rep := decodeReport(t, string(data))
	assert.Equal(t, 2, rep.Summary.TotalFiles)
}

func TestLintCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing path",
			args:    []string{"does-not-exist"},
			wantErr: "cannot lint does-not-exist",
		},
		{
			name:    "unknown format",
			args:    []string{"docs", "--format", "xml"},
			wantErr: "unsupported format",
		},
		{
			name:    "unknown fail-on",
			args:    []string{"docs", "--fail-on", "LOUD"},
			wantErr: "fail_on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(testutil.SetupTestProject(t))

			_, _, err := execute(t, NewLintCommand(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLintCommand_NoActiveRules(t *testing.T) {
	t.Chdir(testutil.SetupTestProject(t))

	_, _, err := execute(t, NewLintCommand(), "docs", "--rule", "custom-script")
	require.ErrorIs(t, err, config.ErrNoRules)
}

func TestLintCommand_ConfigFile(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)
	testutil.WriteFile(t, dir, "contentlint.yaml", `fail_on: WARN
format: json
rules:
  - id: banned-words
    enabled: true
    category: style
    banned_words: [mat]
`)

	stdout, _, err := execute(t, NewLintCommand(), filepath.Join("docs", "clean.md"))
	require.ErrorIs(t, err, ErrLintFailed)

	rep := decodeReport(t, stdout)
	findings := rep.Files[filepath.Join("docs", "clean.md")]
	require.Len(t, findings, 1)
	assert.Equal(t, "banned-words", findings[0].RuleID)
}
