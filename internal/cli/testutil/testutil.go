// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// Content fixtures written by SetupTestProject.
const (
	CleanMarkdown  = "# Notes\n\nThe cat sat on the mat.\n"
	CutoffMarkdown = "---\ntitle: Library\n---\n# Library\n\nAs of my last knowledge update, the library had ten rooms.\n"
	CleanHTML      = "<html><head><title>Home</title></head><body><p>The dog ran to the park.</p></body></html>"
)

// SetupTestProject creates a temporary content tree:
//
//	docs/clean.md          no findings
//	docs/cutoff.md         one knowledge-cutoff FAIL
//	docs/page.html         no findings
//	docs/nested/cutoff.md  one knowledge-cutoff FAIL, only seen recursively
//	docs/notes.txt         ignored
func SetupTestProject(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	files := map[string]string{
		filepath.Join("docs", "clean.md"):            CleanMarkdown,
		filepath.Join("docs", "cutoff.md"):           CutoffMarkdown,
		filepath.Join("docs", "page.html"):           CleanHTML,
		filepath.Join("docs", "nested", "cutoff.md"): CutoffMarkdown,
		filepath.Join("docs", "notes.txt"):           "As of my last update this is ignored.",
	}

	for name, content := range files {
		WriteFile(t, tmpDir, name, content)
	}

	return tmpDir
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and basic structure.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	// Check for balanced code fences
	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	// Check that headers have content
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
