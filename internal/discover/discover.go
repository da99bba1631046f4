// Package discover finds content files to lint.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options controls which files are discovered.
type Options struct {
	// Recursive descends into subdirectories. Default true in the CLI.
	Recursive bool

	// Include overrides the default extension patterns. Patterns are matched
	// relative to the root with doublestar syntax.
	Include []string

	// Exclude drops any file whose root-relative path matches.
	Exclude []string
}

// DefaultExtensions are the file types the parsers understand.
var DefaultExtensions = []string{"md", "html", "htm"}

// Patterns returns the default glob patterns for the given recursion mode.
// Markdown files come first, then HTML.
func Patterns(recursive bool) []string {
	prefix := ""
	if recursive {
		prefix = "**/"
	}
	patterns := make([]string, 0, len(DefaultExtensions))
	for _, ext := range DefaultExtensions {
		patterns = append(patterns, prefix+"*."+ext)
	}
	return patterns
}

// Files returns the content files under root. When root is a file it is
// returned as-is, without checking its extension.
//
// Files are grouped by pattern and sorted within each group so output is
// stable. A file matched by more than one pattern appears once.
func Files(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	for _, p := range slices.Concat(opts.Include, opts.Exclude) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	patterns := opts.Include
	if len(patterns) == 0 {
		patterns = Patterns(opts.Recursive)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		slices.Sort(matches)
		for _, rel := range matches {
			if seen[rel] || excluded(rel, opts.Exclude) {
				continue
			}
			seen[rel] = true
			files = append(files, filepath.Join(root, filepath.FromSlash(rel)))
		}
	}
	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// IsContentFile reports whether path has one of the default extensions.
func IsContentFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return slices.Contains(DefaultExtensions, ext)
}

// Dirs returns root and, when recursive, every directory below it. Hidden
// directories are skipped. Used to register watches.
func Dirs(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{filepath.Dir(root)}, nil
	}
	if !recursive {
		return []string{root}, nil
	}

	var dirs []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return dirs, nil
}
