package parser

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// FrontmatterResult holds the result of frontmatter extraction.
type FrontmatterResult struct {
	Fields  map[string]any // Parsed YAML; nil when absent or invalid
	Body    string         // Content after the frontmatter block
	HasYAML bool           // Whether a frontmatter block was found
	Err     error          // YAML decoding error, if any
}

// frontmatterPattern matches a leading --- ... --- block.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n`)

// ExtractFrontmatter splits a leading YAML frontmatter block from Markdown content.
// A block whose YAML does not decode still counts as frontmatter and is removed.
func ExtractFrontmatter(content string) *FrontmatterResult {
	result := &FrontmatterResult{Body: content}

	loc := frontmatterPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return result
	}

	result.HasYAML = true
	result.Body = content[loc[1]:]

	fields := make(map[string]any)
	if err := yaml.Unmarshal([]byte(content[loc[2]:loc[3]]), &fields); err != nil {
		result.Err = fmt.Errorf("invalid frontmatter YAML: %w", err)
		return result
	}
	result.Fields = fields
	return result
}
