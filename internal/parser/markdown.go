package parser

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

// markdownRewrite is one normalization step applied in order.
type markdownRewrite struct {
	re   *regexp.Regexp
	repl string
}

// Order matters: code goes first so its contents are never treated as markup,
// and links are rewritten before images so `![alt](src)` keeps its `!`.
var markdownRewrites = []markdownRewrite{
	{regexp.MustCompile("(?m)^```[\\s\\S]*?^```"), ""},
	{regexp.MustCompile("(?m)^~~~[\\s\\S]*?^~~~"), ""},
	{regexp.MustCompile("`[^`]+`"), ""},
	{regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`), "$1"},
	{regexp.MustCompile(`!\[[^\]]*\]\([^\)]+\)`), ""},
	{regexp.MustCompile(`(?m)^#{1,6}\s+`), ""},
	{regexp.MustCompile(`\*\*([^\*]+)\*\*`), "$1"},
	{regexp.MustCompile(`\*([^\*]+)\*`), "$1"},
	{regexp.MustCompile(`__([^_]+)__`), "$1"},
	{regexp.MustCompile(`_([^_]+)_`), "$1"},
	{regexp.MustCompile(`<!--[\s\S]*?-->`), ""},
	{regexp.MustCompile(`\n\s*\n`), "\n\n"},
}

// StripMarkdown removes Markdown markup, keeping the prose. Paragraph breaks
// survive as blank lines.
func StripMarkdown(text string) string {
	for _, rw := range markdownRewrites {
		text = rw.re.ReplaceAllString(text, rw.repl)
	}
	return strings.TrimSpace(text)
}

// ParseMarkdown normalizes Markdown content into a document.
func ParseMarkdown(path, raw string) *core.Document {
	fm := ExtractFrontmatter(raw)

	doc := core.NewDocument(path, StripMarkdown(fm.Body))
	doc.Raw = raw
	if fm.HasYAML {
		doc.Metadata[MetaHasFrontmatter] = true
		if fm.Fields != nil {
			doc.Metadata[MetaFrontmatter] = fm.Fields
			if title, ok := fm.Fields["title"].(string); ok {
				doc.Metadata[MetaTitle] = title
			}
		}
		if fm.Err != nil {
			doc.Metadata[MetaFrontmatterError] = fm.Err.Error()
		}
	}
	return doc
}
