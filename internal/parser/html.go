package parser

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

// HTMLMode selects how HTML is normalized.
type HTMLMode string

// HTML normalization modes.
const (
	// HTMLModeText joins visible text nodes into one line of prose.
	HTMLModeText HTMLMode = "text"
	// HTMLModeMarkdown converts to Markdown first, keeping paragraph breaks.
	HTMLModeMarkdown HTMLMode = "markdown"
)

// invisible elements whose text is never prose.
var invisible = map[string]bool{
	"script": true,
	"style":  true,
	"meta":   true,
	"link":   true,
}

// ParseHTML normalizes HTML content into a document.
func ParseHTML(path, raw string, mode HTMLMode) (*core.Document, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var text string
	switch mode {
	case HTMLModeMarkdown:
		md, err := htmltomarkdown.ConvertString(raw)
		if err != nil {
			return nil, fmt.Errorf("convert html to markdown: %w", err)
		}
		text = StripMarkdown(md)
	case HTMLModeText, "":
		text = collapseHTMLText(visibleText(root))
	default:
		return nil, fmt.Errorf("unknown html mode %q", mode)
	}

	doc := core.NewDocument(path, text)
	doc.Raw = raw
	if title, ok := findTitle(root); ok {
		doc.Metadata[MetaTitle] = title
	}
	return doc, nil
}

// visibleText joins every text node outside invisible elements with a space.
func visibleText(root *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && invisible[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(parts, " ")
}

// collapseHTMLText strips each line, splits it on double spaces and joins the
// non-empty pieces with single spaces.
func collapseHTMLText(text string) string {
	var chunks []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			if p := strings.TrimSpace(phrase); p != "" {
				chunks = append(chunks, p)
			}
		}
	}
	return strings.TrimSpace(strings.Join(chunks, " "))
}

func findTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		return strings.TrimSpace(sb.String()), true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title, ok := findTitle(c); ok {
			return title, true
		}
	}
	return "", false
}
