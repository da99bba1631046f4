// Package provider caches parsed documents between lint passes.
//
// Watch mode and the HTTP server lint the same files repeatedly. The
// provider re-parses a file only when its content hash changes.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/pkg/core"
)

// Provider caches parsed documents keyed by path.
type Provider struct {
	documents   map[string]*ParsedDocument
	documentsMu sync.RWMutex

	parser *parser.Parser
	logger *slog.Logger
}

// New creates a new Provider that parses with p.
func New(p *parser.Parser, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if p == nil {
		p = parser.New(parser.HTMLModeText)
	}
	return &Provider{
		documents: make(map[string]*ParsedDocument),
		parser:    p,
		logger:    logger,
	}
}

// GetOrParse returns the cached document for path when content is unchanged,
// otherwise parses content and caches the result. Safe for concurrent use.
func (p *Provider) GetOrParse(path, content string) (*ParsedDocument, error) {
	hash := Hash(content)

	p.documentsMu.RLock()
	doc, exists := p.documents[path]
	p.documentsMu.RUnlock()
	if exists && doc.Hash == hash {
		return doc, nil
	}

	p.documentsMu.Lock()
	defer p.documentsMu.Unlock()

	// Double-check after acquiring write lock
	if doc, exists := p.documents[path]; exists && doc.Hash == hash {
		return doc, nil
	}

	doc, err := Parse(p.parser, path, content)
	if err != nil {
		return nil, err
	}
	if prev, ok := p.documents[path]; ok {
		doc.Version = prev.Version + 1
	}
	p.documents[path] = doc
	p.logger.Debug("parsed document", slog.String("path", path), slog.Int("version", doc.Version))
	return doc, nil
}

// Load reads path and returns its document, reusing the cache. It matches
// the lint.Loader signature.
func (p *Provider) Load(_ context.Context, path string) (*core.Document, error) {
	if _, err := parser.FormatOf(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from discovery
	if err != nil {
		p.Invalidate(path)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := p.GetOrParse(path, string(data))
	if err != nil {
		return nil, err
	}
	return doc.Document, nil
}

// Get returns a cached ParsedDocument without parsing.
// Returns nil if not cached.
func (p *Provider) Get(path string) *ParsedDocument {
	p.documentsMu.RLock()
	defer p.documentsMu.RUnlock()
	return p.documents[path]
}

// Invalidate removes a document from the cache.
func (p *Provider) Invalidate(path string) {
	p.documentsMu.Lock()
	defer p.documentsMu.Unlock()
	delete(p.documents, path)
}

// InvalidateAll clears the entire document cache.
func (p *Provider) InvalidateAll() {
	p.documentsMu.Lock()
	defer p.documentsMu.Unlock()
	p.documents = make(map[string]*ParsedDocument)
}

// Len returns the number of cached documents.
func (p *Provider) Len() int {
	p.documentsMu.RLock()
	defer p.documentsMu.RUnlock()
	return len(p.documents)
}
