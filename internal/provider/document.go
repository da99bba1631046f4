package provider

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/pkg/core"
)

// ParsedDocument is a cached parse result for a single file.
type ParsedDocument struct {
	Path     string
	Hash     string // SHA-256 of the raw content
	Version  int    // Increments each time the file is re-parsed
	Document *core.Document
	ParsedAt time.Time
}

// Parse normalizes content with p and wraps the result.
func Parse(p *parser.Parser, path, content string) (*ParsedDocument, error) {
	doc, err := p.Parse(path, content)
	if err != nil {
		return nil, err
	}
	return &ParsedDocument{
		Path:     path,
		Hash:     Hash(content),
		Version:  1,
		Document: doc,
		ParsedAt: time.Now(),
	}, nil
}

// Hash returns the hex SHA-256 of content.
func Hash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
