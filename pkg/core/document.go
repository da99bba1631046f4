package core

// Document is one parsed content file as seen by rule checkers.
//
// Text is the normalized, markup-stripped prose that checkers scan.
// Raw is the original file content and is used only to map match
// positions back to line numbers in the source file.
type Document struct {
	Path     string
	Text     string
	Raw      string
	Metadata map[string]any
}

// NewDocument builds a document whose raw and normalized text are the same.
// Useful for plain-text input such as API requests and tests.
func NewDocument(path, text string) *Document {
	return &Document{
		Path:     path,
		Text:     text,
		Raw:      text,
		Metadata: map[string]any{},
	}
}
