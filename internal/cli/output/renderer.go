// Package output renders CLI output for terminals, pipes and scripts.
//
// A Renderer picks one of three presentations: styled text for an
// interactive terminal, Markdown when piped, or JSON for tooling.
// ModeAuto chooses between text and Markdown by TTY detection.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode selects how output is presented.
type Mode string

// OutputMode is the name used by test helpers.
type OutputMode = Mode

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, IsTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   Mode(strings.ToLower(string(mode))),
		isTTY:  isTTY,
	}
	if isTTY {
		r.styles = NewStyles(out)
	} else {
		r.styles = PlainStyles()
	}
	return r
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// Mode returns the configured mode, which may be ModeAuto.
func (r *Renderer) Mode() Mode { return r.mode }

// IsTTY reports whether stdout is an interactive terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// EffectiveMode resolves ModeAuto: TTY=text, non-TTY=markdown.
func (r *Renderer) EffectiveMode() Mode {
	switch r.mode {
	case ModeText, ModeMarkdown, ModeJSON:
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the styles for this renderer. They render plain text
// when stdout is not a terminal.
func (r *Renderer) Styles() Styles { return r.styles }

// Writer returns the stdout writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the stderr writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Println writes a line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Eprintln writes a line to stderr.
func (r *Renderer) Eprintln(a ...any) {
	_, _ = fmt.Fprintln(r.errOut, a...)
}

// Header writes a section header.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		r.Println("")
		return
	}
	style := r.styles.Header2
	if level <= 1 {
		style = r.styles.Header1
	}
	r.Println(style.Render(text))
	r.Println("")
}

// Success writes a success message to stdout.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(SymbolSuccess + " " + msg))
}

// Warning writes a warning message to stdout.
func (r *Renderer) Warning(msg string) {
	r.Println(r.styles.Warning.Render(SymbolWarning + " " + msg))
}

// Error writes an error message to stderr.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(SymbolError+" "+msg))
}

// StatusLine writes one item with a status marker: success, warning, error or skipped.
func (r *Renderer) StatusLine(name, status, detail string) {
	var marker string
	switch status {
	case "success":
		marker = r.styles.Success.Render(SymbolSuccess)
	case "warning":
		marker = r.styles.Warning.Render(SymbolWarning)
	case "error":
		marker = r.styles.Error.Render(SymbolError)
	default:
		marker = r.styles.Muted.Render(SymbolSkipped)
	}
	line := "  " + marker + " " + name
	if detail != "" {
		line += " " + r.styles.Muted.Render("("+detail+")")
	}
	r.Println(line)
}

// JSON writes v as indented JSON to stdout.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolWarning = "!"
	SymbolError   = "✗"
	SymbolSkipped = "-"
)

// FormatHeader returns a Markdown header of the given level.
func FormatHeader(level int, text string) string {
	level = max(1, min(level, 6))
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns an indented "key: value" line.
func FormatKeyValue(key, value string) string {
	return "  " + key + ": " + value
}

// FormatCodeBlock returns a fenced Markdown code block.
func FormatCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimRight(code, "\n") + "\n```"
}
