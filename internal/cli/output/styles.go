package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/contentlint/pkg/core"
)

// Styles holds the lipgloss styles used by text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Code    lipgloss.Style
}

// Palette.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
)

// NewStyles builds colored styles for a terminal writing to w.
func NewStyles(w io.Writer) Styles {
	lr := lipgloss.NewRenderer(w)
	return Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true),
		Header2: lr.NewStyle().Bold(true).Foreground(colorPrimary),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(colorMuted),
		Success: lr.NewStyle().Foreground(colorSuccess),
		Warning: lr.NewStyle().Foreground(colorWarning),
		Error:   lr.NewStyle().Foreground(colorError).Bold(true),
		Info:    lr.NewStyle().Foreground(colorPrimary),
		Code:    lr.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header1: plain,
		Header2: plain,
		Bold:    plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Info:    plain,
		Code:    plain,
	}
}

// Severity returns the style for a severity level.
func (s Styles) Severity(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityFail:
		return s.Error
	case core.SeverityWarn:
		return s.Warning
	default:
		return s.Success
	}
}
