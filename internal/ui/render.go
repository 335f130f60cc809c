package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// RenderPayload renders a node's payload text. On a color TTY with pretty
// enabled, it is rendered as Markdown via glamour; otherwise it is returned
// verbatim so piped output stays plain text.
func RenderPayload(payload string, pretty bool, width int) string {
	if !pretty || !ShouldUseColor() {
		return payload
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return payload
	}
	out, err := r.Render(payload)
	if err != nil {
		return payload
	}
	return strings.TrimRight(out, "\n")
}

// RenderCurrent highlights the current node path the way a status header does.
func RenderCurrent(path string) string {
	if !ShouldUseColor() {
		return path
	}
	return lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Render(path)
}

// RenderWarning formats a non-fatal warning line for CLI output.
func RenderWarning(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if !ShouldUseColor() {
		return msg
	}
	return TableWarningStyle.Render(msg)
}
