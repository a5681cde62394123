package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Heading styles a section heading for terminal output
func Heading(s string) string {
	return headingStyle.Render(s)
}

// RenderMarkdown converts markdown to terminal output using glamour.
// Plain content is returned unchanged when rendering is not possible or the
// requested format is plain text.
func RenderMarkdown(content string, format Format) string {
	if format == FormatText {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
