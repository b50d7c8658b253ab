package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

var codeTheme = "monokai"

// ConfigureCodeTheme sets the Chroma theme used for code blocks in help text.
// An empty theme keeps the current one.
func ConfigureCodeTheme(theme string) {
	if theme != "" {
		codeTheme = theme
	}
}

// RenderMarkdown renders help markdown for the terminal, wrapped at width.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour pads the end with blank lines
	return strings.TrimRight(rendered, "\n") + "\n", nil
}

// markdownStyle is glamour's dark style with the accent color on headings and
// inline code, muted links, and the configured code theme. Nested style
// pointers are replaced, never written through, since the base is shared.
func markdownStyle() ansi.StyleConfig {
	s := styles.DarkStyleConfig

	s.Document.Margin = uintPtr(MarkdownRenderMargin)
	s.Document.Color = nil

	var accent *string
	if color, ok := AccentColor(); ok {
		accent = stringPtr(color)
	}
	s.Heading.Color = accent
	s.H1.Color = accent
	s.H1.BackgroundColor = nil
	s.Code.Color = accent
	s.Code.BackgroundColor = nil

	muted := stringPtr("8")
	s.Link.Color = muted
	s.LinkText.Color = muted
	s.BlockQuote.Color = muted

	s.CodeBlock.Margin = uintPtr(MarkdownRenderMargin)
	s.CodeBlock.Theme = codeTheme
	s.CodeBlock.Chroma = nil
	return s
}

func stringPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }
