package shell

import (
	"github.com/networkbook/networkbook/internal/helpdoc"
	"github.com/networkbook/networkbook/internal/ui"
)

// HelpMarkdown returns the help for topic, or the whole reference when topic
// is empty or unknown.
func HelpMarkdown(topic string) string {
	if topic != "" {
		if section, ok := helpdoc.Section(topic); ok {
			return section
		}
	}
	return helpdoc.Document()
}

// RenderHelp renders HelpMarkdown for the terminal, falling back to the raw
// markdown if rendering fails.
func RenderHelp(topic string, width int) string {
	md := HelpMarkdown(topic)
	out, err := ui.RenderMarkdown(md, width)
	if err != nil {
		return md
	}
	return out
}
