package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTermWidth is the fallback terminal width when detection fails.
const DefaultTermWidth = 120

// DisplayContext holds display parameters, auto-detecting terminal width.
// It is the single source of truth for display settings.
type DisplayContext struct {
	TermWidth  int  // detected or fallback terminal width
	IsTTY      bool // whether stdout is a terminal
	Hyperlinks bool // whether OSC 8 hyperlinks may be emitted
}

// NewDisplayContext creates a DisplayContext for stdout. Hyperlinks are only
// enabled on a terminal and never for JSON output.
func NewDisplayContext(jsonOutput bool) *DisplayContext {
	fd := os.Stdout.Fd()
	isTTY := term.IsTerminal(fd)

	width := DefaultTermWidth
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return &DisplayContext{
		TermWidth:  width,
		IsTTY:      isTTY,
		Hyperlinks: !jsonOutput && isatty.IsTerminal(fd),
	}
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width and
// no hyperlinks (for testing and piped output).
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{
		TermWidth: width,
	}
}

// AvailableWidth returns the usable width after accounting for left margin.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	return d.TermWidth - leftMargin
}

// IsTerminal reports whether fd is an interactive terminal, including
// Cygwin and MSYS ptys.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
