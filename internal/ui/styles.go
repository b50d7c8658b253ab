package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Person names and tag badges use the accent color; headers, hints and empty
// field placeholders are muted. Status lines carry symbols, not colors.
const defaultAccent = "#A78BFA"

var accentColor = defaultAccent

var (
	// Accent style for names, links and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)

	// Badge renders tags
	Badge = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Padding(0, 1)
)

// ConfigureTheme applies a user accent color. "none", "off" and "default"
// disable accent coloring; invalid values are ignored the same way.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		Badge = lipgloss.NewStyle().Padding(0, 1)
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	Badge = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Padding(0, 1)
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// normalizeAccentColor accepts ANSI codes 0-255 and #rgb/#rrggbb hex colors.
func normalizeAccentColor(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", "none", "off", "default":
		return "", false
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}

	if !strings.HasPrefix(value, "#") {
		return "", false
	}
	hex := value[1:]
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(hex) {
	case 6:
		return value, true
	case 3:
		return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
	default:
		return "", false
	}
}
