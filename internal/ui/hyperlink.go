package ui

import (
	"fmt"
	"strings"
)

// Hyperlink wraps text in an OSC 8 escape so supporting terminals make it clickable.
func Hyperlink(url, text string) string {
	return fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, text)
}

// MailtoURL returns the mailto: target for an email address.
func MailtoURL(email string) string {
	return "mailto:" + email
}

// StripHyperlinks removes OSC 8 sequences, leaving the visible text.
func StripHyperlinks(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "\x1b]8;;")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		rest := s[start+len("\x1b]8;;"):]
		end := strings.IndexByte(rest, '\x07')
		if end < 0 {
			return b.String()
		}
		s = rest[end+1:]
	}
}
