// Package slugs turns user-facing names into file names and anchors.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// DefaultBookSlug is used when a book name has no sluggable characters.
const DefaultBookSlug = "book"

// BookSlug converts a book name to a file-name-safe slug.
// "Work Contacts" becomes "work-contacts".
func BookSlug(name string) string {
	s := goslug.Make(strings.TrimSpace(name))
	if s == "" {
		return DefaultBookSlug
	}
	return s
}

// HeadingSlug converts heading text to an anchor. Letters and digits are
// kept lower-cased; runs of separators become a single dash.
func HeadingSlug(text string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteRune('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == ':' || r == '/':
			pendingDash = true
		}
	}
	return b.String()
}
