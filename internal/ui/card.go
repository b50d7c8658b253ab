package ui

import (
	"fmt"
	"strings"

	"github.com/networkbook/networkbook/internal/model"
)

// EmptyField is shown in place of a field with no value.
const EmptyField = "-"

// Card headers, in display order.
const (
	HeaderPhones          = "Phones: "
	HeaderEmails          = "Emails: "
	HeaderLinks           = "Links: "
	HeaderGraduation      = "Graduation: "
	HeaderCourses         = "Courses: "
	HeaderSpecialisations = "Specialisations: "
	HeaderPriority        = "Priority: "
)

// CardOptions controls how a person card is drawn.
type CardOptions struct {
	// Hyperlinks turns emails and links into OSC 8 hyperlinks.
	Hyperlinks bool
}

// RenderCard draws one person as shown in the list: a numbered name line with
// tag badges, then one line per field.
func RenderCard(p model.Person, displayIndex int, opts CardOptions) string {
	var b strings.Builder

	b.WriteString(AccentBold.Render(fmt.Sprintf("%d. %s", displayIndex, p.Name.String())))
	if tags := p.Tags.Strings(); len(tags) > 0 {
		b.WriteString(" ")
		for _, t := range tags {
			b.WriteString(Badge.Render("[" + t + "]"))
		}
	}
	b.WriteString("\n")

	emails := p.Emails.Strings()
	if opts.Hyperlinks {
		for i, e := range emails {
			emails[i] = Hyperlink(MailtoURL(e), e)
		}
	}
	links := p.Links.Strings()
	if opts.Hyperlinks {
		for i, l := range links {
			links[i] = Hyperlink(l, l)
		}
	}

	line(&b, HeaderPhones, strings.Join(p.Phones.Strings(), ", "))
	line(&b, HeaderEmails, strings.Join(emails, ", "))
	line(&b, HeaderLinks, strings.Join(links, ", "))
	grad := ""
	if p.Graduation != nil {
		grad = p.Graduation.FullString()
	}
	line(&b, HeaderGraduation, grad)
	line(&b, HeaderCourses, strings.Join(p.Courses.Strings(), ", "))
	line(&b, HeaderSpecialisations, strings.Join(p.Specialisations.Strings(), ", "))
	priority := ""
	if p.Priority != nil {
		priority = p.Priority.String()
	}
	line(&b, HeaderPriority, priority)

	return b.String()
}

func line(b *strings.Builder, header, value string) {
	b.WriteString("   ")
	b.WriteString(Muted.Render(header))
	if value == "" {
		b.WriteString(Muted.Render(EmptyField))
	} else {
		b.WriteString(value)
	}
	b.WriteString("\n")
}

// RenderList draws every person with its one-based display number, separated
// by blank lines. An empty list renders a hint instead.
func RenderList(persons []model.Person, opts CardOptions) string {
	if len(persons) == 0 {
		return Hint("No persons to show.") + "\n"
	}
	cards := make([]string, 0, len(persons))
	for _, n := range model.Number(persons) {
		cards = append(cards, RenderCard(n.Person, n.Num, opts))
	}
	return strings.Join(cards, "\n")
}
