// Package helpdoc serves the embedded command reference, split into one
// section per command.
package helpdoc

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed commands.md
var document string

// Topic is one command section of the reference.
type Topic struct {
	Name    string
	Summary string // first line of the section body
}

type section struct {
	topic Topic
	body  string
}

var (
	loadOnce sync.Once
	intro    string
	sections []section
)

// Document returns the whole reference as markdown.
func Document() string {
	return document
}

// Intro returns the reference up to the first command section.
func Intro() string {
	load()
	return intro
}

// Section returns the markdown for the named command, heading included.
func Section(name string) (string, bool) {
	load()
	for _, s := range sections {
		if s.topic.Name == name {
			return s.body, true
		}
	}
	return "", false
}

// Index lists the command sections in document order.
func Index() []Topic {
	load()
	out := make([]Topic, len(sections))
	for i, s := range sections {
		out[i] = s.topic
	}
	return out
}

func load() {
	loadOnce.Do(func() {
		intro, sections = split(document)
	})
}

// split cuts content at every level-2 heading.
func split(content string) (string, []section) {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type mark struct {
		name  string
		start int
	}
	var marks []mark

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 || heading.Lines().Len() == 0 {
			continue
		}
		var name strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if t, ok := child.(*ast.Text); ok {
				name.Write(t.Segment.Value(src))
			}
		}
		offset := heading.Lines().At(0).Start
		marks = append(marks, mark{
			name:  strings.TrimSpace(name.String()),
			start: strings.LastIndexByte(content[:offset], '\n') + 1,
		})
	}

	if len(marks) == 0 {
		return content, nil
	}

	out := make([]section, len(marks))
	for i, m := range marks {
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		body := strings.TrimSpace(content[m.start:end]) + "\n"
		out[i] = section{
			topic: Topic{Name: m.name, Summary: summary(body)},
			body:  body,
		}
	}
	return strings.TrimSpace(content[:marks[0].start]) + "\n", out
}

// summary returns the first paragraph line after the heading.
func summary(body string) string {
	lines := strings.Split(body, "\n")
	for _, line := range lines[1:] {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
