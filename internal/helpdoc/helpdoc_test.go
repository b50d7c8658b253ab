package helpdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/commands"
)

func TestEveryCommandHasASection(t *testing.T) {
	for _, name := range commands.AllCommandNames() {
		body, ok := Section(name)
		require.True(t, ok, "missing help section for %q", name)
		assert.True(t, strings.HasPrefix(body, "## "+name+"\n"), "section %q should start with its heading", name)
	}
}

func TestSectionsMatchRegistry(t *testing.T) {
	names := make([]string, 0)
	for _, topic := range Index() {
		names = append(names, topic.Name)
		_, ok := commands.GetCommandMeta(topic.Name)
		assert.True(t, ok, "help section %q has no registered command", topic.Name)
	}
	assert.Len(t, names, len(commands.Registry))
}

func TestSectionStopsAtNextHeading(t *testing.T) {
	body, ok := Section("delete")
	require.True(t, ok)
	assert.Contains(t, body, "delete INDEX")
	assert.NotContains(t, body, "## list")
}

func TestSectionContainsUsage(t *testing.T) {
	for name, meta := range commands.Registry {
		body, _ := Section(name)
		assert.Contains(t, body, meta.Usage, "help section %q should show the usage line", name)
	}
}

func TestIntro(t *testing.T) {
	intro := Intro()
	assert.True(t, strings.HasPrefix(intro, "# Network book"))
	assert.NotContains(t, intro, "## create")
}

func TestSplitIgnoresHeadingsInCodeBlocks(t *testing.T) {
	content := "# T\n\nintro\n\n## one\n\nFirst.\n\n```\n## not a heading\n```\n\n## two\n\nSecond.\n"
	intro, secs := split(content)

	assert.Equal(t, "# T\n\nintro\n", intro)
	require.Len(t, secs, 2)
	assert.Equal(t, Topic{Name: "one", Summary: "First."}, secs[0].topic)
	assert.Contains(t, secs[0].body, "## not a heading")
	assert.Equal(t, "## two\n\nSecond.\n", secs[1].body)
}

func TestSplitWithoutSections(t *testing.T) {
	intro, secs := split("just text\n")
	assert.Equal(t, "just text\n", intro)
	assert.Empty(t, secs)
}

func TestUnknownSection(t *testing.T) {
	_, ok := Section("nope")
	assert.False(t, ok)
}
