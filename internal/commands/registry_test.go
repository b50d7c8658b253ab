package commands

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryMetadataComplete(t *testing.T) {
	for name, meta := range Registry {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, meta.Name)
			assert.NotEmpty(t, meta.Description)
			assert.True(t, strings.HasPrefix(meta.Usage, name), "usage %q", meta.Usage)
			assert.NotEmpty(t, meta.Examples)
			for _, ex := range meta.Examples {
				assert.True(t, strings.HasPrefix(ex, name), "example %q", ex)
			}
			for _, p := range meta.Prefixes {
				assert.True(t, strings.HasSuffix(p.Token, "/"), "token %q", p.Token)
				assert.NotEmpty(t, p.Description)
			}
		})
	}
}

func TestMutatingCommands(t *testing.T) {
	for _, name := range []string{"create", "add", "edit", "delete", "clear"} {
		assert.True(t, IsMutating(name), name)
	}
	for _, name := range []string{"list", "find", "sort", "filter", "help", "exit", "bogus"} {
		assert.False(t, IsMutating(name), name)
	}
}

func TestAllCommandNamesSorted(t *testing.T) {
	names := AllCommandNames()
	assert.Len(t, names, len(Registry))
	assert.IsIncreasing(t, names)

	help, _ := GetCommandMeta("help")
	assert.Equal(t, names, help.Args[0].Completions)
}

func TestUsageMessage(t *testing.T) {
	msg := UsageMessage("delete")
	assert.Contains(t, msg, "Usage: delete INDEX")
	assert.Contains(t, msg, "Example: delete 3")
	assert.Empty(t, UsageMessage("nope"))
}

func TestCobraCommandGeneration(t *testing.T) {
	var got string
	cmd := GenerateCobraCommand("edit", func(_ *cobra.Command, line string) error {
		got = line
		return nil
	})
	require.NotNil(t, cmd)
	assert.Equal(t, "edit", cmd.Name())
	assert.Contains(t, cmd.Long, "n/NAME")
	assert.Contains(t, cmd.Long, "(repeatable)")
	assert.Contains(t, cmd.Long, "nb edit 2 n/Alice Tan e/alice@x.com")

	cmd.SetArgs([]string{"2", "n/Alice Tan", "e/alice@x.com"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "edit 2 n/Alice Tan e/alice@x.com", got)
}

func TestCobraCommandArgs(t *testing.T) {
	list := GenerateCobraCommand("list", nil)
	require.NotNil(t, list)
	assert.Error(t, list.Args(list, []string{"extra"}))

	edit := GenerateCobraCommand("edit", nil)
	assert.Error(t, edit.Args(edit, nil))

	help := GenerateCobraCommand("help", nil)
	assert.NoError(t, help.Args(help, nil))

	assert.Nil(t, GenerateCobraCommand("nope", nil))
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "list", CommandLine("list", nil))
	assert.Equal(t, "find a b", CommandLine("find", []string{"a", "b"}))
}

func TestEditRepeatsOnlyTags(t *testing.T) {
	repeatable := func(name string) []string {
		var out []string
		for _, p := range Registry[name].Prefixes {
			if p.Repeatable {
				out = append(out, p.Token)
			}
		}
		return out
	}
	assert.Equal(t, []string{"t/"}, repeatable("edit"))
	assert.Equal(t, []string{"p/", "e/", "l/", "c/", "s/", "t/"}, repeatable("create"))
}
