package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := NewTable(3)
	tbl.AddRow("personal", "yaml", "/tmp/personal.yaml")
	tbl.AddRow("work", "sqlite", "/tmp/work.db")

	want := "personal  yaml    /tmp/personal.yaml\n" +
		"work      sqlite  /tmp/work.db\n"
	assert.Equal(t, want, tbl.String())
	assert.Equal(t, 2, tbl.Len())
}

func TestTableMeasuresStyledCells(t *testing.T) {
	tbl := NewTable(2)
	tbl.AddRow(Hyperlink("https://a.com", "a"), "x")
	tbl.AddRow("bbb", "y")

	out := StripHyperlinks(tbl.String())
	assert.Equal(t, "a    x\nbbb  y\n", out)
}

func TestTableEmptyAndPadding(t *testing.T) {
	tbl := NewTable(2)
	assert.Equal(t, "", tbl.String())

	tbl.SetPadding(1)
	tbl.AddRow("a", "b", "dropped")
	tbl.AddRow("cc")
	assert.Equal(t, "a  b\ncc\n", tbl.String())
}
