package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/errs"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "  42 ", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "+3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1 2", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseIndex(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat))
				assert.Equal(t, MessageInvalidIndex, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.OneBased())
			assert.Equal(t, tt.want-1, got.ZeroBased())
		})
	}
}

func TestParseBool(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "TRUE": true, " false ": false, "False": false} {
		got, err := ParseBool(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseBool("maybe")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat))
}

func TestParseManyKeepsInputOrder(t *testing.T) {
	phones, err := ParsePhones([]string{"333", "111", "222"})
	require.NoError(t, err)
	assert.Equal(t, []string{"333", "111", "222"}, phones.Strings())

	courses, err := ParseCourses([]string{" CS2103T ", "CS2101"})
	require.NoError(t, err)
	assert.Equal(t, []string{"CS2103T", "CS2101"}, courses.Strings())
}

func TestParseManyRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]string) error
		raws  []string
	}{
		{"phones", func(r []string) error { _, err := ParsePhones(r); return err }, []string{"999", "999"}},
		{"emails ignore case", func(r []string) error { _, err := ParseEmails(r); return err }, []string{"A@x.com", "a@X.com"}},
		{"courses ignore case", func(r []string) error { _, err := ParseCourses(r); return err }, []string{"cs2103t", "CS2103T"}},
		{"links ignore trailing slash", func(r []string) error { _, err := ParseLinks(r); return err }, []string{"example.com/a", "https://example.com/a/"}},
		{"tags", func(r []string) error { _, err := ParseTags(r); return err }, []string{"friend", "friend"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.raws)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.KindDuplicateValue), "got %v", err)
		})
	}
}

func TestParseManyInvalidValue(t *testing.T) {
	_, err := ParsePhones([]string{"123", "12a"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat))
}

func TestParseTagsClearMarker(t *testing.T) {
	tags, err := ParseTags([]string{""})
	require.NoError(t, err)
	assert.True(t, tags.IsEmpty())

	tags, err = ParseTags(nil)
	require.NoError(t, err)
	assert.True(t, tags.IsEmpty())

	// An empty value among others is just an invalid tag.
	_, err = ParseTags([]string{"a", ""})
	assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat))
}

func TestParseSingleFields(t *testing.T) {
	g, err := ParseGraduation("ay2324-s1")
	require.NoError(t, err)
	assert.Equal(t, "AY2324-S1", g.String())

	p, err := ParsePriority("H")
	require.NoError(t, err)
	assert.Equal(t, "High", p.String())

	_, err = ParseName("  ")
	assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat))
}
