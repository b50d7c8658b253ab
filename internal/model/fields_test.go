package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/errs"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "Alice Tan", want: "Alice Tan", ok: true},
		{input: "  Alice    Tan  ", want: "Alice Tan", ok: true},
		{input: "O'Brien-Smith Jr.", want: "O'Brien-Smith Jr.", ok: true},
		{input: "2nd Cousin", want: "2nd Cousin", ok: true},
		{input: "", ok: false},
		{input: "   ", ok: false},
		{input: "-Alice", ok: false},
		{input: "Alice*", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewName(tt.input)
			if !tt.ok {
				require.Error(t, err)
				assert.Equal(t, errs.KindInvalidFieldFormat, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	a, _ := NewName("alice tan")
	b, _ := NewName("Alice  TAN")
	assert.Equal(t, a.Key(), b.Key())
}

func TestNewPhone(t *testing.T) {
	for _, ok := range []string{"999", "12345678", " 87654321 "} {
		_, err := NewPhone(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "12", "+6591234567", "9123 4567", "abc"} {
		_, err := NewPhone(bad)
		assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat), bad)
	}
}

func TestNewEmail(t *testing.T) {
	for _, ok := range []string{"alice@x.com", "a.b+c@mail.example.org", "bob_1@u.nus.edu", "a@localhost"} {
		_, err := NewEmail(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "alice", "alice@", "@x.com", ".alice@x.com", "alice.@x.com", "alice@x.c", "alice@-x.com", "al ice@x.com"} {
		_, err := NewEmail(bad)
		assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat), bad)
	}

	a, _ := NewEmail("Alice@X.com")
	b, _ := NewEmail("alice@x.COM")
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "Alice@X.com", a.String())
}

func TestNewLink(t *testing.T) {
	l, err := NewLink("github.com/alice")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/alice", l.String())

	a, _ := NewLink("https://GitHub.com/alice/")
	assert.Equal(t, l.Key(), a.Key())

	for _, bad := range []string{"", "not a link", "ftp://x.com", "https://", "localhost", "https://x."} {
		_, err := NewLink(bad)
		assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat), bad)
	}
}

func TestNewGraduation(t *testing.T) {
	tests := []struct {
		input string
		str   string
		full  string
		year  int
	}{
		{input: "2024", str: "2024", full: "2024", year: 2024},
		{input: "AY2324-S1", str: "AY2324-S1", full: "AY2023/2024 Semester 1", year: 2023},
		{input: "ay2324-s2", str: "AY2324-S2", full: "AY2023/2024 Semester 2", year: 2024},
		{input: "AY9900-S1", str: "AY9900-S1", full: "AY2099/2100 Semester 1", year: 2099},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g, err := NewGraduation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.str, g.String())
			assert.Equal(t, tt.full, g.FullString())
			assert.Equal(t, tt.year, g.Year())
		})
	}

	for _, bad := range []string{"", "24", "0999", "AY2325-S1", "AY2324-S3", "AY2324", "next year"} {
		_, err := NewGraduation(bad)
		assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat), bad)
	}
}

func TestNewPriority(t *testing.T) {
	for input, want := range map[string]PriorityLevel{"high": PriorityHigh, "H": PriorityHigh, "Medium": PriorityMedium, "l": PriorityLow} {
		p, err := NewPriority(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, p.Level())
	}
	p, _ := NewPriority("m")
	assert.Equal(t, "Medium", p.String())

	_, err := NewPriority("urgent")
	assert.True(t, errs.Is(err, errs.KindInvalidFieldFormat))
}

func TestNewTagCourseSpecialisation(t *testing.T) {
	_, err := NewTag("friend")
	assert.NoError(t, err)
	_, err = NewTag("ex-colleague_2")
	assert.NoError(t, err)
	_, err = NewTag("best friend")
	assert.Error(t, err)
	_, err = NewTag("")
	assert.Error(t, err)

	c, err := NewCourse(" CS2103T ")
	require.NoError(t, err)
	assert.Equal(t, "CS2103T", c.String())
	c2, _ := NewCourse("cs2103t")
	assert.Equal(t, c.Key(), c2.Key())
	_, err = NewCourse("   ")
	assert.Error(t, err)

	_, err = NewSpecialisation("Software Engineering")
	assert.NoError(t, err)
	_, err = NewSpecialisation("")
	assert.Error(t, err)
}
