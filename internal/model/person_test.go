package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePerson(t *testing.T) Person {
	t.Helper()
	name, err := NewName("Alice Tan")
	require.NoError(t, err)
	email, _ := NewEmail("alice@x.com")
	grad, _ := NewGraduation("AY2324-S2")
	prio, _ := NewPriority("high")
	tag, _ := NewTag("friend")

	p := NewPerson(name)
	p.Phones = MustUniqueListOf(mustPhone(t, "12345678"), mustPhone(t, "87654321"))
	p.Emails = MustUniqueListOf(email)
	p.Graduation = &grad
	p.Tags = MustUniqueListOf(tag)
	p.Priority = &prio
	return p
}

func TestPersonString(t *testing.T) {
	p := samplePerson(t)
	assert.Equal(t,
		"Alice Tan; Phones: 12345678, 87654321; Emails: alice@x.com; Graduation: AY2023/2024 Semester 2; Tags: [friend]; Priority: High",
		p.String())

	name, _ := NewName("Bob")
	assert.Equal(t, "Bob", NewPerson(name).String())
}

func TestPersonCloneIsDeep(t *testing.T) {
	p := samplePerson(t)
	c := p.Clone()
	require.True(t, p.Equal(c))

	require.NoError(t, c.Phones.Add(mustPhone(t, "999")))
	low, _ := NewPriority("low")
	*c.Priority = low

	assert.Equal(t, 2, p.Phones.Len())
	assert.Equal(t, "High", p.Priority.String())
	assert.False(t, p.Equal(c))
}

func TestIsSamePerson(t *testing.T) {
	p := samplePerson(t)
	name, _ := NewName("alice TAN")
	assert.True(t, p.IsSamePerson(NewPerson(name)))
	assert.False(t, p.Equal(NewPerson(name)))
}
