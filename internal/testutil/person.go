package testutil

import (
	"testing"

	"github.com/networkbook/networkbook/internal/model"
)

// PersonBuilder builds a model.Person from raw strings, failing the test on
// invalid input.
type PersonBuilder struct {
	t *testing.T
	p model.Person
}

// NewPerson starts a builder for a person called name.
func NewPerson(t *testing.T, name string) *PersonBuilder {
	t.Helper()
	n, err := model.NewName(name)
	if err != nil {
		t.Fatalf("invalid name %q: %v", name, err)
	}
	return &PersonBuilder{t: t, p: model.NewPerson(n)}
}

func (b *PersonBuilder) WithPhones(raws ...string) *PersonBuilder {
	b.t.Helper()
	b.p.Phones = buildList(b.t, raws, model.NewPhone)
	return b
}

func (b *PersonBuilder) WithEmails(raws ...string) *PersonBuilder {
	b.t.Helper()
	b.p.Emails = buildList(b.t, raws, model.NewEmail)
	return b
}

func (b *PersonBuilder) WithLinks(raws ...string) *PersonBuilder {
	b.t.Helper()
	b.p.Links = buildList(b.t, raws, model.NewLink)
	return b
}

func (b *PersonBuilder) WithCourses(raws ...string) *PersonBuilder {
	b.t.Helper()
	b.p.Courses = buildList(b.t, raws, model.NewCourse)
	return b
}

func (b *PersonBuilder) WithSpecialisations(raws ...string) *PersonBuilder {
	b.t.Helper()
	b.p.Specialisations = buildList(b.t, raws, model.NewSpecialisation)
	return b
}

func (b *PersonBuilder) WithTags(raws ...string) *PersonBuilder {
	b.t.Helper()
	b.p.Tags = buildList(b.t, raws, model.NewTag)
	return b
}

func (b *PersonBuilder) WithGraduation(raw string) *PersonBuilder {
	b.t.Helper()
	g, err := model.NewGraduation(raw)
	if err != nil {
		b.t.Fatalf("invalid graduation %q: %v", raw, err)
	}
	b.p.Graduation = &g
	return b
}

func (b *PersonBuilder) WithPriority(raw string) *PersonBuilder {
	b.t.Helper()
	pr, err := model.NewPriority(raw)
	if err != nil {
		b.t.Fatalf("invalid priority %q: %v", raw, err)
	}
	b.p.Priority = &pr
	return b
}

// Build returns the person.
func (b *PersonBuilder) Build() model.Person {
	return b.p.Clone()
}

func buildList[T model.Keyed](t *testing.T, raws []string, parse func(string) (T, error)) model.UniqueList[T] {
	t.Helper()
	values := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := parse(raw)
		if err != nil {
			t.Fatalf("invalid value %q: %v", raw, err)
		}
		values = append(values, v)
	}
	l, err := model.NewUniqueListOf(values...)
	if err != nil {
		t.Fatalf("duplicate values %v: %v", raws, err)
	}
	return l
}

// TypicalPersons returns three persons used across command tests.
func TypicalPersons(t *testing.T) []model.Person {
	t.Helper()
	return []model.Person{
		NewPerson(t, "Alice Pauline").
			WithPhones("94351253").
			WithEmails("alice@example.com").
			WithLinks("github.com/alice").
			WithGraduation("AY2324-S2").
			WithCourses("CS2103T", "CS2101").
			WithSpecialisations("Software Engineering").
			WithTags("friends").
			WithPriority("high").
			Build(),
		NewPerson(t, "Benson Meier").
			WithPhones("98765432", "91234567").
			WithEmails("johnd@example.com").
			WithTags("owesMoney", "friends").
			Build(),
		NewPerson(t, "Carl Kurz").
			WithPhones("95352563").
			WithEmails("heinz@example.com").
			WithGraduation("2026").
			WithPriority("low").
			Build(),
	}
}

// TypicalManager returns a model.Manager holding TypicalPersons.
func TypicalManager(t *testing.T) *model.Manager {
	t.Helper()
	m, err := model.NewManager(TypicalPersons(t))
	if err != nil {
		t.Fatalf("failed to build typical model: %v", err)
	}
	return m
}
