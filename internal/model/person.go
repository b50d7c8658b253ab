package model

import "strings"

// Person is one entry in the network book. Name is required; every other
// field may be empty. Persons are treated as values: mutating commands build
// a new Person rather than changing one already in the book.
type Person struct {
	Name            Name
	Phones          UniqueList[Phone]
	Emails          UniqueList[Email]
	Links           UniqueList[Link]
	Graduation      *Graduation
	Courses         UniqueList[Course]
	Specialisations UniqueList[Specialisation]
	Tags            UniqueList[Tag]
	Priority        *Priority
}

// NewPerson returns a person with only a name.
func NewPerson(name Name) Person {
	return Person{Name: name}
}

// Clone returns a deep copy that shares no storage with p.
func (p Person) Clone() Person {
	out := Person{
		Name:            p.Name,
		Phones:          p.Phones.Clone(),
		Emails:          p.Emails.Clone(),
		Links:           p.Links.Clone(),
		Courses:         p.Courses.Clone(),
		Specialisations: p.Specialisations.Clone(),
		Tags:            p.Tags.Clone(),
	}
	if p.Graduation != nil {
		g := *p.Graduation
		out.Graduation = &g
	}
	if p.Priority != nil {
		pr := *p.Priority
		out.Priority = &pr
	}
	return out
}

// IsSamePerson reports whether both entries refer to the same person. The book
// never holds two persons for which this is true.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name.Key() == other.Name.Key()
}

// Equal reports whether every field matches.
func (p Person) Equal(other Person) bool {
	return p.Name.Key() == other.Name.Key() &&
		p.Phones.Equal(other.Phones) &&
		p.Emails.Equal(other.Emails) &&
		p.Links.Equal(other.Links) &&
		optionalKey(p.Graduation) == optionalKey(other.Graduation) &&
		p.Courses.Equal(other.Courses) &&
		p.Specialisations.Equal(other.Specialisations) &&
		p.Tags.Equal(other.Tags) &&
		optionalKey(p.Priority) == optionalKey(other.Priority)
}

// String is the one-line representation used in command feedback.
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Name.String())

	section := func(header, body string) {
		if body == "" {
			return
		}
		b.WriteString("; ")
		b.WriteString(header)
		b.WriteString(": ")
		b.WriteString(body)
	}

	section("Phones", p.Phones.String())
	section("Emails", p.Emails.String())
	section("Links", p.Links.String())
	if p.Graduation != nil {
		section("Graduation", p.Graduation.FullString())
	}
	section("Courses", p.Courses.String())
	section("Specialisations", p.Specialisations.String())
	if !p.Tags.IsEmpty() {
		var tags strings.Builder
		for _, t := range p.Tags.Items() {
			tags.WriteString("[" + t.String() + "]")
		}
		section("Tags", tags.String())
	}
	if p.Priority != nil {
		section("Priority", p.Priority.String())
	}
	return b.String()
}

func optionalKey[T Keyed](v *T) string {
	if v == nil {
		return ""
	}
	return (*v).Key()
}
