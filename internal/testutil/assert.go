package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/networkbook/networkbook/internal/model"
)

// PersonSnapshot is a plain view of a person that go-cmp can diff.
type PersonSnapshot struct {
	Name            string
	Phones          []string
	Emails          []string
	Links           []string
	Graduation      string
	Courses         []string
	Specialisations []string
	Tags            []string
	Priority        string
}

// Snapshot converts p for comparison.
func Snapshot(p model.Person) PersonSnapshot {
	s := PersonSnapshot{
		Name:            p.Name.String(),
		Phones:          p.Phones.Strings(),
		Emails:          p.Emails.Strings(),
		Links:           p.Links.Strings(),
		Courses:         p.Courses.Strings(),
		Specialisations: p.Specialisations.Strings(),
		Tags:            p.Tags.Strings(),
	}
	if p.Graduation != nil {
		s.Graduation = p.Graduation.String()
	}
	if p.Priority != nil {
		s.Priority = p.Priority.String()
	}
	return s
}

var snapshotTransform = cmp.Transformer("Snapshot", Snapshot)

// PersonDiff returns a human-readable diff, empty when the persons match.
func PersonDiff(want, got model.Person) string {
	return cmp.Diff(want, got, snapshotTransform)
}

// AssertPersonEqual fails the test when the persons differ in any field.
func AssertPersonEqual(t *testing.T, want, got model.Person) {
	t.Helper()
	if diff := PersonDiff(want, got); diff != "" {
		t.Errorf("person mismatch (-want +got):\n%s", diff)
	}
}

// AssertPersonsEqual compares two lists of persons in order.
func AssertPersonsEqual(t *testing.T, want, got []model.Person) {
	t.Helper()
	if diff := cmp.Diff(want, got, snapshotTransform); diff != "" {
		t.Errorf("persons mismatch (-want +got):\n%s", diff)
	}
}
