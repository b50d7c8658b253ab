package model

import (
	"sort"
	"sync"

	"github.com/networkbook/networkbook/internal/errs"
)

// Model is what commands read and mutate.
type Model interface {
	// FilteredPersonList returns the persons currently displayed, in display order.
	FilteredPersonList() []Person
	// Persons returns every person in the book in storage order.
	Persons() []Person
	HasPerson(p Person) bool
	AddPerson(p Person) error
	// SetPerson replaces target with edited in place.
	SetPerson(target, edited Person) error
	DeletePerson(p Person) error
	SetPersons(persons []Person) error
	ClearPersons()
	// UpdateFilteredPersonList restricts the displayed persons. A nil predicate shows all.
	UpdateFilteredPersonList(pred func(Person) bool)
	// SortFilteredPersonList orders the displayed persons. A nil less restores storage order.
	SortFilteredPersonList(less func(a, b Person) bool)
}

// Manager is the in-memory Model. The displayed list is derived from the
// underlying list, the current predicate and the current ordering, and is
// recomputed after every mutation.
type Manager struct {
	mu       sync.Mutex
	persons  []Person
	pred     func(Person) bool
	less     func(a, b Person) bool
	filtered []Person
}

// NewManager returns a manager holding persons. Duplicate persons are rejected.
func NewManager(persons []Person) (*Manager, error) {
	m := &Manager{}
	if err := m.SetPersons(persons); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) FilteredPersonList() []Person {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clonePersons(m.filtered)
}

func (m *Manager) Persons() []Person {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clonePersons(m.persons)
}

func (m *Manager) HasPerson(p Person) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOfLocked(p) >= 0
}

func (m *Manager) AddPerson(p Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOfLocked(p) >= 0 {
		return errs.Newf(errs.KindDuplicatePerson, "This person already exists in the network book: %s", p.Name)
	}
	m.persons = append(m.persons, p.Clone())
	m.refreshLocked()
	return nil
}

func (m *Manager) SetPerson(target, edited Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOfLocked(target)
	if i < 0 {
		return errs.Newf(errs.KindPersonNotFound, "Person not found: %s", target.Name)
	}
	if !target.IsSamePerson(edited) && m.indexOfLocked(edited) >= 0 {
		return errs.Newf(errs.KindDuplicatePerson, "This person already exists in the network book: %s", edited.Name)
	}
	m.persons[i] = edited.Clone()
	m.refreshLocked()
	return nil
}

func (m *Manager) DeletePerson(p Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOfLocked(p)
	if i < 0 {
		return errs.Newf(errs.KindPersonNotFound, "Person not found: %s", p.Name)
	}
	m.persons = append(m.persons[:i], m.persons[i+1:]...)
	m.refreshLocked()
	return nil
}

func (m *Manager) SetPersons(persons []Person) error {
	seen := make(map[string]struct{}, len(persons))
	for _, p := range persons {
		if _, dup := seen[p.Name.Key()]; dup {
			return errs.Newf(errs.KindDuplicatePerson, "Persons list contains duplicate person(s): %s", p.Name)
		}
		seen[p.Name.Key()] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.persons = clonePersons(persons)
	m.refreshLocked()
	return nil
}

func (m *Manager) ClearPersons() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persons = nil
	m.refreshLocked()
}

func (m *Manager) UpdateFilteredPersonList(pred func(Person) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pred = pred
	m.refreshLocked()
}

func (m *Manager) SortFilteredPersonList(less func(a, b Person) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.less = less
	m.refreshLocked()
}

// indexOfLocked finds p by identity (IsSamePerson).
func (m *Manager) indexOfLocked(p Person) int {
	for i, existing := range m.persons {
		if existing.IsSamePerson(p) {
			return i
		}
	}
	return -1
}

func (m *Manager) refreshLocked() {
	filtered := make([]Person, 0, len(m.persons))
	for _, p := range m.persons {
		if m.pred == nil || m.pred(p) {
			filtered = append(filtered, p)
		}
	}
	if m.less != nil {
		sort.SliceStable(filtered, func(i, j int) bool { return m.less(filtered[i], filtered[j]) })
	}
	m.filtered = filtered
}

func clonePersons(persons []Person) []Person {
	out := make([]Person, len(persons))
	for i, p := range persons {
		out[i] = p.Clone()
	}
	return out
}
