package model

import (
	"strings"

	"github.com/networkbook/networkbook/internal/errs"
)

// Keyed is implemented by values that can live in a UniqueList.
// Two values are duplicates when their keys are equal.
type Keyed interface {
	Key() string
	String() string
}

// UniqueList is an insertion-ordered list that never holds two elements with
// the same key. The zero value is an empty list ready to use.
type UniqueList[T Keyed] struct {
	items []T
}

// NewUniqueListOf builds a list from values, failing on the first duplicate.
func NewUniqueListOf[T Keyed](values ...T) (UniqueList[T], error) {
	var l UniqueList[T]
	if err := l.SetAll(values); err != nil {
		return UniqueList[T]{}, err
	}
	return l, nil
}

// MustUniqueListOf is NewUniqueListOf for values known to be distinct.
func MustUniqueListOf[T Keyed](values ...T) UniqueList[T] {
	l, err := NewUniqueListOf(values...)
	if err != nil {
		panic(err)
	}
	return l
}

// Add appends v unless an element with the same key is already present.
func (l *UniqueList[T]) Add(v T) error {
	if l.Contains(v) {
		return errs.Newf(errs.KindDuplicateValue, "Duplicate value: %s", v.String())
	}
	l.items = append(l.items, v)
	return nil
}

// SetAll replaces the contents with values. On a duplicate the list is left
// untouched.
func (l *UniqueList[T]) SetAll(values []T) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v.Key()]; dup {
			return errs.Newf(errs.KindDuplicateValue, "Duplicate value: %s", v.String())
		}
		seen[v.Key()] = struct{}{}
	}
	l.items = append([]T(nil), values...)
	return nil
}

// Contains reports whether an element with v's key is present.
func (l UniqueList[T]) Contains(v T) bool {
	key := v.Key()
	for _, item := range l.items {
		if item.Key() == key {
			return true
		}
	}
	return false
}

func (l UniqueList[T]) Len() int { return len(l.items) }

func (l UniqueList[T]) IsEmpty() bool { return len(l.items) == 0 }

// Items returns a copy of the elements in insertion order.
func (l UniqueList[T]) Items() []T {
	if len(l.items) == 0 {
		return nil
	}
	return append([]T(nil), l.items...)
}

// Strings returns the display value of each element.
func (l UniqueList[T]) Strings() []string {
	out := make([]string, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item.String())
	}
	return out
}

// Clone returns an independent copy.
func (l UniqueList[T]) Clone() UniqueList[T] {
	return UniqueList[T]{items: l.Items()}
}

// Equal compares keys element by element, order included.
func (l UniqueList[T]) Equal(other UniqueList[T]) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if l.items[i].Key() != other.items[i].Key() {
			return false
		}
	}
	return true
}

func (l UniqueList[T]) String() string {
	return strings.Join(l.Strings(), ", ")
}
