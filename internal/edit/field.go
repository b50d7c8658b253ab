// Package edit holds partial updates to a person and the logic that merges
// them into an existing entry.
package edit

// State is the three-way status of one field in a Descriptor.
type State int

const (
	// StateUntouched leaves the field as it is.
	StateUntouched State = iota
	// StateCleared empties a collection or unsets an optional field.
	StateCleared
	// StateSet replaces (or, for add, extends) the field with a value.
	StateSet
)

func (s State) String() string {
	switch s {
	case StateUntouched:
		return "untouched"
	case StateCleared:
		return "cleared"
	case StateSet:
		return "set"
	default:
		return "unknown"
	}
}

// Field is one optional slot of a Descriptor. The zero value is untouched.
type Field[T any] struct {
	state State
	value T
}

// Untouched returns a field that leaves the person unchanged.
func Untouched[T any]() Field[T] { return Field[T]{} }

// Cleared returns a field that empties the person's value.
func Cleared[T any]() Field[T] { return Field[T]{state: StateCleared} }

// SetTo returns a field carrying v.
func SetTo[T any](v T) Field[T] { return Field[T]{state: StateSet, value: v} }

func (f Field[T]) State() State { return f.state }

// Value returns the carried value; ok is false unless the field is set.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == StateSet
}

// IsTouched reports whether the field is cleared or set.
func (f Field[T]) IsTouched() bool { return f.state != StateUntouched }
