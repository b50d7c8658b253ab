package model

import "strings"

// SortField names what the displayed list can be ordered by.
type SortField string

const (
	SortNone       SortField = "none"
	SortName       SortField = "name"
	SortGraduation SortField = "grad"
	SortPriority   SortField = "priority"
)

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// SortFields lists the accepted field names in display order.
var SortFields = []SortField{SortName, SortGraduation, SortPriority, SortNone}

// LessFunc returns the ordering for field and order, or nil for SortNone.
// Persons missing the sorted field always come last.
func LessFunc(field SortField, order SortOrder) func(a, b Person) bool {
	var cmp func(a, b Person) (int, bool)
	switch field {
	case SortName:
		cmp = func(a, b Person) (int, bool) {
			return strings.Compare(a.Name.Key(), b.Name.Key()), true
		}
	case SortGraduation:
		cmp = func(a, b Person) (int, bool) {
			if a.Graduation == nil || b.Graduation == nil {
				return presence(a.Graduation != nil, b.Graduation != nil), false
			}
			return a.Graduation.sortKey() - b.Graduation.sortKey(), true
		}
	case SortPriority:
		cmp = func(a, b Person) (int, bool) {
			if a.Priority == nil || b.Priority == nil {
				return presence(a.Priority != nil, b.Priority != nil), false
			}
			return int(a.Priority.Level()) - int(b.Priority.Level()), true
		}
	default:
		return nil
	}

	return func(a, b Person) bool {
		c, comparable := cmp(a, b)
		if comparable && order == SortDescending {
			c = -c
		}
		return c < 0
	}
}

// presence orders present values before missing ones.
func presence(aPresent, bPresent bool) int {
	switch {
	case aPresent && !bPresent:
		return -1
	case !aPresent && bPresent:
		return 1
	default:
		return 0
	}
}
