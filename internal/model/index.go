package model

// Index is a position in the displayed person list. It is stored zero-based;
// users see and type one-based numbers.
type Index struct {
	zero int
}

// IndexFromZeroBased wraps a zero-based position.
func IndexFromZeroBased(i int) Index { return Index{zero: i} }

// IndexFromOneBased wraps a one-based position.
func IndexFromOneBased(n int) Index { return Index{zero: n - 1} }

func (i Index) ZeroBased() int { return i.zero }

func (i Index) OneBased() int { return i.zero + 1 }

// InRange reports whether the index addresses an element of a list of size n.
func (i Index) InRange(n int) bool { return i.zero >= 0 && i.zero < n }

// Numbered pairs a person with the one-based number it is displayed under.
type Numbered struct {
	// Num is the 1-indexed number for user reference.
	Num int `json:"num"`

	// Person is the underlying entry.
	Person Person `json:"-"`
}

// Number returns persons paired with their display numbers.
func Number(persons []Person) []Numbered {
	out := make([]Numbered, len(persons))
	for i, p := range persons {
		out[i] = Numbered{Num: i + 1, Person: p}
	}
	return out
}
