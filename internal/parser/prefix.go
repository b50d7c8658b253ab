// Package parser turns raw command text into typed commands.
package parser

// Prefix is a recognised argument marker such as "p/".
type Prefix int

const (
	PrefixName Prefix = iota
	PrefixPhone
	PrefixEmail
	PrefixLink
	PrefixGraduation
	PrefixCourse
	PrefixSpecialisation
	PrefixTag
	PrefixPriority
	PrefixFilterField
	PrefixFilterFinished
	PrefixSortField
	PrefixSortOrder
)

// PersonPrefixes are the prefixes that carry person fields, in display order.
var PersonPrefixes = []Prefix{
	PrefixName,
	PrefixPhone,
	PrefixEmail,
	PrefixLink,
	PrefixGraduation,
	PrefixCourse,
	PrefixSpecialisation,
	PrefixTag,
	PrefixPriority,
}

// Token returns the literal marker typed by the user.
func (p Prefix) Token() string {
	switch p {
	case PrefixName:
		return "n/"
	case PrefixPhone:
		return "p/"
	case PrefixEmail:
		return "e/"
	case PrefixLink:
		return "l/"
	case PrefixGraduation:
		return "g/"
	case PrefixCourse:
		return "c/"
	case PrefixSpecialisation:
		return "s/"
	case PrefixTag:
		return "t/"
	case PrefixPriority:
		return "pr/"
	case PrefixFilterField:
		return "f/"
	case PrefixFilterFinished:
		return "fin/"
	case PrefixSortField:
		return "by/"
	case PrefixSortOrder:
		return "o/"
	default:
		panic("parser: unknown prefix")
	}
}

func (p Prefix) String() string { return p.Token() }

// IsCollection reports whether the prefix may carry many values for one person.
func (p Prefix) IsCollection() bool {
	switch p {
	case PrefixPhone, PrefixEmail, PrefixLink, PrefixCourse, PrefixSpecialisation, PrefixTag:
		return true
	default:
		return false
	}
}
