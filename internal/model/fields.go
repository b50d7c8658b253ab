package model

import (
	"fmt"
	neturl "net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/networkbook/networkbook/internal/errs"
)

// Field names as they appear in messages and storage.
const (
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldLink           = "link"
	FieldGraduation     = "graduation"
	FieldCourse         = "course"
	FieldSpecialisation = "specialisation"
	FieldTag            = "tag"
	FieldPriority       = "priority"
)

// Constraint messages shown to the user when a value is rejected.
const (
	NameConstraints = "Names should only contain letters, digits, spaces and ' . , - /, " +
		"should start with a letter or digit, and should not be blank"
	PhoneConstraints = "Phone numbers should only contain digits, and should be at least 3 digits long"
	EmailConstraints = "Emails should be of the format local-part@domain. The local-part should only " +
		"contain alphanumeric characters and + _ . -, and may not start or end with a special character. " +
		"The domain should consist of labels separated by periods, each starting and ending with an " +
		"alphanumeric character, and the last label should be at least 2 characters long"
	LinkConstraints = "Links should be http or https URLs (or a bare domain such as example.com/path) " +
		"and should not contain whitespace"
	CourseConstraints         = "Courses should not be blank and should be at most 100 characters long"
	SpecialisationConstraints = "Specialisations should not be blank and should be at most 100 characters long"
	TagConstraints            = "Tags should only contain letters, digits, - and _, and should not be blank"
	GraduationConstraints     = "Graduation should be a year (e.g. 2024) or an academic term AYxxyy-Sn " +
		"with consecutive years and semester 1 or 2 (e.g. AY2324-S1)"
	PriorityConstraints = "Priority should be one of high, medium or low (or h, m, l)"
)

const maxFreeTextLength = 100

var (
	emailPattern = regexp.MustCompile(
		`^[\p{L}\p{N}]([\p{L}\p{N}+_.\-]*[\p{L}\p{N}])?@` +
			`([\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])?\.)*` +
			`[\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])$`)
	academicTermPattern = regexp.MustCompile(`^AY(\d{2})(\d{2})-S(\d)$`)
	yearPattern         = regexp.MustCompile(`^\d{4}$`)
)

// Name is a person's display name.
type Name struct{ value string }

// NewName validates and normalizes a name.
func NewName(raw string) (Name, error) {
	value := strings.Join(strings.Fields(raw), " ")
	if value == "" {
		return Name{}, errs.ForField(FieldName, NameConstraints)
	}
	for i, r := range value {
		if i == 0 && !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return Name{}, errs.ForField(FieldName, NameConstraints)
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || strings.ContainsRune("'.,-/", r) {
			continue
		}
		return Name{}, errs.ForField(FieldName, NameConstraints)
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// Key compares names case-insensitively.
func (n Name) Key() string { return strings.ToLower(n.value) }

// Phone is a phone number made of digits only.
type Phone struct{ value string }

// NewPhone validates a phone number.
func NewPhone(raw string) (Phone, error) {
	value := strings.TrimSpace(raw)
	if len(value) < 3 {
		return Phone{}, errs.ForField(FieldPhone, PhoneConstraints)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return Phone{}, errs.ForField(FieldPhone, PhoneConstraints)
		}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string { return p.value }

func (p Phone) Key() string { return p.value }

// Email is an email address.
type Email struct{ value string }

// NewEmail validates an email address.
func NewEmail(raw string) (Email, error) {
	value := strings.TrimSpace(raw)
	if !emailPattern.MatchString(value) {
		return Email{}, errs.ForField(FieldEmail, EmailConstraints)
	}
	domain := value[strings.LastIndex(value, "@")+1:]
	labels := strings.Split(domain, ".")
	if len([]rune(labels[len(labels)-1])) < 2 {
		return Email{}, errs.ForField(FieldEmail, EmailConstraints)
	}
	return Email{value: value}, nil
}

func (e Email) String() string { return e.value }

// Key compares emails case-insensitively.
func (e Email) Key() string { return strings.ToLower(e.value) }

// Link is a web link. Bare domains are stored with an https:// scheme.
type Link struct {
	value string
	key   string
}

// NewLink validates a link.
func NewLink(raw string) (Link, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return Link{}, errs.ForField(FieldLink, LinkConstraints)
	}
	if !strings.Contains(value, "://") {
		value = "https://" + value
	}

	parsed, err := neturl.Parse(value)
	if err != nil {
		return Link{}, errs.ForField(FieldLink, LinkConstraints)
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return Link{}, errs.ForField(FieldLink, LinkConstraints)
	}
	host := parsed.Hostname()
	if host == "" || !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return Link{}, errs.ForField(FieldLink, LinkConstraints)
	}

	key := strings.ToLower(parsed.Scheme) + "://" + strings.ToLower(parsed.Host) + strings.TrimSuffix(parsed.EscapedPath(), "/")
	if parsed.RawQuery != "" {
		key += "?" + parsed.RawQuery
	}
	return Link{value: value, key: key}, nil
}

func (l Link) String() string { return l.value }

func (l Link) Key() string { return l.key }

// Course is a course the person has taken or is taking.
type Course struct{ value string }

// NewCourse validates a course.
func NewCourse(raw string) (Course, error) {
	value, ok := freeText(raw)
	if !ok {
		return Course{}, errs.ForField(FieldCourse, CourseConstraints)
	}
	return Course{value: value}, nil
}

func (c Course) String() string { return c.value }

func (c Course) Key() string { return strings.ToLower(c.value) }

// Specialisation is an area of focus.
type Specialisation struct{ value string }

// NewSpecialisation validates a specialisation.
func NewSpecialisation(raw string) (Specialisation, error) {
	value, ok := freeText(raw)
	if !ok {
		return Specialisation{}, errs.ForField(FieldSpecialisation, SpecialisationConstraints)
	}
	return Specialisation{value: value}, nil
}

func (s Specialisation) String() string { return s.value }

func (s Specialisation) Key() string { return strings.ToLower(s.value) }

// Tag is a short free-form label.
type Tag struct{ value string }

// NewTag validates a tag.
func NewTag(raw string) (Tag, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Tag{}, errs.ForField(FieldTag, TagConstraints)
	}
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return Tag{}, errs.ForField(FieldTag, TagConstraints)
	}
	return Tag{value: value}, nil
}

func (t Tag) String() string { return t.value }

func (t Tag) Key() string { return t.value }

// Graduation is either a calendar year or an academic term.
type Graduation struct {
	year     int // calendar year the person graduates in
	startYY  int // academic term only: first year, two digits
	semester int // 0 for a plain year
}

// NewGraduation validates a graduation year or academic term.
func NewGraduation(raw string) (Graduation, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))

	if yearPattern.MatchString(value) {
		year, _ := strconv.Atoi(value)
		if year < 1000 {
			return Graduation{}, errs.ForField(FieldGraduation, GraduationConstraints)
		}
		return Graduation{year: year}, nil
	}

	m := academicTermPattern.FindStringSubmatch(value)
	if m == nil {
		return Graduation{}, errs.ForField(FieldGraduation, GraduationConstraints)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	sem, _ := strconv.Atoi(m[3])
	if (start+1)%100 != end || sem < 1 || sem > 2 {
		return Graduation{}, errs.ForField(FieldGraduation, GraduationConstraints)
	}
	// Two-digit years are read as 20xx.
	return Graduation{year: 2000 + start + sem - 1, startYY: start, semester: sem}, nil
}

// IsAcademicTerm reports whether the value names a semester rather than a year.
func (g Graduation) IsAcademicTerm() bool { return g.semester != 0 }

// Year returns the calendar year of graduation.
func (g Graduation) Year() int { return g.year }

// String returns the canonical input form, e.g. "2024" or "AY2324-S1".
func (g Graduation) String() string {
	if !g.IsAcademicTerm() {
		return strconv.Itoa(g.year)
	}
	return fmt.Sprintf("AY%02d%02d-S%d", g.startYY, (g.startYY+1)%100, g.semester)
}

// FullString returns the long display form, e.g. "AY2023/2024 Semester 1".
func (g Graduation) FullString() string {
	if !g.IsAcademicTerm() {
		return strconv.Itoa(g.year)
	}
	start := 2000 + g.startYY
	return fmt.Sprintf("AY%d/%d Semester %d", start, start+1, g.semester)
}

func (g Graduation) Key() string { return g.String() }

// sortKey orders graduations chronologically, terms within a year by semester.
func (g Graduation) sortKey() int { return g.year*10 + g.semester }

// Priority marks how important it is to keep in touch with someone.
type Priority struct{ level PriorityLevel }

// PriorityLevel is the enumerated priority.
type PriorityLevel int

const (
	PriorityLow PriorityLevel = iota + 1
	PriorityMedium
	PriorityHigh
)

// NewPriority parses a priority level.
func NewPriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high", "h":
		return Priority{level: PriorityHigh}, nil
	case "medium", "m":
		return Priority{level: PriorityMedium}, nil
	case "low", "l":
		return Priority{level: PriorityLow}, nil
	default:
		return Priority{}, errs.ForField(FieldPriority, PriorityConstraints)
	}
}

// Level returns the enumerated level.
func (p Priority) Level() PriorityLevel { return p.level }

func (p Priority) String() string {
	switch p.level {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return ""
	}
}

func (p Priority) Key() string { return strings.ToLower(p.String()) }

func freeText(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || len([]rune(value)) > maxFreeTextLength {
		return "", false
	}
	return value, true
}
