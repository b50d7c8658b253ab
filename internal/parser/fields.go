package parser

import (
	"strconv"
	"strings"

	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/model"
)

// MessageInvalidIndex is shown when an index is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a one-based index.
func ParseIndex(raw string) (model.Index, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 || strings.HasPrefix(trimmed, "+") {
		return model.Index{}, errs.ForField("index", MessageInvalidIndex)
	}
	return model.IndexFromOneBased(n), nil
}

func ParseName(raw string) (model.Name, error) { return model.NewName(raw) }

func ParsePhone(raw string) (model.Phone, error) { return model.NewPhone(raw) }

func ParseEmail(raw string) (model.Email, error) { return model.NewEmail(raw) }

func ParseLink(raw string) (model.Link, error) { return model.NewLink(raw) }

func ParseGraduation(raw string) (model.Graduation, error) { return model.NewGraduation(raw) }

func ParseCourse(raw string) (model.Course, error) { return model.NewCourse(raw) }

func ParseSpecialisation(raw string) (model.Specialisation, error) {
	return model.NewSpecialisation(raw)
}

func ParseTag(raw string) (model.Tag, error) { return model.NewTag(raw) }

func ParsePriority(raw string) (model.Priority, error) { return model.NewPriority(raw) }

// ParseBool accepts true or false in any case.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errs.ForField("boolean", "Value should be either true or false")
	}
}

func ParsePhones(raws []string) (model.UniqueList[model.Phone], error) {
	return parseMany(raws, model.NewPhone)
}

func ParseEmails(raws []string) (model.UniqueList[model.Email], error) {
	return parseMany(raws, model.NewEmail)
}

func ParseLinks(raws []string) (model.UniqueList[model.Link], error) {
	return parseMany(raws, model.NewLink)
}

func ParseCourses(raws []string) (model.UniqueList[model.Course], error) {
	return parseMany(raws, model.NewCourse)
}

func ParseSpecialisations(raws []string) (model.UniqueList[model.Specialisation], error) {
	return parseMany(raws, model.NewSpecialisation)
}

// ParseTags parses tags. A single empty value yields an empty list, which is
// how a command clears every tag.
func ParseTags(raws []string) (model.UniqueList[model.Tag], error) {
	return parseMany(raws, model.NewTag)
}

// parseMany parses each raw value in order into a UniqueList. A sole empty
// value stands for "no values" and yields an empty list.
func parseMany[T model.Keyed](raws []string, parse func(string) (T, error)) (model.UniqueList[T], error) {
	var out model.UniqueList[T]
	if isClearMarker(raws) {
		return out, nil
	}
	for _, raw := range raws {
		v, err := parse(strings.TrimSpace(raw))
		if err != nil {
			return model.UniqueList[T]{}, err
		}
		if err := out.Add(v); err != nil {
			return model.UniqueList[T]{}, err
		}
	}
	return out, nil
}

// isClearMarker reports whether raws is exactly one empty value.
func isClearMarker(raws []string) bool {
	return len(raws) == 1 && strings.TrimSpace(raws[0]) == ""
}
