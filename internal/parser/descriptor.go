package parser

import (
	"github.com/networkbook/networkbook/internal/edit"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/model"
)

// GenerateDescriptor builds an edit.Descriptor from the person prefixes in mm.
//
// An absent prefix leaves its field untouched. For collections, a prefix
// given once with an empty value clears the field; for graduation and
// priority an empty value unsets them. A name can never be cleared.
func GenerateDescriptor(mm ArgMultimap) (edit.Descriptor, error) {
	var d edit.Descriptor
	var err error

	if raw, ok := mm.Value(PrefixName); ok {
		name, err := ParseName(raw)
		if err != nil {
			return edit.Descriptor{}, err
		}
		d.Name = edit.SetTo(name)
	}
	if d.Phones, err = collectionField(mm.AllValues(PrefixPhone), ParsePhones); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Emails, err = collectionField(mm.AllValues(PrefixEmail), ParseEmails); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Links, err = collectionField(mm.AllValues(PrefixLink), ParseLinks); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Graduation, err = optionalField(mm, PrefixGraduation, ParseGraduation); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Courses, err = collectionField(mm.AllValues(PrefixCourse), ParseCourses); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Specialisations, err = collectionField(mm.AllValues(PrefixSpecialisation), ParseSpecialisations); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Tags, err = collectionField(mm.AllValues(PrefixTag), ParseTags); err != nil {
		return edit.Descriptor{}, err
	}
	if d.Priority, err = optionalField(mm, PrefixPriority, ParsePriority); err != nil {
		return edit.Descriptor{}, err
	}

	logger.Logger.Debug("generated descriptor", "edited", d.IsAnyFieldEdited(), "cleared", d.ClearedFields())
	return d, nil
}

func collectionField[T model.Keyed](raws []string, parse func([]string) (model.UniqueList[T], error)) (edit.Field[model.UniqueList[T]], error) {
	if len(raws) == 0 {
		return edit.Untouched[model.UniqueList[T]](), nil
	}
	if isClearMarker(raws) {
		return edit.Cleared[model.UniqueList[T]](), nil
	}
	values, err := parse(raws)
	if err != nil {
		return edit.Field[model.UniqueList[T]]{}, err
	}
	return edit.SetTo(values), nil
}

func optionalField[T any](mm ArgMultimap, p Prefix, parse func(string) (T, error)) (edit.Field[T], error) {
	raw, ok := mm.Value(p)
	if !ok {
		return edit.Untouched[T](), nil
	}
	if raw == "" {
		return edit.Cleared[T](), nil
	}
	v, err := parse(raw)
	if err != nil {
		return edit.Field[T]{}, err
	}
	return edit.SetTo(v), nil
}
