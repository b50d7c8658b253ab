package edit

import (
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/model"
)

// Descriptor is a partial update to a person. It lives for one command.
type Descriptor struct {
	Name            Field[model.Name]
	Phones          Field[model.UniqueList[model.Phone]]
	Emails          Field[model.UniqueList[model.Email]]
	Links           Field[model.UniqueList[model.Link]]
	Graduation      Field[model.Graduation]
	Courses         Field[model.UniqueList[model.Course]]
	Specialisations Field[model.UniqueList[model.Specialisation]]
	Tags            Field[model.UniqueList[model.Tag]]
	Priority        Field[model.Priority]
}

// IsAnyFieldEdited reports whether at least one field is cleared or set.
func (d Descriptor) IsAnyFieldEdited() bool {
	return d.Name.IsTouched() ||
		d.Phones.IsTouched() ||
		d.Emails.IsTouched() ||
		d.Links.IsTouched() ||
		d.Graduation.IsTouched() ||
		d.Courses.IsTouched() ||
		d.Specialisations.IsTouched() ||
		d.Tags.IsTouched() ||
		d.Priority.IsTouched()
}

// ClearedFields names every field in the cleared state.
func (d Descriptor) ClearedFields() []string {
	var out []string
	add := func(name string, s State) {
		if s == StateCleared {
			out = append(out, name)
		}
	}
	add(model.FieldName, d.Name.State())
	add(model.FieldPhone, d.Phones.State())
	add(model.FieldEmail, d.Emails.State())
	add(model.FieldLink, d.Links.State())
	add(model.FieldGraduation, d.Graduation.State())
	add(model.FieldCourse, d.Courses.State())
	add(model.FieldSpecialisation, d.Specialisations.State())
	add(model.FieldTag, d.Tags.State())
	add(model.FieldPriority, d.Priority.State())
	return out
}

// ApplyTo returns a copy of p with every touched field replaced. p itself is
// not modified. A cleared name is ignored since a person always has one.
func (d Descriptor) ApplyTo(p model.Person) model.Person {
	out := p.Clone()

	if name, ok := d.Name.Value(); ok {
		out.Name = name
	}
	out.Phones = replaceList(d.Phones, out.Phones)
	out.Emails = replaceList(d.Emails, out.Emails)
	out.Links = replaceList(d.Links, out.Links)
	out.Graduation = replaceOptional(d.Graduation, out.Graduation)
	out.Courses = replaceList(d.Courses, out.Courses)
	out.Specialisations = replaceList(d.Specialisations, out.Specialisations)
	out.Tags = replaceList(d.Tags, out.Tags)
	out.Priority = replaceOptional(d.Priority, out.Priority)

	return out
}

// AppendTo returns a copy of p with set collections appended after the
// existing values and set singular fields replaced. Adding a value the person
// already has fails with errs.KindDuplicateValue; cleared fields are ignored.
func (d Descriptor) AppendTo(p model.Person) (model.Person, error) {
	out := p.Clone()
	var err error

	if name, ok := d.Name.Value(); ok {
		out.Name = name
	}
	if out.Phones, err = appendList(d.Phones, out.Phones); err != nil {
		return model.Person{}, err
	}
	if out.Emails, err = appendList(d.Emails, out.Emails); err != nil {
		return model.Person{}, err
	}
	if out.Links, err = appendList(d.Links, out.Links); err != nil {
		return model.Person{}, err
	}
	if g, ok := d.Graduation.Value(); ok {
		out.Graduation = &g
	}
	if out.Courses, err = appendList(d.Courses, out.Courses); err != nil {
		return model.Person{}, err
	}
	if out.Specialisations, err = appendList(d.Specialisations, out.Specialisations); err != nil {
		return model.Person{}, err
	}
	if out.Tags, err = appendList(d.Tags, out.Tags); err != nil {
		return model.Person{}, err
	}
	if pr, ok := d.Priority.Value(); ok {
		out.Priority = &pr
	}

	return out, nil
}

// Build turns a descriptor into a brand-new person. The name must be set.
func (d Descriptor) Build() (model.Person, error) {
	name, ok := d.Name.Value()
	if !ok {
		return model.Person{}, errs.ForField(model.FieldName, model.NameConstraints)
	}
	return d.ApplyTo(model.NewPerson(name)), nil
}

func replaceList[T model.Keyed](f Field[model.UniqueList[T]], current model.UniqueList[T]) model.UniqueList[T] {
	switch f.State() {
	case StateCleared:
		return model.UniqueList[T]{}
	case StateSet:
		v, _ := f.Value()
		return v.Clone()
	default:
		return current
	}
}

func replaceOptional[T any](f Field[T], current *T) *T {
	switch f.State() {
	case StateCleared:
		return nil
	case StateSet:
		v, _ := f.Value()
		return &v
	default:
		return current
	}
}

func appendList[T model.Keyed](f Field[model.UniqueList[T]], current model.UniqueList[T]) (model.UniqueList[T], error) {
	additions, ok := f.Value()
	if !ok {
		return current, nil
	}
	out := current.Clone()
	for _, v := range additions.Items() {
		if err := out.Add(v); err != nil {
			return model.UniqueList[T]{}, err
		}
	}
	return out, nil
}
