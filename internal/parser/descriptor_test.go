package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/edit"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/model"
)

func descriptorOf(t *testing.T, args string) edit.Descriptor {
	t.Helper()
	d, err := GenerateDescriptor(Tokenize(args, PersonPrefixes...))
	require.NoError(t, err)
	return d
}

func TestGenerateDescriptorAbsentPrefixesAreUntouched(t *testing.T) {
	d := descriptorOf(t, "1")
	assert.False(t, d.IsAnyFieldEdited())
	assert.Equal(t, edit.StateUntouched, d.Tags.State())
	assert.Equal(t, edit.StateUntouched, d.Graduation.State())
}

func TestGenerateDescriptorSetsParsedValues(t *testing.T) {
	d := descriptorOf(t, "2 n/Alice Tan e/alice@x.com p/123 p/456 pr/m")

	name, ok := d.Name.Value()
	require.True(t, ok)
	assert.Equal(t, "Alice Tan", name.String())

	emails, ok := d.Emails.Value()
	require.True(t, ok)
	assert.Equal(t, []string{"alice@x.com"}, emails.Strings())

	phones, ok := d.Phones.Value()
	require.True(t, ok)
	assert.Equal(t, []string{"123", "456"}, phones.Strings())

	pr, ok := d.Priority.Value()
	require.True(t, ok)
	assert.Equal(t, model.PriorityMedium, pr.Level())

	assert.Equal(t, edit.StateUntouched, d.Links.State())
	assert.Equal(t, edit.StateUntouched, d.Courses.State())
}

func TestGenerateDescriptorClearMarkers(t *testing.T) {
	tests := []struct {
		args  string
		field string
		state func(edit.Descriptor) edit.State
	}{
		{"1 t/", model.FieldTag, func(d edit.Descriptor) edit.State { return d.Tags.State() }},
		{"1 p/", model.FieldPhone, func(d edit.Descriptor) edit.State { return d.Phones.State() }},
		{"1 c/", model.FieldCourse, func(d edit.Descriptor) edit.State { return d.Courses.State() }},
		{"1 g/", model.FieldGraduation, func(d edit.Descriptor) edit.State { return d.Graduation.State() }},
		{"1 pr/", model.FieldPriority, func(d edit.Descriptor) edit.State { return d.Priority.State() }},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			d := descriptorOf(t, tt.args)
			assert.Equal(t, edit.StateCleared, tt.state(d))
			assert.True(t, d.IsAnyFieldEdited())
			assert.Equal(t, []string{tt.field}, d.ClearedFields())
		})
	}
}

func TestGenerateDescriptorErrors(t *testing.T) {
	tests := []struct {
		args string
		kind errs.Kind
	}{
		{"1 n/", errs.KindInvalidFieldFormat},
		{"1 n/@lice", errs.KindInvalidFieldFormat},
		{"1 p/999 p/999", errs.KindDuplicateValue},
		{"1 t/ t/friend", errs.KindInvalidFieldFormat},
		{"1 g/AY2325-S1", errs.KindInvalidFieldFormat},
		{"1 pr/urgent", errs.KindInvalidFieldFormat},
		{"1 e/not-an-email", errs.KindInvalidFieldFormat},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			_, err := GenerateDescriptor(Tokenize(tt.args, PersonPrefixes...))
			require.Error(t, err)
			assert.Equal(t, tt.kind, errs.KindOf(err))
		})
	}
}
