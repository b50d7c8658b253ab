package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/edit"
	"github.com/networkbook/networkbook/internal/errs"
	"github.com/networkbook/networkbook/internal/model"
	"github.com/networkbook/networkbook/internal/testutil"
)

func mustName(t *testing.T, raw string) model.Name {
	t.Helper()
	n, err := model.NewName(raw)
	require.NoError(t, err)
	return n
}

func mustEmails(t *testing.T, raws ...string) model.UniqueList[model.Email] {
	t.Helper()
	var l model.UniqueList[model.Email]
	for _, raw := range raws {
		e, err := model.NewEmail(raw)
		require.NoError(t, err)
		require.NoError(t, l.Add(e))
	}
	return l
}

func TestEditCommandReplacesOnlyGivenFields(t *testing.T) {
	m := testutil.TypicalManager(t)
	before := m.FilteredPersonList()

	cmd := EditCommand{
		Index: model.IndexFromOneBased(2),
		Descriptor: edit.Descriptor{
			Name:   edit.SetTo(mustName(t, "Alice Tan")),
			Emails: edit.SetTo(mustEmails(t, "alice@x.com")),
		},
	}
	res, err := cmd.Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Alice Tan")
	assert.Equal(t, ActionNone, res.Action)

	want := before[1].Clone()
	want.Name = mustName(t, "Alice Tan")
	want.Emails = mustEmails(t, "alice@x.com")

	after := m.FilteredPersonList()
	require.Len(t, after, 3)
	testutil.AssertPersonEqual(t, want, after[1])
	testutil.AssertPersonEqual(t, before[0], after[0])
	testutil.AssertPersonEqual(t, before[2], after[2])
}

func TestEditCommandInvalidIndexLeavesModel(t *testing.T) {
	m := testutil.TypicalManager(t)
	before := m.Persons()

	cmd := EditCommand{
		Index:      model.IndexFromOneBased(10),
		Descriptor: edit.Descriptor{Name: edit.SetTo(mustName(t, "Alice Tan"))},
	}
	_, err := cmd.Execute(m)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindInvalidIndex))
	assert.Equal(t, MessageInvalidPersonIndex, err.Error())
	testutil.AssertPersonsEqual(t, before, m.Persons())
}

func TestEditCommandDuplicatePerson(t *testing.T) {
	m := testutil.TypicalManager(t)
	before := m.Persons()

	cmd := EditCommand{
		Index:      model.IndexFromOneBased(1),
		Descriptor: edit.Descriptor{Name: edit.SetTo(mustName(t, "carl kurz"))},
	}
	_, err := cmd.Execute(m)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindDuplicatePerson))
	testutil.AssertPersonsEqual(t, before, m.Persons())
}

func TestEditCommandRenameKeepsCaseChange(t *testing.T) {
	m := testutil.TypicalManager(t)

	cmd := EditCommand{
		Index:      model.IndexFromOneBased(3),
		Descriptor: edit.Descriptor{Name: edit.SetTo(mustName(t, "CARL KURZ"))},
	}
	_, err := cmd.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "CARL KURZ", m.Persons()[2].Name.String())
}

func TestEditCommandUsesDisplayedList(t *testing.T) {
	m := testutil.TypicalManager(t)
	m.UpdateFilteredPersonList(NameContainsKeywords([]string{"carl"}))

	cmd := EditCommand{
		Index:      model.IndexFromOneBased(1),
		Descriptor: edit.Descriptor{Tags: edit.Cleared[model.UniqueList[model.Tag]](), Priority: edit.Cleared[model.Priority]()},
	}
	_, err := cmd.Execute(m)
	require.NoError(t, err)

	carl := m.Persons()[2]
	assert.Equal(t, "Carl Kurz", carl.Name.String())
	assert.Nil(t, carl.Priority)
	assert.True(t, carl.Tags.IsEmpty())
}

func TestCreateCommand(t *testing.T) {
	m := testutil.TypicalManager(t)
	p := testutil.NewPerson(t, "Daniel Meier").WithPhones("87652533").Build()

	res, err := CreateCommand{Person: p}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "New person added: Daniel Meier; Phones: 87652533", res.Feedback)
	assert.Len(t, m.Persons(), 4)

	_, err = CreateCommand{Person: testutil.NewPerson(t, "alice pauline").Build()}.Execute(m)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindDuplicatePerson))
	assert.Len(t, m.Persons(), 4)
}

func TestAddCommandAppends(t *testing.T) {
	m := testutil.TypicalManager(t)

	cmd := AddCommand{
		Index:      model.IndexFromOneBased(2),
		Descriptor: edit.Descriptor{Emails: edit.SetTo(mustEmails(t, "benson@work.com"))},
	}
	res, err := cmd.Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Added details to Person: Benson Meier")
	assert.Equal(t, []string{"johnd@example.com", "benson@work.com"}, m.Persons()[1].Emails.Strings())
}

func TestAddCommandRejectsExistingValue(t *testing.T) {
	m := testutil.TypicalManager(t)
	before := m.Persons()

	cmd := AddCommand{
		Index:      model.IndexFromOneBased(2),
		Descriptor: edit.Descriptor{Emails: edit.SetTo(mustEmails(t, "JOHND@example.com"))},
	}
	_, err := cmd.Execute(m)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindDuplicateValue))
	testutil.AssertPersonsEqual(t, before, m.Persons())
}

func TestDeleteCommand(t *testing.T) {
	m := testutil.TypicalManager(t)

	res, err := DeleteCommand{Index: model.IndexFromOneBased(1)}.Execute(m)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Deleted Person: Alice Pauline")
	assert.Len(t, m.Persons(), 2)

	_, err = DeleteCommand{Index: model.IndexFromOneBased(3)}.Execute(m)
	assert.True(t, errs.Is(err, errs.KindInvalidIndex))
	assert.Len(t, m.Persons(), 2)
}

func TestClearCommand(t *testing.T) {
	m := testutil.TypicalManager(t)
	res, err := ClearCommand{}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, MessageClearSuccess, res.Feedback)
	assert.Empty(t, m.Persons())
	assert.Empty(t, m.FilteredPersonList())
}
