package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/errs"
)

func mustPhone(t *testing.T, raw string) Phone {
	t.Helper()
	p, err := NewPhone(raw)
	require.NoError(t, err)
	return p
}

func TestUniqueListAdd(t *testing.T) {
	var l UniqueList[Phone]
	assert.True(t, l.IsEmpty())

	require.NoError(t, l.Add(mustPhone(t, "123")))
	require.NoError(t, l.Add(mustPhone(t, "456")))
	err := l.Add(mustPhone(t, "123"))
	assert.True(t, errs.Is(err, errs.KindDuplicateValue))

	assert.Equal(t, []string{"123", "456"}, l.Strings())
	assert.Equal(t, 2, l.Len())
}

func TestUniqueListSetAllIsAllOrNothing(t *testing.T) {
	l := MustUniqueListOf(mustPhone(t, "111"))

	err := l.SetAll([]Phone{mustPhone(t, "222"), mustPhone(t, "222")})
	assert.True(t, errs.Is(err, errs.KindDuplicateValue))
	assert.Equal(t, []string{"111"}, l.Strings())

	require.NoError(t, l.SetAll([]Phone{mustPhone(t, "333"), mustPhone(t, "222")}))
	assert.Equal(t, []string{"333", "222"}, l.Strings())

	require.NoError(t, l.SetAll(nil))
	assert.True(t, l.IsEmpty())
}

func TestUniqueListNormalizedDuplicates(t *testing.T) {
	a, _ := NewEmail("Alice@x.com")
	b, _ := NewEmail("alice@X.COM")
	_, err := NewUniqueListOf(a, b)
	assert.True(t, errs.Is(err, errs.KindDuplicateValue))
}

func TestUniqueListCloneIsIndependent(t *testing.T) {
	l := MustUniqueListOf(mustPhone(t, "111"))
	c := l.Clone()
	require.NoError(t, c.Add(mustPhone(t, "222")))

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, c.Len())
	assert.False(t, l.Equal(c))

	items := l.Items()
	items[0] = mustPhone(t, "999")
	assert.Equal(t, "111", l.Items()[0].String())
}
