package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactRefConstructors(t *testing.T) {
	back := BackRef(0)
	assert.True(t, back.IsBackRef)
	assert.Equal(t, 0, back.Index)
	assert.Empty(t, back.ID)

	lit := LiteralRef("abc-123")
	assert.False(t, lit.IsBackRef)
	assert.Equal(t, "abc-123", lit.ID)
}

func TestNewContactSlicesNonNil(t *testing.T) {
	c := NewContact("7")
	assert.Equal(t, "7", c.Identifier)
	assert.NotNil(t, c.Phones)
	assert.NotNil(t, c.Emails)
	assert.NotNil(t, c.PostalAddresses)
	assert.Empty(t, c.Phones)
}
