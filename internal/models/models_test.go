package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseDecision(t *testing.T) {
	for in, want := range map[string]Status{
		"accepted": StatusAccepted,
		" Accept ": StatusAccepted,
		"approved": StatusAccepted,
		"REJECTED": StatusRejected,
		"reject":   StatusRejected,
	} {
		got, err := ParseDecision(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDecision("pending")
	assert.Error(t, err)
	_, err = ParseDecision("")
	assert.Error(t, err)
}

func TestStatusAndRole(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, Status("archived").Valid())

	assert.True(t, RoleFundingAgency.SelfService())
	assert.False(t, RoleAdmin.SelfService())
	assert.False(t, Role("guest").Valid())
}

func TestParseFilingKind(t *testing.T) {
	kind, err := ParseFilingKind("trade-secret")
	require.NoError(t, err)
	assert.Equal(t, KindTradeSecret, kind)
	assert.Equal(t, "trade-secret", kind.Slug())

	kind, err = ParseFilingKind("Patent")
	require.NoError(t, err)
	assert.Equal(t, KindPatent, kind)

	_, err = ParseFilingKind("design")
	assert.Error(t, err)
}

func TestBasePrepare(t *testing.T) {
	var b Base
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b.Prepare(now)
	assert.Len(t, b.ID, 36)
	assert.Equal(t, now, b.CreatedAt)

	id := b.ID
	later := now.Add(time.Hour)
	b.Prepare(later)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, later, b.UpdatedAt)

	assert.Less(t, NewID(), NewID())
}

func TestConversationKey(t *testing.T) {
	assert.Equal(t, ConversationKey("b", "a"), ConversationKey("a", "b"))
	assert.Equal(t, "a:b", ConversationKey("b", "a"))
}

func TestStringListScanValue(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var l StringList
	require.NoError(t, l.Scan([]byte(`["x","y"]`)))
	assert.Equal(t, StringList{"x", "y"}, l)
	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)
	assert.Error(t, l.Scan(42))
}

func TestFilingText(t *testing.T) {
	f := Filing{
		Title:       "Widget",
		Description: "A small widget",
		Attributes:  datatypes.JSONMap{"zeta": "last", "alpha": "first", "n": 3},
	}
	assert.Equal(t, "Widget\nA small widget\nfirst\nlast", f.Text())
}
