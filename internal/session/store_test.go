package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobdesk/internal/types"
)

func TestStore_TokenRoundTrip(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.Token())
	require.NoError(t, store.SetToken("abc123"))
	assert.Equal(t, "abc123", store.Token())

	require.NoError(t, store.SetToken(""))
	assert.Empty(t, store.Token())
}

func TestStore_UserCache(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.User()
	assert.False(t, ok)

	u := &types.User{ID: 7, Email: "jane@example.com", FullName: "Jane Doe"}
	require.NoError(t, store.SetUser(u))

	got, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Jane Doe", got.FullName)
}

func TestStore_ClearRemovesTokenAndUserTogether(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken("abc"))
	require.NoError(t, store.SetUser(&types.User{ID: 1}))

	require.NoError(t, store.Clear())

	assert.Empty(t, store.Token())
	_, ok := store.User()
	assert.False(t, ok)
}

func TestStore_ReturnPathIsConsumedOnce(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.ReturnPath())
	require.NoError(t, store.SetReturnPath("/jobs/12/apply"))
	assert.Equal(t, "/jobs/12/apply", store.ReturnPath())
	assert.Empty(t, store.ReturnPath())
}

func TestNewStore_RequiresDir(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
