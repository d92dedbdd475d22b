package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, ok := TokenExpiry(mintToken(t, exp))
	require.True(t, ok)
	assert.WithinDuration(t, exp, got, time.Second)

	_, ok = TokenExpiry("not.a.token")
	assert.False(t, ok)

	_, ok = TokenExpiry("")
	assert.False(t, ok)
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := TokenExpiry(signed)
	assert.False(t, ok)
}

func TestGuard_ActivateArmsWatcher(t *testing.T) {
	store := newTestStore(t)
	g := NewGuard(store)

	err := g.Activate(mintToken(t, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, Authenticated, g.State())
	assert.NotEmpty(t, store.Token())
}

func TestGuard_TokenInsideMarginEndsImmediately(t *testing.T) {
	store := newTestStore(t)
	g := NewGuard(store)
	notices := g.Subscribe()

	// exp 3 seconds out is inside the 5 second margin: the forced-logout
	// path must run synchronously, clearing the store.
	err := g.Activate(mintToken(t, time.Now().Add(3*time.Second)))
	require.NoError(t, err)

	assert.Equal(t, Expired, g.State())
	assert.Empty(t, store.Token())

	select {
	case n := <-notices:
		assert.Equal(t, ReasonExpired, n.Reason)
	default:
		t.Fatal("expected an end notice")
	}
}

func TestGuard_EndClearsStoreAndRecordsReturnPath(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken("abc"))
	require.NoError(t, store.SetUser(nil))

	var hooked *EndNotice
	g := NewGuard(store, WithEndHook(func(n EndNotice) { hooked = &n }))
	notices := g.Subscribe()

	g.End(ReasonForbidden, "/admin/applications")

	assert.Equal(t, Expired, g.State())
	assert.Empty(t, store.Token())
	_, haveUser := store.User()
	assert.False(t, haveUser)
	assert.Equal(t, "/admin/applications", store.ReturnPath())

	require.NotNil(t, hooked)
	assert.Equal(t, ReasonForbidden, hooked.Reason)

	select {
	case n := <-notices:
		assert.Equal(t, ReasonForbidden, n.Reason)
	default:
		t.Fatal("expected an end notice")
	}
}

func TestGuard_EndIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	var calls int
	g := NewGuard(store, WithEndHook(func(EndNotice) { calls++ }))

	g.End(ReasonExpired, "")
	g.End(ReasonExpired, "")

	assert.Equal(t, 1, calls)
}

func TestGuard_LogoutClearsWithoutNotice(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken("abc"))
	g := NewGuard(store)
	notices := g.Subscribe()

	require.NoError(t, g.Logout())

	assert.Equal(t, Anonymous, g.State())
	assert.Empty(t, store.Token())
	select {
	case <-notices:
		t.Fatal("logout must not broadcast an end notice")
	default:
	}
}

func TestGuard_StartsAuthenticatedWithPersistedToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SetToken(mintToken(t, time.Now().Add(time.Hour))))

	g := NewGuard(store)
	assert.Equal(t, Authenticated, g.State())
}

func TestEndedError_UnwrapsToErrEnded(t *testing.T) {
	err := &EndedError{Reason: ReasonExpired}
	assert.ErrorIs(t, err, ErrEnded)
	assert.Contains(t, err.Error(), "expired")
}
