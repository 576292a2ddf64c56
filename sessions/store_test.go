package sessions_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-gallery-server/sessions"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndValidate(t *testing.T) {
	store := sessions.NewStore(sessions.NewInMemoryRepo())

	token, err := store.Create("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, ok := store.Validate(token)
	require.True(t, ok)
	require.Equal(t, "admin", session.Username)
	require.Equal(t, token, session.Token)
	require.Equal(t, sessions.DefaultTTL, session.ExpiresAt.Sub(session.CreatedAt))
}

func TestStore_TokensAreUnique(t *testing.T) {
	store := sessions.NewStore(sessions.NewInMemoryRepo())

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := store.Create("admin")
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token issued")
		seen[token] = struct{}{}
	}
}

func TestStore_ValidateUnknownToken(t *testing.T) {
	store := sessions.NewStore(sessions.NewInMemoryRepo())

	_, ok := store.Validate("never-issued")
	require.False(t, ok)

	_, ok = store.Validate("")
	require.False(t, ok)
}

func TestStore_LazyExpiry(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	repo := sessions.NewInMemoryRepo()
	store := sessions.NewStore(repo, sessions.WithNowTime(func() time.Time { return now }))

	token, err := store.Create("admin")
	require.NoError(t, err)

	t.Run("valid until just before expiry", func(t *testing.T) {
		now = now.Add(sessions.DefaultTTL - time.Second)
		_, ok := store.Validate(token)
		require.True(t, ok)
	})

	t.Run("absent at expiry", func(t *testing.T) {
		now = now.Add(time.Second)
		_, ok := store.Validate(token)
		require.False(t, ok)
	})

	t.Run("eviction is permanent", func(t *testing.T) {
		// The expired entry was removed on lookup, not merely hidden.
		require.Equal(t, 0, repo.Len())
		_, ok := store.Validate(token)
		require.False(t, ok)
	})
}

func TestStore_Invalidate(t *testing.T) {
	store := sessions.NewStore(sessions.NewInMemoryRepo())

	token, err := store.Create("admin")
	require.NoError(t, err)

	store.Invalidate(token)
	_, ok := store.Validate(token)
	require.False(t, ok)

	// Invalidating again, or invalidating garbage, must not panic or error.
	store.Invalidate(token)
	store.Invalidate("unknown")
	store.Invalidate("")
}

func TestStore_WithTTL(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	store := sessions.NewStore(
		sessions.NewInMemoryRepo(),
		sessions.WithTTL(time.Minute),
		sessions.WithNowTime(func() time.Time { return now }),
	)

	token, err := store.Create("admin")
	require.NoError(t, err)

	now = now.Add(61 * time.Second)
	_, ok := store.Validate(token)
	require.False(t, ok)
}
