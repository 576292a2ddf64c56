package sessions_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/go-gallery-server/sessions"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo(t *testing.T) {
	repo := sessions.NewInMemoryRepo()
	session := sessions.Session{Token: "t1", Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("upsert requires a token", func(t *testing.T) {
		require.Error(t, repo.Upsert("", session))
	})

	t.Run("get after upsert", func(t *testing.T) {
		require.NoError(t, repo.Upsert("t1", session))
		got, err := repo.Get("t1")
		require.NoError(t, err)
		require.Equal(t, session, got)
	})

	t.Run("get unknown token", func(t *testing.T) {
		_, err := repo.Get("t2")
		require.ErrorIs(t, err, sessions.SessionNotFoundErr)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete("t1"))
		require.NoError(t, repo.Delete("t1"))
		_, err := repo.Get("t1")
		require.ErrorIs(t, err, sessions.SessionNotFoundErr)
	})
}

func TestInMemoryRepo_ConcurrentAccess(t *testing.T) {
	repo := sessions.NewInMemoryRepo()
	store := sessions.NewStore(repo)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := store.Create("admin")
			require.NoError(t, err)
			_, ok := store.Validate(token)
			require.True(t, ok)
			store.Invalidate(token)
		}()
	}
	wg.Wait()

	require.Equal(t, 0, repo.Len())
}
