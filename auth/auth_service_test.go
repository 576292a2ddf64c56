package auth_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-gallery-server/auth"
	"github.com/jrsteele09/go-gallery-server/sessions"
	"github.com/stretchr/testify/require"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "correct-horse"
)

// testFixture holds the service under test plus the clock it runs on
type testFixture struct {
	service *auth.Service
	now     time.Time
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	store := sessions.NewStore(
		sessions.NewInMemoryRepo(),
		sessions.WithNowTime(func() time.Time { return f.now }),
	)

	service, err := auth.NewService(store, testAdminUsername, testAdminPassword)
	require.NoError(t, err)
	f.service = service
	return f
}

func TestNewService_Validation(t *testing.T) {
	store := sessions.NewStore(sessions.NewInMemoryRepo())

	_, err := auth.NewService(nil, testAdminUsername, testAdminPassword)
	require.Error(t, err)

	_, err = auth.NewService(store, "", testAdminPassword)
	require.Error(t, err)

	_, err = auth.NewService(store, testAdminUsername, "")
	require.Error(t, err)
}

func TestService_Login(t *testing.T) {
	f := setupTestFixture(t)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token, err := f.service.Login(testAdminUsername, testAdminPassword)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		authenticated, username := f.service.Status(token)
		require.True(t, authenticated)
		require.Equal(t, testAdminUsername, username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.service.Login(testAdminUsername, "wrong")
		require.ErrorIs(t, err, auth.InvalidCredentialsErr)
	})

	t.Run("unknown username fails the same way", func(t *testing.T) {
		_, err := f.service.Login("someone-else", testAdminPassword)
		require.ErrorIs(t, err, auth.InvalidCredentialsErr)
	})
}

func TestService_Logout(t *testing.T) {
	f := setupTestFixture(t)

	token, err := f.service.Login(testAdminUsername, testAdminPassword)
	require.NoError(t, err)

	f.service.Logout(token)
	authenticated, _ := f.service.Status(token)
	require.False(t, authenticated)

	// Logout of an unknown or already-removed token is a no-op.
	f.service.Logout(token)
	f.service.Logout("never-issued")
}

func TestService_RequireValid(t *testing.T) {
	f := setupTestFixture(t)

	t.Run("token never issued", func(t *testing.T) {
		_, err := f.service.RequireValid("never-issued")
		require.ErrorIs(t, err, auth.UnauthenticatedErr)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := f.service.RequireValid("")
		require.ErrorIs(t, err, auth.UnauthenticatedErr)
	})

	t.Run("live token", func(t *testing.T) {
		token, err := f.service.Login(testAdminUsername, testAdminPassword)
		require.NoError(t, err)

		session, err := f.service.RequireValid(token)
		require.NoError(t, err)
		require.Equal(t, testAdminUsername, session.Username)
	})
}

func TestService_SessionExpiry(t *testing.T) {
	f := setupTestFixture(t)

	token, err := f.service.Login(testAdminUsername, testAdminPassword)
	require.NoError(t, err)

	// Still valid a minute before the 24h mark.
	f.now = f.now.Add(sessions.DefaultTTL - time.Minute)
	authenticated, _ := f.service.Status(token)
	require.True(t, authenticated)

	// Expired once 24 hours have elapsed, and stays expired.
	f.now = f.now.Add(2 * time.Minute)
	authenticated, _ = f.service.Status(token)
	require.False(t, authenticated)

	_, err = f.service.RequireValid(token)
	require.ErrorIs(t, err, auth.UnauthenticatedErr)
}
