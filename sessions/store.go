package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// DefaultTTL is how long a session remains valid after login.
const DefaultTTL = 24 * time.Hour

// tokenByteLength gives 256 bits of entropy per token. The token is the
// entire security boundary of the protected routes, so it must come from a
// cryptographic source.
const tokenByteLength = 32

// Store owns the session lifecycle: it issues tokens on login, answers
// validity checks and lazily evicts expired entries on lookup. There is no
// background sweep, so memory for sessions that are never looked up again
// after expiry is not reclaimed until restart.
type Store struct {
	repo    Repo
	ttl     time.Duration
	nowTime func() time.Time
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(st *Store) {
		st.nowTime = nowFunc
	}
}

// WithTTL overrides the default 24h session lifetime.
func WithTTL(ttl time.Duration) StoreOption {
	return func(st *Store) {
		st.ttl = ttl
	}
}

// NewStore creates a session store backed by repo.
func NewStore(repo Repo, options ...StoreOption) *Store {
	st := &Store{
		repo:    repo,
		ttl:     DefaultTTL,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(st)
	}

	return st
}

// Create issues a fresh session for username and returns its token.
func (st *Store) Create(username string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	now := st.nowTime()
	session := Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(st.ttl),
	}

	if err := st.repo.Upsert(token, session); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	return token, nil
}

// Validate returns the session for token if it exists and has not expired.
// An expired entry is deleted on the spot and reported as absent, so a second
// lookup of the same token stays absent.
func (st *Store) Validate(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	session, err := st.repo.Get(token)
	if err != nil {
		return Session{}, false
	}

	if session.Expired(st.nowTime()) {
		_ = st.repo.Delete(token)
		return Session{}, false
	}

	return session, true
}

// Invalidate removes the session for token. Unknown tokens are a no-op.
func (st *Store) Invalidate(token string) {
	if token == "" {
		return
	}
	_ = st.repo.Delete(token)
}

// generateToken creates a random base64url token
func generateToken() (string, error) {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
