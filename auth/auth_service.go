package auth

import (
	"github.com/jrsteele09/go-gallery-server/sessions"
	"github.com/pkg/errors"
)

// Service is the gate in front of the protected gallery operations. Exactly
// one admin identity exists system-wide; its credentials are fixed at
// construction and successful logins are exchanged for opaque session tokens
// held in the session store.
type Service struct {
	sessions      *sessions.Store
	adminUsername string
	adminHash     []byte
}

// NewService creates the auth gate for the configured admin identity.
// The plaintext password is hashed immediately and not retained.
func NewService(sessionStore *sessions.Store, adminUsername, adminPassword string) (*Service, error) {
	if sessionStore == nil {
		return nil, errors.New("[NewService] session store is required")
	}
	if adminUsername == "" || adminPassword == "" {
		return nil, errors.New("[NewService] admin credentials are required")
	}

	hash, err := HashPassword(adminPassword)
	if err != nil {
		return nil, errors.Wrap(err, "[NewService] failed to hash admin password")
	}

	return &Service{
		sessions:      sessionStore,
		adminUsername: adminUsername,
		adminHash:     hash,
	}, nil
}

// Login checks the supplied credentials against the admin identity and issues
// a session token on success. An unknown username and a wrong password fail
// identically with InvalidCredentialsErr.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.adminUsername || !CheckPasswordHash(password, s.adminHash) {
		return "", InvalidCredentialsErr
	}

	token, err := s.sessions.Create(username)
	if err != nil {
		return "", errors.Wrap(err, "[Service.Login] failed to create session")
	}

	return token, nil
}

// Logout invalidates the session for token. It always succeeds, whether or
// not the token was ever issued.
func (s *Service) Logout(token string) {
	s.sessions.Invalidate(token)
}

// Status reports whether token belongs to a live session. It never errors;
// missing and expired tokens both read as unauthenticated.
func (s *Service) Status(token string) (authenticated bool, username string) {
	session, ok := s.sessions.Validate(token)
	if !ok {
		return false, ""
	}
	return true, session.Username
}

// RequireValid is the enforcement primitive for protected operations: it
// returns the session for token or UnauthenticatedErr. A missing token and an
// expired one are indistinguishable to the caller.
func (s *Service) RequireValid(token string) (sessions.Session, error) {
	session, ok := s.sessions.Validate(token)
	if !ok {
		return sessions.Session{}, UnauthenticatedErr
	}
	return session, nil
}
