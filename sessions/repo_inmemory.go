package sessions

import (
	"fmt"
	"sync"
)

// InMemoryRepo is an in-memory implementation of Repo. Session lifetime is
// process lifetime: nothing is persisted across restarts.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

// Upsert creates or updates a session record
func (r *InMemoryRepo) Upsert(token string, session Session) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = session
	return nil
}

// Get retrieves a session record by token
func (r *InMemoryRepo) Get(token string) (Session, error) {
	if token == "" {
		return Session{}, fmt.Errorf("token is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return Session{}, SessionNotFoundErr
	}

	return session, nil
}

// Delete removes a session record
func (r *InMemoryRepo) Delete(token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

// Len returns the number of stored sessions, live or expired.
func (r *InMemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
