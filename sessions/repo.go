package sessions

import "errors"

var SessionNotFoundErr = errors.New("session not found")

// Repo is the storage interface for session records. Implementations must be
// safe for concurrent use; the HTTP server mutates sessions from multiple
// goroutines.
type Repo interface {
	Upsert(token string, session Session) error
	Get(token string) (Session, error)
	Delete(token string) error
}
