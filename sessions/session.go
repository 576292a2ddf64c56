package sessions

import "time"

// Session binds an opaque token to the identity that logged in and an expiry.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
// A session is valid only while now is strictly before ExpiresAt.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
