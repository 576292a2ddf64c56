package server

import (
	"context"
	"net/http"
	"strings"
)

// TokenFromRequest extracts the session token from the Authorization header
// (Bearer scheme) or the "token" query parameter. First non-empty wins.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1]
		}
	}
	return r.URL.Query().Get("token")
}

// RequireAuth is middleware for the mutating gallery routes. It rejects the
// request with a generic 401 when the token is missing, unknown or expired;
// the three cases are indistinguishable to the caller.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, err := s.auth.RequireValid(TokenFromRequest(r))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUsername, session.Username)
			next(w, r.WithContext(ctx))
		}
	}
}
