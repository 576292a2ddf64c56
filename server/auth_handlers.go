package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jrsteele09/go-gallery-server/auth"
	"github.com/rs/zerolog/log"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler exchanges the admin credentials for a session token (POST /api/login)
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := s.auth.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.InvalidCredentialsErr) {
				// Deliberately generic: no hint about which field was wrong.
				writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Err(err).Msg("Login failed")
			writeJSONError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   token,
			"message": "Login successful",
		})
	}
}

// LogoutHandler invalidates the presented token (POST /api/logout).
// Always reports success, even for tokens that were never issued.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.auth.Logout(TokenFromRequest(r))
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}

// AuthStatusHandler is the non-failing session check (GET /api/auth/status)
func (s *Server) AuthStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authenticated, username := s.auth.Status(TokenFromRequest(r))
		if !authenticated {
			writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"authenticated": true,
			"username":      username,
		})
	}
}
