package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUsername stores the authenticated session's username
	ContextKeyUsername ContextKey = "username"
	// ContextKeyRequestID stores the request correlation ID
	ContextKeyRequestID ContextKey = "request_id"
)

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

func (s *Server) APIMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return []func(http.HandlerFunc) http.HandlerFunc{
		s.RequestIDMiddleware,
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.MetricsMiddleware,
		s.CorsMiddleware,
	}
}

// ProtectedAPIMiddleware is the API chain plus token enforcement when the
// deployment runs with AUTH_REQUIRED on.
func (s *Server) ProtectedAPIMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	mw := s.APIMiddleware()
	if s.config.AuthRequired() {
		mw = append(mw, s.RequireAuth())
	}
	return mw
}

func (s *Server) HTMLMiddleware() []func(http.HandlerFunc) http.HandlerFunc {
	return []func(http.HandlerFunc) http.HandlerFunc{
		s.RequestIDMiddleware,
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.MetricsMiddleware,
		s.FrameSecurityMiddleware,
	}
}

// RequestIDMiddleware tags every request with a correlation ID, echoed back
// in the X-Request-ID response header.
func (s *Server) RequestIDMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), ContextKeyRequestID, requestID)
		next(w, r.WithContext(ctx))
	}
}

func (s *Server) LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newStatusResponseWriter(w)

		next(wrapped, r)

		requestID, _ := r.Context().Value(ContextKeyRequestID).(string)
		event := log.Info()
		if wrapped.statusCode >= http.StatusInternalServerError {
			event = log.Error()
		} else if wrapped.statusCode >= http.StatusBadRequest {
			event = log.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Dur("duration", time.Since(start)).
			Str("request_id", requestID).
			Str("remote_addr", r.RemoteAddr).
			Msg("Request handled")

		if s.env == "DEV" {
			logRoute(r.Method, r.URL.Path)
		}
	}
}

// RecoverMiddleware converts handler panics into a 500 response so an
// unexpected fault never crashes the serving process.
func (s *Server) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Recovered from handler panic")
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next(w, r)
	}
}

func (s *Server) FrameSecurityMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Prevent embedding on other sites
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'self'")
		next(w, r)
	}
}

func (s *Server) CorsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.setCorsHeaders(w, r)
		next(w, r)
	}
}

// PreflightHandler answers OPTIONS requests for any route with the CORS
// headers and a bare 200, the way the gallery front-ends expect.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.setCorsHeaders(w, r)
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) setCorsHeaders(w http.ResponseWriter, r *http.Request) {
	allowed := s.config.GetAllowedOrigins()
	origin := r.Header.Get("Origin")

	switch {
	case allowed.IsAllowedOrigin("*"):
		w.Header().Set("Access-Control-Allow-Origin", "*")
		// Don't set Allow-Credentials with wildcard
	case allowed.IsAllowedOrigin(origin):
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	default:
		// Unknown origin: no CORS headers, the browser blocks the response
		return
	}

	w.Header().Set("Access-Control-Allow-Methods", s.config.GetAllowedMethods())
	w.Header().Set("Access-Control-Allow-Headers", s.config.GetAllowedHeaders())
}

// statusResponseWriter captures the status code written by a handler.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *statusResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusResponseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying ResponseWriter.
func (rw *statusResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
