package server

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() {
	// AUTH API
	s.RegisterRouteFunc("POST "+RouteAPILogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAPILogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAPIAuthStatus, ChainMiddleware(s.AuthStatusHandler(), s.APIMiddleware()...))

	// GALLERY API
	s.RegisterRouteFunc("GET "+RouteAPIGallery, ChainMiddleware(s.GalleryListHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("DELETE "+RouteAPIDelete, ChainMiddleware(s.DeleteImageHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteUpload, ChainMiddleware(s.UploadHandler(), s.ProtectedAPIMiddleware()...))

	// Rendered views
	s.RegisterRouteFunc("GET "+RouteUpload, ChainMiddleware(s.UploadPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteGalleryView, ChainMiddleware(s.GalleryPageHandler(), s.HTMLMiddleware()...))

	// Static pages
	s.RegisterRouteFunc("GET "+RouteTeam, ChainMiddleware(s.staticPageHandler("team.html"), s.HTMLMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAdmin, ChainMiddleware(s.staticPageHandler("admin/index.html"), s.HTMLMiddleware()...))

	// Stored images
	s.RegisterRouteFunc("GET "+RouteUploads, ChainMiddleware(s.uploadsHandler(), s.APIMiddleware()...))

	// Prometheus scrape endpoint
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())

	// CORS preflight for every route
	s.RegisterRouteFunc("OPTIONS /", s.PreflightHandler())

	// Static bundle fallback
	s.RegisterRouteFunc("GET /", ChainMiddleware(s.serveFileHandler(), s.HTMLMiddleware()...))
}

func (s *Server) uploadsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.uploads.ServeHTTP(w, r)
	}
}

func (s *Server) staticPageHandler(fileName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := StreamFile(w, r, fileName); err != nil {
			log.Err(err).Str("file", fileName).Msg("Failed to serve static page")
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
		}
	}
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			filePath = "index.html"
		}
		if err := StreamFile(w, r, filePath); err != nil {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
		}
	}
}
