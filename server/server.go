package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-gallery-server/auth"
	"github.com/jrsteele09/go-gallery-server/gallery"
	"github.com/jrsteele09/go-gallery-server/internal/config"
)

type Server struct {
	env     string // Environment (e.g., "DEV", "production")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	auth    *auth.Service
	gallery *gallery.Store
	uploads http.Handler
}

func New(config config.Config, authService *auth.Service, galleryStore *gallery.Store) (*Server, error) {
	if authService == nil {
		return nil, fmt.Errorf("[Server New] auth service is required")
	}
	if galleryStore == nil {
		return nil, fmt.Errorf("[Server New] gallery store is required")
	}

	s := &Server{
		mux:     http.NewServeMux(),
		config:  config,
		auth:    authService,
		gallery: galleryStore,
	}
	s.env = config.GetEnv()

	// Stored images are served verbatim straight off the disk.
	s.uploads = http.StripPrefix(RouteUploads, http.FileServer(http.Dir(galleryStore.Dir())))

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
