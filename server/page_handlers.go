package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// UploadPageData contains data for rendering the upload form
type UploadPageData struct {
	AppName      string
	AuthRequired bool
}

// GalleryPageData contains data for rendering the gallery view
type GalleryPageData struct {
	AppName string
	Images  []string
}

// UploadPageHandler renders the upload form (GET /upload)
func (s *Server) UploadPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("upload.html")
	if err != nil {
		panic("Failed to parse upload template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := UploadPageData{
			AppName:      s.config.GetAppName(),
			AuthRequired: s.config.AuthRequired(),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render upload template")
		}
	}
}

// GalleryPageHandler renders the gallery view (GET /gallery). Unlike the
// JSON API, the rendered view shows the raw directory listing, unfiltered.
func (s *Server) GalleryPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("gallery.html")
	if err != nil {
		panic("Failed to parse gallery template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		files, err := s.gallery.ListAll()
		if err != nil {
			log.Err(err).Msg("Failed to read uploads directory")
			http.Error(w, "Error reading images", http.StatusInternalServerError)
			return
		}

		data := GalleryPageData{
			AppName: s.config.GetAppName(),
			Images:  files,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render gallery template")
		}
	}
}
