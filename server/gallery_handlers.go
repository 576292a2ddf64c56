package server

import (
	"errors"
	"net/http"

	"github.com/jrsteele09/go-gallery-server/gallery"
	"github.com/rs/zerolog/log"
)

// GalleryListHandler returns the stored images as JSON (GET /api/gallery).
// Only entries with a recognised image extension are exposed here.
func (s *Server) GalleryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := s.gallery.ListImages()
		if err != nil {
			log.Err(err).Msg("Failed to read uploads directory")
			writeJSONError(w, http.StatusInternalServerError, "Error reading images")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"images": images})
	}
}

// UploadHandler stores the multipart "photo" field (POST /upload)
func (s *Server) UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("photo")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Missing photo upload")
			return
		}
		defer file.Close()

		storedName, err := s.gallery.Save(header.Filename, file)
		if err != nil {
			if errors.Is(err, gallery.InvalidFilenameErr) {
				writeJSONError(w, http.StatusBadRequest, "Invalid filename")
				return
			}
			log.Err(err).Str("filename", header.Filename).Msg("Failed to store upload")
			writeJSONError(w, http.StatusInternalServerError, "Failed to store image")
			return
		}

		log.Info().Str("filename", storedName).Msg("Image uploaded")
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Image uploaded successfully",
		})
	}
}

// DeleteImageHandler removes a stored image (DELETE /api/delete/{filename})
func (s *Server) DeleteImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := r.PathValue("filename")

		if err := s.gallery.Delete(filename); err != nil {
			// The underlying cause stays server-side; the client gets a
			// generic failure whether the file was missing or undeletable.
			log.Err(err).Str("filename", filename).Msg("Failed to delete image")
			writeJSONError(w, http.StatusInternalServerError, "Failed to delete image")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
	}
}
