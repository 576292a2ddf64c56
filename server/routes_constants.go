package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth API
	RouteAPILogin      = "/api/login"
	RouteAPILogout     = "/api/logout"
	RouteAPIAuthStatus = "/api/auth/status"

	// Gallery API
	RouteAPIGallery = "/api/gallery"
	RouteAPIDelete  = "/api/delete/{filename}"

	// Upload form and submission share a path, split by method
	RouteUpload = "/upload"

	// Rendered views and static pages
	RouteGalleryView = "/gallery"
	RouteTeam        = "/team"
	RouteAdmin       = "/admin"

	// Stored images, served from the uploads directory
	RouteUploads = "/uploads/"

	// Operational
	RouteMetrics = "/metrics"
)
