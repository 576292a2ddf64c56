package config

import "strings"

const (
	adminUsernameEnvVar = "ADMIN_USERNAME"
	adminPasswordEnvVar = "ADMIN_PASSWORD"
	authRequiredEnvVar  = "AUTH_REQUIRED"
)

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetAdminUsername() string {
	return GetEnv(adminUsernameEnvVar, "admin")
}

func (Security) GetAdminPassword() string {
	return GetEnv(adminPasswordEnvVar, "kalyan2025")
}

// AuthRequired reports whether the mutating gallery routes (upload, delete)
// are gated behind a session token. Defaults to on; set AUTH_REQUIRED=false
// to run the open variant.
func (Security) AuthRequired() bool {
	switch strings.ToLower(GetEnv(authRequiredEnvVar, "true")) {
	case "false", "0", "no", "off":
		return false
	}
	return true
}
