package config

import (
	"os"
	"strings"
)

const (
	portEnvVar       = "PORT"
	appNameVar       = "APP_NAME"
	uploadsDirEnvVar = "UPLOADS_DIR"
	envVar           = "ENV"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "3000")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Go Gallery Server")
}

func (EnvVars) GetUploadsDir() string {
	return GetEnv(uploadsDirEnvVar, "uploads")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "DEV")
}

// GetEnv returns the value of an environment variable or a fallback if unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
