package auth

import "errors"

var (
	InvalidCredentialsErr = errors.New("invalid credentials")
	UnauthenticatedErr    = errors.New("authentication required")
)
