package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds the signing secret and token lifetime for API auth.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT settings from the environment: JWT_SECRET
// (required) and JWT_EXPIRATION_HOURS (default 24). The server treats a
// missing secret as "auth disabled", so the error here is a signal, not
// a fatal condition.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationHours := 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		expirationHours = parsed
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}
