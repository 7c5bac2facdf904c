package config

import "fmt"

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret                 string
	ExpirationHours        int
	RefreshExpirationHours int
}

// NewJWTConfig validates and returns token settings.
func NewJWTConfig(secret string, expirationHours, refreshExpirationHours int) (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:                 secret,
		ExpirationHours:        expirationHours,
		RefreshExpirationHours: refreshExpirationHours,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration and fills the refresh default.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.RefreshExpirationHours == 0 {
		c.RefreshExpirationHours = c.ExpirationHours * 7
	}
	if c.RefreshExpirationHours < c.ExpirationHours {
		return fmt.Errorf("refresh token lifetime (%dh) is shorter than access token lifetime (%dh)",
			c.RefreshExpirationHours, c.ExpirationHours)
	}
	return nil
}
