// Package config loads settings for the matcher server and CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MATCHER_PORT.
const EnvPrefix = "MATCHER"

// Config is the merged configuration from defaults, an optional file and the
// environment (highest precedence).
type Config struct {
	Port           int      `mapstructure:"port"`
	DatabaseURL    string   `mapstructure:"database_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	JWTSecret              string `mapstructure:"jwt_secret"`
	JWTExpirationHours     int    `mapstructure:"jwt_expiration_hours"`
	RefreshExpirationHours int    `mapstructure:"refresh_expiration_hours"`
	BcryptCost             int    `mapstructure:"bcrypt_cost"`
	PasswordPepper         string `mapstructure:"password_pepper"`

	MaxUploadBytes  int64 `mapstructure:"max_upload_bytes"`
	MinTextLength   int   `mapstructure:"min_text_length"`
	RankConcurrency int   `mapstructure:"rank_concurrency"`
	UseBrowser      bool  `mapstructure:"use_browser"`

	HistoryPath string `mapstructure:"history_path"`
}

// legacyEnv maps config keys to the unprefixed variable names that existing
// deployments already set.
var legacyEnv = map[string]string{
	"port":                 "PORT",
	"database_url":         "DATABASE_URL",
	"jwt_secret":           "JWT_SECRET",
	"jwt_expiration_hours": "JWT_EXPIRATION_HOURS",
	"bcrypt_cost":          "BCRYPT_COST",
	"password_pepper":      "PASSWORD_PEPPER",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("database_url", "")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_expiration_hours", 24)
	v.SetDefault("refresh_expiration_hours", 24*7)
	v.SetDefault("bcrypt_cost", 12)
	v.SetDefault("password_pepper", "")
	v.SetDefault("max_upload_bytes", 5<<20)
	v.SetDefault("min_text_length", 10)
	v.SetDefault("rank_concurrency", 4)
	v.SetDefault("use_browser", false)
	v.SetDefault("history_path", "match_history.db")
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key), legacy); err != nil {
			return nil, fmt.Errorf("binding %s environment variable: %w", legacy, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Secrets are checked when the server builds its auth services, since the
// CLI scoring commands do not need them.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.JWTExpirationHours < 1 {
		return fmt.Errorf("config error: 'jwt_expiration_hours' must be at least 1, got %d", c.JWTExpirationHours)
	}
	if c.RefreshExpirationHours < c.JWTExpirationHours {
		return fmt.Errorf("config error: 'refresh_expiration_hours' must not be shorter than 'jwt_expiration_hours'")
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("config error: 'bcrypt_cost' out of range: %d (must be 10-14)", c.BcryptCost)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be positive")
	}
	if c.MinTextLength < 1 {
		return fmt.Errorf("config error: 'min_text_length' must be at least 1")
	}
	if c.RankConcurrency < 1 {
		return fmt.Errorf("config error: 'rank_concurrency' must be at least 1")
	}
	return nil
}

// JWT builds the token settings from the loaded configuration.
func (c *Config) JWT() (*JWTConfig, error) {
	return NewJWTConfig(c.JWTSecret, c.JWTExpirationHours, c.RefreshExpirationHours)
}

// Password builds the hashing settings from the loaded configuration.
func (c *Config) Password() (*PasswordConfig, error) {
	return NewPasswordConfig(c.BcryptCost, c.PasswordPepper)
}
