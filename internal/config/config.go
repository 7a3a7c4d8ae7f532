package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/volunteerhub-dev/volunteerhub/internal/types"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`

	JWTSecret string `yaml:"jwt_secret"`
	// TokenExpirationWeeks is the lifetime of issued access tokens.
	TokenExpirationWeeks int    `yaml:"token_expiration_weeks"`
	Domain               string `yaml:"domain"`

	ClientURL      string   `yaml:"client_url"`
	ExtraOrigins   []string `yaml:"allowed_origins"`
	AllowedOrigins []string `yaml:"-"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	UploadDir       string `yaml:"upload_dir"`
	UploadURLPrefix string `yaml:"upload_url_prefix"`

	RateLimitRPS   int `yaml:"rate_limit_rps"`
	RateLimitBurst int `yaml:"rate_limit_burst"`

	// AutoMigrate migrates the schema when the server starts.
	AutoMigrate bool `yaml:"auto_migrate"`
}

func Default() *Config {
	return &Config{
		Port:                 "3000",
		TokenExpirationWeeks: 1,
		LogLevel:             "info",
		UploadDir:            "./uploads",
		UploadURLPrefix:      "/uploads",
		RateLimitRPS:         5,
		RateLimitBurst:       10,
		AutoMigrate:          true,
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path, a .env file if one exists, and finally the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = types.AllowedOrigins(cfg.ClientURL, strings.Join(cfg.ExtraOrigins, ","))

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("PORT", &c.Port)
	str("DATABASE_URL", &c.DatabaseURL)
	str("JWT_SECRET", &c.JWTSecret)
	str("DOMAIN", &c.Domain)
	str("CLIENT_URL", &c.ClientURL)
	str("LOG_LEVEL", &c.LogLevel)
	str("UPLOAD_DIR", &c.UploadDir)
	str("UPLOAD_URL_PREFIX", &c.UploadURLPrefix)

	if v, ok := lookup("ALLOWED_ORIGINS"); ok && v != "" {
		c.ExtraOrigins = append(c.ExtraOrigins, strings.Split(v, ",")...)
	}

	for key, dst := range map[string]*bool{
		"LOG_JSON":     &c.LogJSON,
		"AUTO_MIGRATE": &c.AutoMigrate,
	} {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s must be a boolean: %w", key, err)
			}
			*dst = b
		}
	}

	for key, dst := range map[string]*int{
		"TOKEN_EXPIRATION": &c.TokenExpirationWeeks,
		"RATE_LIMIT_RPS":   &c.RateLimitRPS,
		"RATE_LIMIT_BURST": &c.RateLimitBurst,
	} {
		if err := integer(key, dst); err != nil {
			return err
		}
	}

	return nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if c.TokenExpirationWeeks < 1 {
		return fmt.Errorf("TOKEN_EXPIRATION must be at least 1 week")
	}
	return nil
}
