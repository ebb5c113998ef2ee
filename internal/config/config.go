// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config loads application configuration from defaults, an
// optional config file named by GENIEWP_CONFIG and the environment
// (highest precedence). It provides a centralized Config struct used
// across the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// FileEnvVar names the environment variable holding an optional config
// file path (YAML, TOML or JSON, by extension).
const FileEnvVar = "GENIEWP_CONFIG"

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const defaultDBPassword = "changeme"

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// StoreDriver selects where settings and theme records live.
	StoreDriver string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible) for sessions and guided values. An empty
	// host keeps both in memory.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI provider settings. AIAPIKey only seeds the stored key.
	AIProvider     string
	AIAPIKey       string
	AITimeout      time.Duration
	OpenAIModel    string
	OpenAIBaseURL  string
	MistralModel   string
	MistralBaseURL string
	GeminiModel    string
	GeminiBaseURL  string

	// Assistants API used by the guided onboarding.
	AssistantsBaseURL  string
	AssistantDefaultID string

	// Filesystem locations.
	ThemesDir    string
	TemplatesDir string

	// HTTP surface.
	APINamespace   string
	AdminURL       string
	RateLimit      int
	RateLimitEvery time.Duration

	// Single administrator account.
	AdminEmail        string
	AdminPasswordHash string
	AdminTOTPSecret   string

	// S3-compatible storage for theme archives (optional).
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORE_DRIVER", DriverPostgres)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "geniewp")
	v.SetDefault("POSTGRES_PASSWORD", defaultDBPassword)
	v.SetDefault("POSTGRES_DB", "geniewp")

	v.SetDefault("VALKEY_HOST", "localhost")
	v.SetDefault("VALKEY_PORT", "6379")
	v.SetDefault("VALKEY_PASSWORD", "")

	v.SetDefault("AI_PROVIDER", "openai")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_TIMEOUT", 30*time.Second)
	v.SetDefault("OPENAI_MODEL", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("MISTRAL_MODEL", "")
	v.SetDefault("MISTRAL_BASE_URL", "")
	v.SetDefault("GEMINI_MODEL", "")
	v.SetDefault("GEMINI_BASE_URL", "")

	v.SetDefault("ASSISTANTS_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("ASSISTANT_DEFAULT_ID", "")

	v.SetDefault("THEMES_DIR", "./data/themes")
	v.SetDefault("TEMPLATES_DIR", "./templates")

	v.SetDefault("API_NAMESPACE", "quickwp")
	v.SetDefault("ADMIN_URL", "http://localhost/wp-admin")
	v.SetDefault("RATE_LIMIT", 30)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	v.SetDefault("ADMIN_EMAIL", "admin@localhost")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("ADMIN_TOTP_SECRET", "")

	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_PUBLIC_URL", "")
}

// Load reads the configuration. Returns an error if the config file cannot
// be read or if critical values are unsafe in production mode.
func Load() (*Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	if file := os.Getenv(FileEnvVar); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		Host:        v.GetString("APP_HOST"),
		Port:        v.GetString("APP_PORT"),
		Env:         v.GetString("APP_ENV"),
		StoreDriver: v.GetString("STORE_DRIVER"),

		DBHost:     v.GetString("POSTGRES_HOST"),
		DBPort:     v.GetString("POSTGRES_PORT"),
		DBUser:     v.GetString("POSTGRES_USER"),
		DBPassword: v.GetString("POSTGRES_PASSWORD"),
		DBName:     v.GetString("POSTGRES_DB"),

		ValkeyHost:     v.GetString("VALKEY_HOST"),
		ValkeyPort:     v.GetString("VALKEY_PORT"),
		ValkeyPassword: v.GetString("VALKEY_PASSWORD"),

		AIProvider:     v.GetString("AI_PROVIDER"),
		AIAPIKey:       v.GetString("AI_API_KEY"),
		AITimeout:      v.GetDuration("AI_TIMEOUT"),
		OpenAIModel:    v.GetString("OPENAI_MODEL"),
		OpenAIBaseURL:  v.GetString("OPENAI_BASE_URL"),
		MistralModel:   v.GetString("MISTRAL_MODEL"),
		MistralBaseURL: v.GetString("MISTRAL_BASE_URL"),
		GeminiModel:    v.GetString("GEMINI_MODEL"),
		GeminiBaseURL:  v.GetString("GEMINI_BASE_URL"),

		AssistantsBaseURL:  v.GetString("ASSISTANTS_BASE_URL"),
		AssistantDefaultID: v.GetString("ASSISTANT_DEFAULT_ID"),

		ThemesDir:    v.GetString("THEMES_DIR"),
		TemplatesDir: v.GetString("TEMPLATES_DIR"),

		APINamespace:   v.GetString("API_NAMESPACE"),
		AdminURL:       v.GetString("ADMIN_URL"),
		RateLimit:      v.GetInt("RATE_LIMIT"),
		RateLimitEvery: v.GetDuration("RATE_LIMIT_WINDOW"),

		AdminEmail:        v.GetString("ADMIN_EMAIL"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		AdminTOTPSecret:   v.GetString("ADMIN_TOTP_SECRET"),

		S3Endpoint:  v.GetString("S3_ENDPOINT"),
		S3Region:    v.GetString("S3_REGION"),
		S3AccessKey: v.GetString("S3_ACCESS_KEY"),
		S3SecretKey: v.GetString("S3_SECRET_KEY"),
		S3Bucket:    v.GetString("S3_BUCKET"),
		S3PublicURL: v.GetString("S3_PUBLIC_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.StoreDriver != DriverPostgres && c.StoreDriver != DriverMemory {
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.StoreDriver)
	}
	if c.RateLimit <= 0 {
		return errors.New("RATE_LIMIT must be positive")
	}

	if c.IsProduction() {
		if c.StoreDriver == DriverPostgres && c.DBPassword == defaultDBPassword {
			return errors.New("POSTGRES_PASSWORD must be set in production")
		}
		if c.AdminPasswordHash == "" {
			return errors.New("ADMIN_PASSWORD_HASH must be set in production")
		}
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction reports whether the application runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
