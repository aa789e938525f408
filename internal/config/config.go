package config

import (
	"fmt"
	"strings"

	"github.com/Lixing-Zhang/platos-api/internal/validation"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes the environment variables read by Load
// Nested keys are separated by a double underscore, e.g. PLATOS_SERVER__PORT
const EnvPrefix = "PLATOS_"

// Config holds all configuration for the application
// Defaults are overridden by environment variables (and an optional .env file)
type Config struct {
	App    AppConfig    `koanf:"app"`
	Server ServerConfig `koanf:"server"`
	CORS   CORSConfig   `koanf:"cors"`
	Log    LogConfig    `koanf:"log"`
}

type AppConfig struct {
	ProjectName string `koanf:"project_name" validate:"required"`
	Version     string `koanf:"version" validate:"required"`
	Description string `koanf:"description"`
	Environment string `koanf:"environment" validate:"required"`
	APIPrefix   string `koanf:"api_prefix" validate:"required,startswith=/"`
}

type ServerConfig struct {
	Port            string `koanf:"port" validate:"required"`
	Host            string `koanf:"host"`
	ReadTimeout     int    `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    int    `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout int    `koanf:"shutdown_timeout" validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" validate:"required,min=1"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		App: AppConfig{
			ProjectName: "FastAPI Project",
			Version:     "0.1.0",
			Description: "API developed with FastAPI",
			Environment: "development",
			APIPrefix:   "/api/v1",
		},
		Server: ServerConfig{
			Port:            "9500",
			Host:            "127.0.0.1",
			ReadTimeout:     15,
			WriteTimeout:    15,
			ShutdownTimeout: 30,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the environment
// A .env file in the working directory is loaded first when present
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFromEnv(EnvPrefix)
}

// LoadFromEnv reads configuration from environment variables with the given prefix
func LoadFromEnv(prefix string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	defaultOrigins := cfg.CORS.AllowedOrigins
	cfg.CORS.AllowedOrigins = nil
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Comma separated lists arrive as a single string
	cfg.CORS.AllowedOrigins = splitList(cfg.CORS.AllowedOrigins)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = defaultOrigins
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.New().Struct(c)
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsDevelopment reports whether the app runs in the development environment
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Environment, "development")
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
