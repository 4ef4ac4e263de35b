package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Cache    CacheConfig
	Storage  StorageConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	BodyLimit       string   `envconfig:"BODY_LIMIT" default:"10M"`
}

// AnalysisConfig holds scoring and import settings
type AnalysisConfig struct {
	// Delay is the simulated latency of a single-meeting analysis
	Delay        time.Duration `envconfig:"ANALYSIS_DELAY" default:"1500ms"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	MaxCSVBytes  int64         `envconfig:"MAX_CSV_BYTES" default:"5242880"`
	QuotedCSV    bool          `envconfig:"QUOTED_CSV" default:"false"`
	DemoCSVURL   string        `envconfig:"DEMO_CSV_URL" default:"https://hebbkx1anhila5yf.public.blob.vercel-storage.com/week%202%20-%20Problem_2_-_Meeting_Usefulness_Tracker-srByCZmZhhR7THY7uLMHOGDmJ1ULle.csv"`
	ResultTTL    time.Duration `envconfig:"RESULT_TTL" default:"1h"`
}

// CacheConfig selects where batch results are kept for export
type CacheConfig struct {
	Driver        string `envconfig:"CACHE_DRIVER" default:"memory"` // "memory" or "redis"
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds object storage configuration for published exports
type StorageConfig struct {
	Enabled         bool          `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"meeting-scorecard"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string        `envconfig:"STORAGE_PUBLIC_URL"`
	LinkExpiry      time.Duration `envconfig:"STORAGE_LINK_EXPIRY" default:"24h"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"` // "json" or "console"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv populates a Config from the process environment without reading .env
func FromEnv() (*Config, error) {
	var cfg Config
	sections := []struct {
		name   string
		target interface{}
	}{
		{"server", &cfg.Server},
		{"analysis", &cfg.Analysis},
		{"cache", &cfg.Cache},
		{"storage", &cfg.Storage},
		{"log", &cfg.Log},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s configuration: %w", s.name, err)
		}
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Cache.Driver) {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_DRIVER must be memory or redis, got %q", c.Cache.Driver)
	}
	if c.Analysis.Delay < 0 {
		return fmt.Errorf("ANALYSIS_DELAY must not be negative")
	}
	if c.Analysis.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}
	if c.Analysis.MaxCSVBytes <= 0 {
		return fmt.Errorf("MAX_CSV_BYTES must be positive")
	}
	if c.Analysis.ResultTTL <= 0 {
		return fmt.Errorf("RESULT_TTL must be positive")
	}
	if c.Storage.Enabled {
		if c.Storage.Endpoint == "" {
			return fmt.Errorf("STORAGE_ENDPOINT is required when STORAGE_ENABLED is true")
		}
		if c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_ENABLED is true")
		}
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Cache.RedisHost, c.Cache.RedisPort)
}

// GetServerAddr returns the address the HTTP server listens on
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
