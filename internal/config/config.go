// Package config provides application configuration management.
// Settings come from FMP_-prefixed environment variables, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// maxPresignTTL is the longest lifetime S3-compatible stores accept for a
// presigned URL.
const maxPresignTTL = 7 * 24 * time.Hour

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string        `env:"PORT" envDefault:"10000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// Data Configuration
	DataDir      string `env:"DATA_DIR"`      // defaults to a platform-specific directory
	DatabasePath string `env:"DATABASE_PATH"` // overrides DataDir; ":memory:" for an ephemeral store

	Catalog     CatalogConfig     `envPrefix:"CATALOG_"`
	Chat        ChatConfig        `envPrefix:"CHAT_"`
	R2          R2Config          `envPrefix:"R2_"`
	Sentry      SentryConfig      `envPrefix:"SENTRY_"`
	BetterStack BetterStackConfig `envPrefix:"BETTERSTACK_"`
	Metrics     MetricsConfig     `envPrefix:"METRICS_"`
}

// CatalogConfig controls how the professor directory is seeded and refreshed.
type CatalogConfig struct {
	SeedFile       string        `env:"SEED_FILE"`                       // local JSON seed, ".zst" for compressed
	SeedKey        string        `env:"SEED_KEY"`                        // R2 object key of a seed; requires R2
	ReloadInterval time.Duration `env:"RELOAD_INTERVAL" envDefault:"0s"` // 0 disables periodic reload
	MinScore       int           `env:"MIN_SCORE" envDefault:"60"`       // fuzzy name threshold (0-100)
	ReloadBurst    float64       `env:"RELOAD_BURST" envDefault:"3"`     // /reload-data burst
	ReloadRefill   float64       `env:"RELOAD_REFILL" envDefault:"0.05"` // /reload-data tokens per second
}

// ChatConfig holds /chat limits.
type ChatConfig struct {
	RateBurst        float64 `env:"RATE_BURST" envDefault:"15"`           // tokens per session
	RateRefill       float64 `env:"RATE_REFILL" envDefault:"0.5"`         // tokens per second
	RateDaily        int     `env:"RATE_DAILY" envDefault:"0"`            // messages per 24h, 0 disables
	IPRateBurst      float64 `env:"IP_RATE_BURST" envDefault:"60"`        // tokens per client IP
	IPRateRefill     float64 `env:"IP_RATE_REFILL" envDefault:"2"`        // tokens per second
	IPRateDaily      int     `env:"IP_RATE_DAILY" envDefault:"0"`         // messages per 24h, 0 disables
	MaxMessageLength int     `env:"MAX_MESSAGE_LENGTH" envDefault:"2000"` // characters
}

// R2Config holds the object store used for attachment download links and
// remote seeds.
type R2Config struct {
	Enabled         bool          `env:"ENABLED" envDefault:"false"`
	Endpoint        string        `env:"ENDPOINT"`
	AccessKeyID     string        `env:"ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"SECRET_ACCESS_KEY"`
	BucketName      string        `env:"BUCKET_NAME"`
	PresignTTL      time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
}

// SentryConfig holds error tracking settings. Either DSN or Token+Host
// enables reporting.
type SentryConfig struct {
	DSN         string  `env:"DSN"`
	Token       string  `env:"TOKEN"`
	Host        string  `env:"HOST"`
	Environment string  `env:"ENVIRONMENT" envDefault:"production"`
	Release     string  `env:"RELEASE"`
	SampleRate  float64 `env:"SAMPLE_RATE" envDefault:"1.0"`
}

// Enabled reports whether any Sentry destination is configured.
func (c SentryConfig) Enabled() bool {
	return c.DSN != "" || c.Token != ""
}

// BetterStackConfig holds log shipping settings. An empty token disables it.
type BetterStackConfig struct {
	Token     string        `env:"TOKEN"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
	QueueSize int           `env:"QUEUE_SIZE" envDefault:"1024"` // records buffered before shedding
}

// MetricsConfig holds /metrics Basic Auth settings. An empty password
// leaves the endpoint open.
type MetricsConfig struct {
	Username string `env:"USERNAME" envDefault:"prometheus"`
	Password string `env:"PASSWORD"`
}

// AuthEnabled reports whether /metrics requires Basic Auth.
func (c MetricsConfig) AuthEnabled() bool {
	return c.Password != ""
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()
	return load(env.Options{Prefix: EnvPrefix})
}

// LoadFromMap builds a configuration from the given variables instead of
// the process environment. Keys carry the FMP_ prefix.
func LoadFromMap(vars map[string]string) (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = getDefaultDataDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration values and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("%s must be a port number, got %q", EnvPort, c.Port))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("%s must be one of debug, info, warn, error; got %q", EnvLogLevel, c.LogLevel))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if len(c.CORSOrigins) == 0 {
		errs = append(errs, fmt.Errorf("%s must list at least one origin or *", EnvCORSOrigins))
	}
	if c.DataDir == "" && c.DatabasePath == "" {
		errs = append(errs, fmt.Errorf("%s or %s is required", EnvDataDir, EnvDatabasePath))
	}

	errs = append(errs, c.Catalog.validate(c.R2.Enabled)...)
	errs = append(errs, c.Chat.validate()...)
	errs = append(errs, c.R2.validate()...)

	if c.Sentry.Token != "" && c.Sentry.DSN == "" && c.Sentry.Host == "" {
		errs = append(errs, fmt.Errorf("%s is required when %s is set", EnvSentryHost, EnvSentryToken))
	}
	if c.Sentry.SampleRate < 0 || c.Sentry.SampleRate > 1 {
		errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %v", EnvSentrySampleRate, c.Sentry.SampleRate))
	}
	if c.BetterStack.Token != "" && c.BetterStack.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvBetterStackTimeout, c.BetterStack.Timeout))
	}
	if c.BetterStack.Token != "" && c.BetterStack.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvBetterStackQueue, c.BetterStack.QueueSize))
	}

	return errors.Join(errs...)
}

func (c CatalogConfig) validate(r2Enabled bool) []error {
	var errs []error
	if c.ReloadInterval < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %v", EnvCatalogReloadInterval, c.ReloadInterval))
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		errs = append(errs, fmt.Errorf("%s must be between 0 and 100, got %d", EnvCatalogMinScore, c.MinScore))
	}
	if c.ReloadBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvCatalogReloadBurst, c.ReloadBurst))
	}
	if c.ReloadRefill < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %v", EnvCatalogReloadRefill, c.ReloadRefill))
	}
	if c.SeedKey != "" && !r2Enabled {
		errs = append(errs, fmt.Errorf("%s requires %s=true", EnvCatalogSeedKey, EnvR2Enabled))
	}
	if c.SeedKey != "" && c.SeedFile != "" {
		errs = append(errs, fmt.Errorf("%s and %s are mutually exclusive", EnvCatalogSeedFile, EnvCatalogSeedKey))
	}
	return errs
}

func (c ChatConfig) validate() []error {
	var errs []error
	if c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvChatRateBurst, c.RateBurst))
	}
	if c.RateRefill < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %v", EnvChatRateRefill, c.RateRefill))
	}
	if c.RateDaily < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvChatRateDaily, c.RateDaily))
	}
	if c.IPRateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvChatIPRateBurst, c.IPRateBurst))
	}
	if c.IPRateRefill < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %v", EnvChatIPRateRefill, c.IPRateRefill))
	}
	if c.IPRateDaily < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvChatIPRateDaily, c.IPRateDaily))
	}
	if c.MaxMessageLength <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvChatMaxMessageLength, c.MaxMessageLength))
	}
	return errs
}

func (c R2Config) validate() []error {
	if !c.Enabled {
		return nil
	}
	var errs []error
	required := []struct {
		key, value string
	}{
		{EnvR2Endpoint, c.Endpoint},
		{EnvR2AccessKeyID, c.AccessKeyID},
		{EnvR2SecretAccessKey, c.SecretAccessKey},
		{EnvR2BucketName, c.BucketName},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required when %s=true", r.key, EnvR2Enabled))
		}
	}
	if c.PresignTTL < time.Second || c.PresignTTL > maxPresignTTL {
		errs = append(errs, fmt.Errorf("%s must be between 1s and %v, got %v", EnvR2PresignTTL, maxPresignTTL, c.PresignTTL))
	}
	return errs
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

// SQLitePath returns the database location: DatabasePath when set,
// otherwise a file inside DataDir.
func (c *Config) SQLitePath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(c.DataDir, "findmyprof.db")
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
