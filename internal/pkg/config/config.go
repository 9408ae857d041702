package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Site      SiteConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type CacheConfig struct {
	ListTTL time.Duration `envconfig:"CACHE_LIST_TTL" default:"60s"`
}

type RateLimitConfig struct {
	ClickWindow    time.Duration `envconfig:"RATE_CLICK_WINDOW" default:"60s"`
	ClickThreshold int           `envconfig:"RATE_CLICK_THRESHOLD" default:"12"`
	TableCapacity  int           `envconfig:"RATE_TABLE_CAPACITY" default:"10000"`
	EntryTTL       time.Duration `envconfig:"RATE_ENTRY_TTL" default:"5m"`
	SubscribeRPS   float64       `envconfig:"RATE_SUBSCRIBE_RPS" default:"1"`
	SubscribeBurst int           `envconfig:"RATE_SUBSCRIBE_BURST" default:"10"`
}

type SiteConfig struct {
	// CanonicalOrigin prefixes site-relative pagination links when set
	// (e.g. "https://www.example.com").
	CanonicalOrigin string `envconfig:"SITE_CANONICAL_ORIGIN" default:""`
	// ExternalAPIBase, when set, rewrites pagination link targets to the
	// public API host while preserving path and query.
	ExternalAPIBase string `envconfig:"SITE_EXTERNAL_API_BASE" default:""`
	DefaultLimit    int    `envconfig:"SITE_DEFAULT_LIMIT" default:"20"`
	MaxLimit        int    `envconfig:"SITE_MAX_LIMIT" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Cache: CacheConfig{
			ListTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{
			ClickWindow:    time.Minute,
			ClickThreshold: 12,
			TableCapacity:  1000,
			EntryTTL:       5 * time.Minute,
			SubscribeRPS:   1,
			SubscribeBurst: 10,
		},
		Site: SiteConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
		},
	}
}
