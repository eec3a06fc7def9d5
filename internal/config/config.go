package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// History endpoints are only enabled when Host is set.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"300"`
	ConnectAttempts    uint   `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`
}

// Enabled reports whether a database has been configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// MinIOConfig holds object storage settings for the submission archive.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"compliance-submissions"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`

	// RetentionDays expires archived submissions after this many days; 0 keeps them forever.
	RetentionDays int `env:"MINIO_RETENTION_DAYS" envDefault:"0"`
}

// Enabled reports whether object storage has been configured.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

// CacheConfig selects where evaluated reports are cached.
type CacheConfig struct {
	Backend  string        `env:"CACHE_BACKEND" envDefault:"memory"`
	Size     int           `env:"CACHE_SIZE" envDefault:"512"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	RedisURL string        `env:"REDIS_URL"`
}

// LLMConfig holds settings for the language-model perceiver.
// An empty APIKey disables LLM perception entirely.
type LLMConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY"`
	BaseURL     string        `env:"OPENAI_BASE_URL"`
	Model       string        `env:"COMPLIANCE_MODEL" envDefault:"gpt-4o"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`
	MaxAttempts uint          `env:"LLM_MAX_ATTEMPTS" envDefault:"3"`
	RetryWait   time.Duration `env:"LLM_RETRY_WAIT" envDefault:"2s"`
}

// Enabled reports whether an API key is available.
func (l LLMConfig) Enabled() bool {
	return l.APIKey != ""
}

// EngineConfig tunes how submitted text is split and evaluated.
type EngineConfig struct {
	ChunkSize         int   `env:"CHUNK_SIZE" envDefault:"400"`
	ChunkOverlap      int   `env:"CHUNK_OVERLAP" envDefault:"80"`
	ClassifyChunkSize int   `env:"CLASSIFY_CHUNK_SIZE" envDefault:"200"`
	MaxUploadBytes    int64 `env:"MAX_UPLOAD_BYTES" envDefault:"20971520"`
	Workers           int   `env:"PERCEPTION_WORKERS" envDefault:"4"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string `env:"APP_HOST" envDefault:"localhost:3000"`
	Port      string `env:"PORT" envDefault:"3000"`
	BodyLimit int    `env:"BODY_LIMIT_BYTES" envDefault:"33554432"`
	Timezone  string `env:"TZ_LOCATION" envDefault:"UTC"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Cache     CacheConfig
	LLM       LLMConfig
	Engine    EngineConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *AppConfig) validate() error {
	if c.Engine.ChunkSize <= 0 {
		return fmt.Errorf("invalid config: CHUNK_SIZE must be positive")
	}
	if c.Engine.ChunkOverlap < 0 || c.Engine.ChunkOverlap >= c.Engine.ChunkSize {
		return fmt.Errorf("invalid config: CHUNK_OVERLAP must be in [0, CHUNK_SIZE)")
	}
	if c.Engine.ClassifyChunkSize <= c.Engine.ChunkOverlap {
		return fmt.Errorf("invalid config: CLASSIFY_CHUNK_SIZE must exceed CHUNK_OVERLAP")
	}
	switch c.Cache.Backend {
	case "none", "memory":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("invalid config: REDIS_URL is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("invalid config: unknown CACHE_BACKEND %q", c.Cache.Backend)
	}
	if c.LLM.MaxAttempts == 0 {
		c.LLM.MaxAttempts = 1
	}
	return nil
}
