package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Server    ServerConfig
	Embedding EmbeddingConfig
	Matching  MatchingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// RedisConfig holds the optional embedding-cache configuration.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// EmbeddingConfig selects and configures the embedding backend. Exactly one
// backend runs per deployment; vectors from different backends never share an
// index.
type EmbeddingConfig struct {
	Backend   string // "openai" or "local"
	Dimension int
	APIBase   string
	APIKey    string
	Model     string
	Timeout   time.Duration
	// Cron spec for the pass that retries records left without a vector.
	ReembedSchedule string
}

// MatchingConfig holds scoring and batch-run configuration.
type MatchingConfig struct {
	Workers       int
	ShortlistSize int
	MinScore      float64
	MaxResults    int
	// Optional YAML file overriding the built-in weight profiles.
	ProfilesFile string
	// Cron spec for a periodic rescore of recent jobs. Empty disables it.
	RescoreSchedule string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			CacheTTL: getEnvAsDuration("EMBED_CACHE_TTL", 7*24*time.Hour),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Embedding: EmbeddingConfig{
			Backend:         getEnv("EMBEDDING_BACKEND", "local"),
			Dimension:       getEnvAsInt("EMBEDDING_DIMENSION", 1536),
			APIBase:         getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			Model:           getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			Timeout:         getEnvAsDuration("EMBEDDING_TIMEOUT", 30*time.Second),
			ReembedSchedule: getEnv("REEMBED_SCHEDULE", "@every 1h"),
		},
		Matching: MatchingConfig{
			Workers:         getEnvAsInt("MATCH_WORKERS", 4),
			ShortlistSize:   getEnvAsInt("MATCH_SHORTLIST_SIZE", 100),
			MinScore:        getEnvAsFloat64("MATCH_MIN_SCORE", 0.5),
			MaxResults:      getEnvAsInt("MATCH_MAX_RESULTS", 10),
			ProfilesFile:    getEnv("WEIGHT_PROFILES_FILE", ""),
			RescoreSchedule: getEnv("MATCH_RESCORE_SCHEDULE", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	switch c.Embedding.Backend {
	case "openai":
		if c.Embedding.APIKey == "" {
			return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required for the openai backend", ErrInvalidInput)
		}
	case "local":
	default:
		return NewAppError("CONFIG_ERROR", "EMBEDDING_BACKEND must be openai or local", ErrInvalidInput)
	}
	if c.Embedding.Dimension <= 0 {
		return NewAppError("CONFIG_ERROR", "EMBEDDING_DIMENSION must be positive", ErrInvalidInput)
	}
	return nil
}
