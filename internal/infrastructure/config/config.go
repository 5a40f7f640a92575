// Package config loads service configuration from the environment. A .env
// file in the working directory is applied first so local development does
// not need exported variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds all configuration for the koperasi core service.
type Config struct {
	// gRPC server port
	GRPCPort int
	// HTTP health/metrics port
	HTTPPort int
	// Service name for observability
	ServiceName string
	// Log settings
	Log LogConfig
	// Storage backend selection and settings
	Storage StorageConfig
	// Kafka configuration
	Kafka KafkaConfig
	// Redis statement cache configuration
	Redis RedisConfig
	// JWT auth configuration
	Auth AuthConfig
	// Optional gRPC TLS
	TLS TLSConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
}

// StorageConfig selects and configures the book store. The postgres backend
// serves the hosted multi-office deployment; sqlite keeps a single office's
// book in one local file.
type StorageConfig struct {
	Backend string
	// Postgres settings, used when Backend is "postgres".
	Postgres PostgresConfig
	// SQLitePath is the database file, used when Backend is "sqlite".
	SQLitePath string
	// MigrationsDir is the postgres migrations source directory.
	MigrationsDir string
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	Brokers []string
}

// RedisConfig holds the statement cache connection settings. An empty Addr
// disables the cache; every reconciliation then recomputes.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds token validation settings. PublicKeyFile selects RS256;
// Secret is the legacy HMAC mode used by single-office installs.
type AuthConfig struct {
	Secret        string
	PublicKeyFile string
	Issuer        string
}

// TLSConfig holds the optional gRPC server certificate.
type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// Enabled reports whether a certificate pair is configured.
func (c TLSConfig) Enabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// Validate collects configuration errors instead of failing on the first,
// so a broken deployment surfaces every missing value at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Storage.Postgres.Password == "" {
			errs = append(errs, errors.New("DB_PASSWORD is required for the postgres backend"))
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q (want %s or %s)",
			c.Storage.Backend, BackendPostgres, BackendSQLite))
	}

	if c.Auth.Secret == "" && c.Auth.PublicKeyFile == "" {
		errs = append(errs, errors.New("JWT_SECRET or JWT_PUBLIC_KEY_FILE is required"))
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together"))
	}

	return errors.Join(errs...)
}

// Load reads configuration from environment variables with defaults. A .env
// file, when present, seeds the environment without overriding it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 8090),
		HTTPPort:    getEnvInt("HTTP_PORT", 9090),
		ServiceName: getEnv("SERVICE_NAME", "koperasi-core"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendPostgres),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnvInt("DB_PORT", 5432),
				User:     getEnv("DB_USER", "koperasi"),
				Password: getEnv("DB_PASSWORD", ""),
				Database: getEnv("DB_NAME", "koperasi_core"),
				SSLMode:  getEnv("DB_SSLMODE", "require"),
				MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
			},
			SQLitePath:    getEnv("SQLITE_PATH", "koperasi.db"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "file://./migrations/postgres"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:        getEnv("JWT_ISSUER", "kspdigital"),
		},
		TLS: TLSConfig{
			CertFile: getEnv("TLS_CERT_FILE", ""),
			KeyFile:  getEnv("TLS_KEY_FILE", ""),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
