package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

type IDStrategy string

const (
	// IDStrategyMax hands out one past the highest tracking ID in use.
	IDStrategyMax IDStrategy = "max"
	// IDStrategyCount hands out collection size plus one.
	IDStrategyCount IDStrategy = "count"
)

type Config struct {
	Backend    Backend
	StorageKey string
	StorageDir string
	SQLitePath string
	Strict     bool
	IDStrategy IDStrategy

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int

	GRPCAddr string
	HTTPAddr string

	KafkaBroker string
	KafkaTopic  string

	LogLevel string
}

// Load reads an optional .env file and then the environment. The returned
// error reports a malformed value; a missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Backend:       Backend(strings.ToLower(getenv("STORAGE_BACKEND", string(BackendFile)))),
		StorageKey:    getenv("STORAGE_KEY", "shipments"),
		StorageDir:    getenv("STORAGE_DIR", "data"),
		SQLitePath:    getenv("SQLITE_PATH", "data/shipments.db"),
		IDStrategy:    IDStrategy(strings.ToLower(getenv("ID_STRATEGY", string(IDStrategyMax)))),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		GRPCAddr:      getenv("GRPC_ADDR", ":50051"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "shipment-events"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("STORAGE_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("STORAGE_STRICT: %w", err)
		}
		cfg.Strict = strict
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Backend)
	}
	switch c.IDStrategy {
	case IDStrategyMax, IDStrategyCount:
	default:
		return fmt.Errorf("unknown ID_STRATEGY %q", c.IDStrategy)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("STORAGE_KEY must not be empty")
	}
	return nil
}

// GetDBURL formats the config into a PostgreSQL connection string.
func (c *Config) GetDBURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
