package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddress         = ":9090"
	defaultContextTimeout  = 30 * time.Second
	defaultTokenTTL        = 7 * 24 * time.Hour
	defaultRateLimitWindow = 15 * time.Minute
	defaultRateLimitMax    = 100
	defaultCacheDB         = 0
)

// Config is the single immutable configuration value built once at process
// start and passed explicitly to the components that need it.
type Config struct {
	Address        string        `validate:"required"`
	DatabaseDSN    string        `validate:"required"`
	CacheAddr      string        `validate:"required"`
	CachePassword  string
	CacheDB        int
	JWTSecret      string        `validate:"required"`
	TokenTTL       time.Duration `validate:"required"`
	ContextTimeout time.Duration `validate:"required"`

	RateLimitWindow time.Duration `validate:"required"`
	RateLimitMax    int64         `validate:"required,min=1"`
}

// Load reads .env when present, assembles the config from the environment
// and validates it. Missing required values fail the process at startup.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading config from environment")
	}

	cfg := Config{
		Address:         getEnv("SERVER_ADDRESS", defaultAddress),
		DatabaseDSN:     buildDSN(),
		CacheAddr:       os.Getenv("CACHE_HOST") + ":" + os.Getenv("CACHE_PORT"),
		CachePassword:   os.Getenv("CACHE_PASS"),
		CacheDB:         getEnvInt("CACHE_DB", defaultCacheDB),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        getEnvDuration("JWT_EXPIRE_HOURS", time.Hour, defaultTokenTTL),
		ContextTimeout:  getEnvDuration("CONTEXT_TIMEOUT", time.Second, defaultContextTimeout),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW_SECONDS", time.Second, defaultRateLimitWindow),
		RateLimitMax:    int64(getEnvInt("RATE_LIMIT_MAX_REQUESTS", defaultRateLimitMax)),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func buildDSN() string {
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbName := os.Getenv("DATABASE_NAME")
	if dbHost == "" || dbName == "" {
		return ""
	}

	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, unit, fallback time.Duration) time.Duration {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * unit
}
