package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/AlibekovAA/exercise-tracker/internal/common/constants"
)

var (
	ErrMissingRequiredEnv = errors.New("missing required environment variable")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTPPort           string
	StorageDriver      string
	DatabaseURL        string
	RequestTimeout     time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
}

func Load() (Config, error) {
	driver := getEnv("STORAGE_DRIVER", constants.DefaultStorageDriver)
	if driver != DriverMemory && driver != DriverPostgres {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	var databaseURL string
	if driver == DriverPostgres {
		v, err := mustEnv("DATABASE_URL")
		if err != nil {
			return Config{}, err
		}
		databaseURL = v
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		StorageDriver:      driver,
		DatabaseURL:        databaseURL,
		RequestTimeout:     getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		RateLimitPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", constants.DefaultRateLimitPerSecond),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", constants.DefaultRateLimitBurst),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getFloatEnv(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
