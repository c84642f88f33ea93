package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	JWTSecretKey           string
	JWTIssuer              string
	AccessTokenTTL         time.Duration
	RefreshTokenTTL        time.Duration
	BcryptCost             int
	RateLimit              int
	RateLimitBackend       string
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		JWTSecretKey:           os.Getenv("JWT_SECRET_KEY"),
		JWTIssuer:              getEnv("JWT_ISSUER", "task-manager"),
		AccessTokenTTL:         time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 24*60)) * time.Minute,
		RefreshTokenTTL:        time.Duration(getEnvAsInt("REFRESH_TOKEN_TTL_MINUTES", 30*24*60)) * time.Minute,
		BcryptCost:             getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitBackend:       getEnv("RATE_LIMIT_BACKEND", RateLimitMemory),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "task_manager:ratelimit"),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	if err := validate(cfg); err != nil {
		log.Fatal(err)
	}
	return cfg
}

func validate(cfg Config) error {
	if cfg.AppURL == "" {
		return fmt.Errorf("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY must be set")
	}
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.RateLimitBackend != RateLimitMemory && cfg.RateLimitBackend != RateLimitRedis {
		return fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q", RateLimitMemory, RateLimitRedis)
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
