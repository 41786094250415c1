package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTExpiry    time.Duration
	RedisURL     string
	AllowOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			expiry = parsed
		}
	}

	origins := []string{"*"}
	if o := os.Getenv("ALLOW_ORIGINS"); o != "" {
		origins = origins[:0]
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}

	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=petcare port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:    expiry,
		RedisURL:     getEnv("REDIS_URL", ""),
		AllowOrigins: origins,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
