package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	APIBaseURL  string
	ServerPort  string
	CacheTTL    int
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "vendas.db"),
		RedisURL:    getEnv("REDIS_URL", ""),
		APIBaseURL:  getEnv("API_URL", "http://localhost:5002"),
		ServerPort:  getEnv("SERVER_PORT", "5002"),
		CacheTTL:    getEnvAsInt("CACHE_TTL", 300),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
