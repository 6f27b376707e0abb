package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port      string
	DBPath    string
	RoundTime int // seconds per question
}

func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "guitarmaster.db"),
		RoundTime: getEnvInt("ROUND_TIME", 10),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
