package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	DBDriver     string
	MySQLDSN     string
	SQLitePath   string
	LogLevel     string
	MaxOpenConns int
	MaxIdleConns int
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		MySQLDSN:     getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/dishpatch?charset=utf8mb4&parseTime=True&loc=Local"),
		SQLitePath:   getEnv("SQLITE_PATH", "dishpatch.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
