package configs

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource      string
	Port          string
	JWTSecret     string
	SessionTTL    time.Duration
	StorageDir    string
	PublicBaseURL string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env (when present) and the process environment. Missing
// values fall back to defaults rather than failing startup.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}

	return &Config{
		DBSource:      getEnv("DB_SOURCE", "lareserve.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		SessionTTL:    time.Duration(24) * time.Hour,
		StorageDir:    getEnv("STORAGE_DIR", "./storage"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
