package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Demo sandbox. Threaded explicitly through constructors so tests
	// can exercise both modes without touching process state.
	DemoMode    bool
	DemoUserTTL time.Duration

	AdminUsername string
	AdminPassword string

	// Comma-separated allowed CORS origins; "*" allows all.
	CORSOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading from environment")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "restaurant.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		AccessTTL:     getEnvDuration("JWT_ACCESS_TTL_MINUTES", 60) * time.Minute,
		RefreshTTL:    getEnvDuration("JWT_REFRESH_TTL_MINUTES", 24*60) * time.Minute,
		DemoMode:      getEnvBool("DEMO_MODE", false),
		DemoUserTTL:   getEnvDuration("DEMO_USER_TTL_HOURS", 12) * time.Hour,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		CORSOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback int64) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
