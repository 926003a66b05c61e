package config

import (
	"fmt"
	"os"
	"strconv"
)

// Settings holds every environment-driven knob, read once at startup.
type Settings struct {
	AppEnv string
	Port   string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	CacheBackend  string // "memory" (default) or "redis"

	JWTSecret            string
	AccessTokenMinutes   int
	RefreshTokenDays     int

	AeroDataBoxBaseURL string
	AeroDataBoxAPIKey  string
	AeroDataBoxHost    string

	OpenFoodFactsBaseURL string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StoragePublicURL string
	StorageUseSSL    bool
}

// Load reads all settings from the environment, applying defaults where sane.
func Load() *Settings {
	return &Settings{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     getEnv("PG_USER", "postgres"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDatabase: getEnv("PG_DB", "centro_control"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),

		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenDays:   getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 30),

		AeroDataBoxBaseURL: getEnv("AERODATABOX_BASE_URL", "https://aerodatabox.p.rapidapi.com"),
		AeroDataBoxAPIKey:  os.Getenv("AERODATABOX_API_KEY"),
		AeroDataBoxHost:    getEnv("AERODATABOX_HOST", "aerodatabox.p.rapidapi.com"),

		OpenFoodFactsBaseURL: getEnv("OFF_BASE_URL", "https://world.openfoodfacts.org"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "centro-control"),
		StoragePublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
		StorageUseSSL:    getEnvBool("STORAGE_USE_SSL", true),
	}
}

// PostgresDSN builds the connection string shared by sqlx and GORM.
func (s *Settings) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		s.PGUser, s.PGPassword, s.PGHost, s.PGPort, s.PGDatabase)
}

func (s *Settings) RedisAddr() string {
	return fmt.Sprintf("%s:%s", s.RedisHost, s.RedisPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
