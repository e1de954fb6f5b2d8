package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	CatalogSource   string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	CartTTL         time.Duration
	JWTSecret       string
	JWTExpiry       time.Duration
	SearchDebounce  time.Duration
	FeaturedLimit   int
	SuggestionLimit int
	OriginURL       string
}

const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

var AppConfig = DefaultConfig()

// DefaultConfig returns the settings used when no environment is present.
func DefaultConfig() *Config {
	return &Config{
		AppEnv:          "development",
		Port:            "8082",
		DBHost:          "localhost",
		DBPort:          "5454",
		DBUser:          "postgres",
		DBPassword:      "postgres",
		DBName:          "dukicks",
		DBSSLMode:       "disable",
		CatalogSource:   CatalogStatic,
		RedisAddr:       "localhost:6379",
		CartTTL:         7 * 24 * time.Hour,
		JWTSecret:       "secret",
		JWTExpiry:       24 * time.Hour,
		SearchDebounce:  200 * time.Millisecond,
		FeaturedLimit:   4,
		SuggestionLimit: 5,
	}
}

// Setup reads .env, starts the logger for APP_ENV and then loads the
// configuration, so warnings about bad values reach the real logger.
func Setup() error {
	envErr := godotenv.Load()
	if err := InitLogger(getEnv("APP_ENV", DefaultConfig().AppEnv)); err != nil {
		return err
	}
	if envErr != nil {
		Log.Info("no .env file found, using system environment variables")
	}
	LoadConfig()
	return nil
}

// LoadConfig fills AppConfig from the environment. Invalid values fall back
// to their defaults with a warning on Log.
func LoadConfig() {
	def := DefaultConfig()
	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", def.AppEnv),
		Port:            getEnv("APP_PORT", getEnv("PORT", def.Port)),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          getEnv("DB_HOST", def.DBHost),
		DBPort:          getEnv("DB_PORT", def.DBPort),
		DBUser:          getEnv("DB_USER", def.DBUser),
		DBPassword:      getEnv("DB_PASSWORD", def.DBPassword),
		DBName:          getEnv("DB_NAME", def.DBName),
		DBSSLMode:       getEnv("DB_SSLMODE", def.DBSSLMode),
		CatalogSource:   getEnv("CATALOG_SOURCE", def.CatalogSource),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", def.RedisAddr),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CartTTL:         getDuration("CART_TTL", def.CartTTL),
		JWTSecret:       getEnv("JWT_SECRET", def.JWTSecret),
		JWTExpiry:       getDuration("JWT_EXPIRY", def.JWTExpiry),
		SearchDebounce:  getDuration("SEARCH_DEBOUNCE", def.SearchDebounce),
		FeaturedLimit:   getInt("FEATURED_LIMIT", def.FeaturedLimit),
		SuggestionLimit: getInt("SUGGESTION_LIMIT", def.SuggestionLimit),
		OriginURL:       os.Getenv("ORIGIN_URL"),
	}

	Log.Info("configuration loaded",
		zap.String("env", AppConfig.AppEnv),
		zap.String("port", AppConfig.Port),
		zap.String("catalog_source", AppConfig.CatalogSource))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		Log.Warn("invalid duration, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Duration("default", defaultValue))
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		Log.Warn("invalid integer, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Int("default", defaultValue))
		return defaultValue
	}
	return n
}
