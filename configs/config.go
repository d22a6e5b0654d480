package config

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Storage struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	URLExpiry time.Duration
}

type Config struct {
	APIURL          string
	Port            string
	SecretKey       string
	CookieName      string
	SessionTTL      time.Duration
	RequestTimeout  time.Duration
	MaxUploadSize   int
	Location        *time.Location
	ConsoleUser     string
	ConsolePassword string
	Storage         Storage
}

func LoadConfig() *Config {
	return &Config{
		APIURL:          strings.TrimSuffix(getEnv("API_URL", getEnv("NEXT_PUBLIC_API_URL", "http://localhost:8000")), "/"),
		Port:            getEnv("PORT", "3000"),
		SecretKey:       secretKey(getEnv("SECRET_KEY", "")),
		CookieName:      getEnv("COOKIE_NAME", "console_session"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxUploadSize:   getEnvInt("MAX_UPLOAD_MB", 100) * 1024 * 1024,
		Location:        loadLocation(getEnv("CONSOLE_TZ", "Local")),
		ConsoleUser:     getEnv("CONSOLE_USER", ""),
		ConsolePassword: getEnv("CONSOLE_PASSWORD", ""),
		Storage: Storage{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Region:    getEnv("STORAGE_REGION", "us-east-1"),
			URLExpiry: getEnvDuration("STORAGE_URL_EXPIRY", 15*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
		slog.Info("invalid integer in environment, using default", "key", key)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
		slog.Info("invalid duration in environment, using default", "key", key)
	}
	return defaultValue
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Info(err.Error())
		return time.Local
	}
	return loc
}

// secretKey falls back to a per-process random key, so sessions do not
// survive a restart unless SECRET_KEY is set.
func secretKey(value string) string {
	if value != "" {
		return value
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		slog.Error(err.Error())
		return "insecure-development-key"
	}
	slog.Info("SECRET_KEY not set, generated an ephemeral session key")
	return hex.EncodeToString(buf)
}

// StorageEnabled reports whether asset preview links can be signed.
func (c *Config) StorageEnabled() bool {
	return c.Storage.Endpoint != "" && c.Storage.AccessKey != "" && c.Storage.SecretKey != ""
}
