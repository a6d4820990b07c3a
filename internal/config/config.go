package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the placeholder used when SESSION_SECRET is unset.
const DefaultSessionSecret = "change-me"

// ErrDefaultSessionSecret is returned by Validate when sessions would be signed
// with the placeholder secret outside development.
var ErrDefaultSessionSecret = errors.New("SESSION_SECRET must be set outside development")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	Environment string
	SwaggerHost string

	DBDriver       string
	DatabaseDSN    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnLifetime time.Duration
	ResetDB        bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionSecret          string
	SessionTTL             time.Duration
	SessionCookie          string
	CookieSecure           bool
	AllowAdminRegistration bool

	ImageStore string
	UploadDir  string
	GCSBucket  string

	SendGridAPIKey  string
	NotifyFromEmail string
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "production"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),

		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/machinehub?charset=utf8mb4&parseTime=True&loc=Local"),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE", 5),
		DBConnLifetime: getEnvDuration("DB_MAX_LIFETIME", 30*time.Minute),
		ResetDB:        getEnvBool("RESET_DB", false),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		SessionSecret:          getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:             getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionCookie:          getEnv("SESSION_COOKIE", "machinehub_session"),
		CookieSecure:           getEnvBool("COOKIE_SECURE", false),
		AllowAdminRegistration: getEnvBool("ALLOW_ADMIN_REGISTRATION", false),

		ImageStore: getEnv("IMAGE_STORE", "local"),
		UploadDir:  getEnv("UPLOAD_DIR", "static/uploads"),
		GCSBucket:  os.Getenv("GCS_BUCKET"),

		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		NotifyFromEmail: getEnv("NOTIFY_FROM_EMAIL", "noreply@machinehub.local"),
	}
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Validate rejects settings the server must not start with.
func (c *Config) Validate() error {
	if c.SessionSecret == DefaultSessionSecret && !c.IsDevelopment() {
		return ErrDefaultSessionSecret
	}
	return nil
}

// UsesDefaultSecret reports whether sessions are signed with the placeholder secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
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

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
