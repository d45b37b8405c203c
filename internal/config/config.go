package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	MediaR2     = "r2"
	MediaMinio  = "minio"
	MediaMemory = "memory"
)

type MediaConfig struct {
	Driver          string
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Endpoint        string
	PublicBaseURL   string
	UseSSL          bool
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	FrontendURL  string
}

// Enabled reports whether Google sign-in has credentials configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type Config struct {
	Port             string
	DatabaseURL      string
	StorageDriver    string
	JWTSecret        string
	TokenTTL         time.Duration
	Environment      string
	LogLevel         string
	AllowedOrigins   []string
	MaxUploadBytes   int64
	CleanupInterval  time.Duration
	ReconcileOnStart bool
	Media            MediaConfig
	Google           GoogleConfig
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the optional env file and builds a Config from the environment.
func Load() (Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("No env file found", "file", envFile)
	}

	tokenTTL, err := getDuration("JWT_TTL", time.Hour)
	if err != nil {
		return Config{}, err
	}
	cleanupInterval, err := getDuration("CLEANUP_INTERVAL", time.Minute)
	if err != nil {
		return Config{}, err
	}
	maxUploadMB, err := strconv.ParseInt(getEnv("MAX_UPLOAD_MB", "10"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MAX_UPLOAD_MB: %w", err)
	}

	cfg := Config{
		Port:             getEnv("PORT", "7125"),
		DatabaseURL:      getEnv("DB_URL", ""),
		StorageDriver:    getEnv("STORAGE_DRIVER", StoragePostgres),
		JWTSecret:        getEnv("JWT_SECRET", "not-so-secret-now-is-it?"),
		TokenTTL:         tokenTTL,
		Environment:      getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		MaxUploadBytes:   maxUploadMB << 20,
		CleanupInterval:  cleanupInterval,
		ReconcileOnStart: getEnv("RECONCILE_ON_START", "false") == "true",
		Media: MediaConfig{
			Driver:          getEnv("MEDIA_DRIVER", MediaR2),
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Endpoint:        getEnv("MEDIA_ENDPOINT", ""),
			PublicBaseURL:   getEnv("R2_PUBLIC_BASE_URL", ""),
			UseSSL:          getEnv("MEDIA_USE_SSL", "true") == "true",
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:7125/auth/google/callback"),
			FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DB_URL is required for the %s storage driver", StoragePostgres)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.Media.Driver {
	case MediaR2, MediaMinio:
		if c.Media.BucketName == "" {
			return fmt.Errorf("R2_BUCKET_NAME is required for the %s media driver", c.Media.Driver)
		}
	case MediaMemory:
	default:
		return fmt.Errorf("unknown MEDIA_DRIVER %q", c.Media.Driver)
	}

	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == "not-so-secret-now-is-it?") {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}
}
