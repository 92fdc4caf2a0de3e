package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "galbi-dev-secret"

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// S3Config points at an S3 compatible bucket (AWS, Cloudflare R2, MinIO).
type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	UsePathStyle    bool
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	SQLitePath    string
	JWTSecret     string
	TokenTTL      time.Duration
	CookieSecure  bool
	PublicBaseURL string

	FreeGenerations   int
	PremiumPriceCents int
	PaymentCurrency   string

	StorageDriver         string
	UploadDir             string
	GeneratedDir          string
	MaxUploadBytes        int64
	PersistGeneratedFiles bool
	S3                    S3Config

	Email EmailConfig

	CORSOrigins     string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	var errs []string

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", ":memory:"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),

		PaymentCurrency: strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageLocal)),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		GeneratedDir:  getEnv("GENERATED_DIR", "generated"),

		S3: S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			Region:          getEnv("S3_REGION", "auto"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			Bucket:          os.Getenv("S3_BUCKET"),
			PublicURL:       strings.TrimRight(os.Getenv("S3_PUBLIC_URL"), "/"),
		},

		Email: EmailConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			FromAddress:  getEnv("EMAIL_FROM_ADDRESS", "noreply@galbi.local"),
			FromName:     getEnv("EMAIL_FROM_NAME", "Galbi"),
		},

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}

	ttlHours := getInt("TOKEN_TTL_HOURS", 168, &errs)
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour
	cfg.CookieSecure = getBool("COOKIE_SECURE", false, &errs)
	cfg.FreeGenerations = getInt("FREE_GENERATIONS", 2, &errs)
	cfg.PremiumPriceCents = getInt("PREMIUM_PRICE_CENTS", 999, &errs)
	cfg.MaxUploadBytes = int64(getInt("MAX_UPLOAD_MB", 10, &errs)) << 20
	cfg.PersistGeneratedFiles = getBool("PERSIST_GENERATED_FILES", false, &errs)
	cfg.S3.UsePathStyle = getBool("S3_USE_PATH_STYLE", false, &errs)
	cfg.RateLimitMax = getInt("RATE_LIMIT_MAX", 60, &errs)
	cfg.RateLimitWindow = time.Duration(getInt("RATE_LIMIT_WINDOW_SECONDS", 60, &errs)) * time.Second

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			errs = append(errs, "JWT_SECRET is required")
		} else {
			cfg.JWTSecret = devJWTSecret
		}
	}
	if cfg.FreeGenerations < 0 {
		errs = append(errs, "FREE_GENERATIONS must not be negative")
	}
	if cfg.PremiumPriceCents <= 0 {
		errs = append(errs, "PREMIUM_PRICE_CENTS must be positive")
	}

	switch cfg.StorageDriver {
	case StorageLocal:
	case StorageS3:
		for key, v := range map[string]string{
			"S3_BUCKET":            cfg.S3.Bucket,
			"S3_ACCESS_KEY_ID":     cfg.S3.AccessKeyID,
			"S3_SECRET_ACCESS_KEY": cfg.S3.SecretAccessKey,
			"S3_PUBLIC_URL":        cfg.S3.PublicURL,
		} {
			if v == "" {
				errs = append(errs, key+" is required when STORAGE_DRIVER=s3")
			}
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown STORAGE_DRIVER %q", cfg.StorageDriver))
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, key+" must be an integer")
		return fallback
	}
	return n
}

func getBool(key string, fallback bool, errs *[]string) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, key+" must be a boolean")
		return fallback
	}
	return b
}
