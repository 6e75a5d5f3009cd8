package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kaudaouda/Anac-backend/internal/utils"
)

// Config is the full runtime configuration, read once at startup from
// the environment.
type Config struct {
	AppPort     string
	AppURL      string
	DatabaseURL string

	JWTSecretKey       string
	JWTIssuer          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	// DevMode disables the Secure cookie flag and relaxes CORS for
	// local frontends. Never enable it on a deployed instance.
	DevMode bool

	AllowedOrigins []string
	SeedGeodata    bool
}

// LoadConfig reads the environment and fails fast on anything the
// service cannot run without.
func LoadConfig() *Config {
	cfg := &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTIssuer:          getEnv("JWT_ISSUER", "anac-backend"),
		AccessTokenExpiry:  getDurationEnv("ACCESS_TOKEN_EXPIRY", 30*time.Minute),
		RefreshTokenExpiry: getDurationEnv("REFRESH_TOKEN_EXPIRY", 24*time.Hour),
		DevMode:            getBoolEnv("DEV_MODE", false),
		SeedGeodata:        getBoolEnv("SEED_GEODATA", false),
	}

	if cfg.DatabaseURL == "" {
		utils.Logger.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecretKey == "" {
		utils.Logger.Fatal("JWT_SECRET_KEY is required")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	} else if cfg.DevMode {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	} else {
		cfg.AllowedOrigins = []string{cfg.AppURL}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.WithField("key", key).Warnf("invalid duration %q, using default %s", v, fallback)
		return fallback
	}
	return d
}

func getBoolEnv(key string, fallback bool) bool {
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

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
