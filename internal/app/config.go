package app

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything the container needs from the environment.
type Config struct {
	Addr           string
	AllowedOrigins []string
	MaxBodyBytes   int64
}

const defaultMaxBodyBytes = 1 << 20

// ConfigFromEnv reads configuration from environment variables, applying
// defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := Config{
		Addr:         getEnv("APP_ADDR", ":8080"),
		MaxBodyBytes: defaultMaxBodyBytes,
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if raw := os.Getenv("MAX_BODY_BYTES"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			cfg.MaxBodyBytes = v
		}
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
