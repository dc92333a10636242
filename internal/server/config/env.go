package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env.local
// file in the working directory is loaded first (ignored if absent), so
// local development can keep secrets out of the shell profile.
//
// Recognized variables: ADDRESS, DATA_DIR, UPLOADS_DIR, DATABASE_DSN,
// JWT_SECRET, TOKEN_EXPIRY, AUTH_ENCRYPTION_KEY, DB_ENCRYPTION_KEY,
// ADMIN_EMAIL, SMTP_ADDR, SMTP_FROM, CORS_ALLOWED_ORIGINS (comma-separated),
// LOGIN_RATE_PER_MINUTE.
func parseEnv(config *Config) {
	_ = godotenv.Load(".env.local")

	setIfPresent := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent("ADDRESS", &config.EndpointAddr)
	setIfPresent("DATA_DIR", &config.DataDir)
	setIfPresent("UPLOADS_DIR", &config.UploadsDir)
	setIfPresent("DATABASE_DSN", &config.DatabaseDSN)
	setIfPresent("JWT_SECRET", &config.TokenSecret)
	setIfPresent("TOKEN_EXPIRY", &config.TokenExpiry)
	setIfPresent("AUTH_ENCRYPTION_KEY", &config.AuthEncryptionKey)
	setIfPresent("DB_ENCRYPTION_KEY", &config.DBEncryptionKey)
	setIfPresent("ADMIN_EMAIL", &config.AdminEmail)
	setIfPresent("SMTP_ADDR", &config.SMTPAddr)
	setIfPresent("SMTP_FROM", &config.SMTPFrom)

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = splitOrigins(v)
	}
	if v := os.Getenv("LOGIN_RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.LoginRatePerMinute = n
		}
	}
}

// splitOrigins splits a comma-separated list of origins and trims spaces.
// Empty entries are omitted.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}
