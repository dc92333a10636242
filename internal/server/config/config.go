// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the FolioVault server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DataDir: directory holding the encrypted collection files.
//   - UploadsDir: directory for uploaded images.
//   - DatabaseDSN: optional PostgreSQL DSN for the user store; when empty
//     the encrypted users file is used instead.
//   - TokenSecret: HMAC secret for signing session tokens (HS256).
//   - TokenExpiry: token lifetime as a unit-suffixed string ("7d", "24h").
//   - AuthEncryptionKey / DBEncryptionKey: passphrases for the users file
//     and the content collection files respectively.
//   - AdminEmail: recipient of contact-form messages.
//   - SMTPAddr / SMTPFrom: outgoing mail settings; empty SMTPAddr keeps
//     the log-only mailer.
//   - CORSAllowedOrigins: origins allowed to call the API with credentials.
//   - LoginRatePerMinute: per-IP login attempts allowed per minute.
//   - ShutdownTimeout: how long in-flight requests may drain on shutdown.
//
// The default secrets are development placeholders and must be overridden
// in any real deployment.
type Config struct {
	EndpointAddr       string
	DataDir            string
	UploadsDir         string
	DatabaseDSN        string
	TokenSecret        string
	TokenExpiry        string
	AuthEncryptionKey  string
	DBEncryptionKey    string
	AdminEmail         string
	SMTPAddr           string
	SMTPFrom           string
	CORSAllowedOrigins []string
	LoginRatePerMinute int
	ShutdownTimeout    time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DataDir = "data"
	c.UploadsDir = "public/uploads"
	c.DatabaseDSN = ""
	c.TokenSecret = "your-super-secret-jwt-key-change-this-in-production"
	c.TokenExpiry = "7d"
	c.AuthEncryptionKey = "your-secret-auth-encryption-key-change-in-production"
	c.DBEncryptionKey = "your-secret-encryption-key-change-in-production"
	c.AdminEmail = "admin@example.com"
	c.SMTPAddr = ""
	c.SMTPFrom = "noreply@localhost"
	c.CORSAllowedOrigins = nil
	c.LoginRatePerMinute = 10
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
