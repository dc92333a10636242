package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/foliovault/internal/flagx"
	"github.com/dmitrijs2005/foliovault/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into
// the runtime Config struct.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	DataDir            string         `json:"data_dir"`
	UploadsDir         string         `json:"uploads_dir"`
	DatabaseDSN        string         `json:"database_dsn"`
	TokenSecret        string         `json:"token_secret"`
	TokenExpiry        string         `json:"token_expiry"`
	AuthEncryptionKey  string         `json:"auth_encryption_key"`
	DBEncryptionKey    string         `json:"db_encryption_key"`
	AdminEmail         string         `json:"admin_email"`
	SMTPAddr           string         `json:"smtp_addr"`
	SMTPFrom           string         `json:"smtp_from"`
	CORSAllowedOrigins []string       `json:"cors_allowed_origins"`
	LoginRatePerMinute int            `json:"login_rate_per_minute"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags;
// if neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a requested-but-broken
// config file is a startup error, not something to silently skip.
//
// Only fields present in the file override the current values.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DataDir != "" {
		config.DataDir = c.DataDir
	}
	if c.UploadsDir != "" {
		config.UploadsDir = c.UploadsDir
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.TokenSecret != "" {
		config.TokenSecret = c.TokenSecret
	}
	if c.TokenExpiry != "" {
		config.TokenExpiry = c.TokenExpiry
	}
	if c.AuthEncryptionKey != "" {
		config.AuthEncryptionKey = c.AuthEncryptionKey
	}
	if c.DBEncryptionKey != "" {
		config.DBEncryptionKey = c.DBEncryptionKey
	}
	if c.AdminEmail != "" {
		config.AdminEmail = c.AdminEmail
	}
	if c.SMTPAddr != "" {
		config.SMTPAddr = c.SMTPAddr
	}
	if c.SMTPFrom != "" {
		config.SMTPFrom = c.SMTPFrom
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.LoginRatePerMinute > 0 {
		config.LoginRatePerMinute = c.LoginRatePerMinute
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
