package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/foliovault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN for the user store (empty = file store)
//	-s string   token HMAC secret key
//	-x string   token lifetime ("7d", "24h", "30m", "60s")
//	-o string   data directory for encrypted collection files
//	-u string   uploads directory
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-x", "-o", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.TokenSecret, "s", config.TokenSecret, "token secret key")
	fs.StringVar(&config.TokenExpiry, "x", config.TokenExpiry, "token lifetime (unit-suffixed, e.g. 7d)")
	fs.StringVar(&config.DataDir, "o", config.DataDir, "data directory")
	fs.StringVar(&config.UploadsDir, "u", config.UploadsDir, "uploads directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
