package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "postgres://db", "-s", "secret",
				"-x", "12h", "-o", "/tmp/data", "-u", "/tmp/uploads",
			},
			expected: Config{
				EndpointAddr: "127.0.0.1:9090",
				DatabaseDSN:  "postgres://db",
				TokenSecret:  "secret",
				TokenExpiry:  "12h",
				DataDir:      "/tmp/data",
				UploadsDir:   "/tmp/uploads",
			},
		},
		{
			name:     "no flags leaves zero values",
			args:     []string{"cmd"},
			expected: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, *config)
		})
	}
}
