package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-m", ":9191", "-d", "db", "-s", "secret",
				"-iss", "issuer", "-aud", "audience", "-t", "15", "-r", "10080",
				"-l", "2.5", "-lb", "4",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				MetricsAddr:                  ":9191",
				DatabaseDSN:                  "db",
				SecretKey:                    "secret",
				JWTIssuer:                    "issuer",
				JWTAudience:                  "audience",
				AccessTokenValidityDuration:  15 * time.Minute,
				RefreshTokenValidityDuration: 7 * 24 * time.Hour,
				LoginRateLimit:               2.5,
				LoginRateBurst:               4,
				S3RootUser:                   "user",
				S3RootPassword:               "password",
				S3Bucket:                     "bucket",
				S3Region:                     "us-west-1",
				S3BaseEndpoint:               "http://endpoint",
			},
		},
		{
			name:        "bad integer panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", "cfg.json", "-zzz", "1"}

	var c Config
	c.LoadDefaults()
	require.NotPanics(t, func() { parseFlags(&c) })
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
}
