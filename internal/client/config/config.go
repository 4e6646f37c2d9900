package config

import "time"

// Config holds runtime settings for the loyalty CLI.
//
// Fields:
//   - AuthEndpointAddr: host:port of the auth gRPC endpoint.
//   - RewardEndpointAddr: host:port of the reward gRPC endpoint.
//   - SessionDir: directory (relative to the working directory) holding the saved session.
//   - RequestTimeout: deadline applied to each command's RPCs.
type Config struct {
	AuthEndpointAddr   string
	RewardEndpointAddr string
	SessionDir         string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthEndpointAddr = "127.0.0.1:50051"
	c.RewardEndpointAddr = "127.0.0.1:50052"
	c.SessionDir = ".loyalty"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
