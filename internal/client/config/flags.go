package config

import (
	"flag"
	"os"
	"time"

	"github.com/mango-services/loyalty-auth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the auth server
//	-r string   address and port of the reward server
//	-s string   session directory
//	-t int      request timeout in seconds
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthEndpointAddr, "a", cfg.AuthEndpointAddr, "address and port of the auth server")
	fs.StringVar(&cfg.RewardEndpointAddr, "r", cfg.RewardEndpointAddr, "address and port of the reward server")
	fs.StringVar(&cfg.SessionDir, "s", cfg.SessionDir, "session directory")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
