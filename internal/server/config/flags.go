package config

import (
	"flag"
	"os"
	"time"

	"github.com/mango-services/loyalty-auth/internal/flagx"
)

var serverFlags = []string{"-a", "-m", "-d", "-s", "-iss", "-aud", "-t", "-r", "-l", "-lb", "-u", "-p", "-b", "-g", "-e"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    gRPC bind address (e.g., ":50051")
//	-m string    metrics bind address, empty to disable
//	-d string    PostgreSQL DSN
//	-s string    JWT HMAC secret key
//	-iss string  JWT issuer
//	-aud string  JWT audience
//	-t int       access token validity, minutes
//	-r int       refresh token validity, minutes
//	-l float     credential RPCs per second per peer
//	-lb int      credential RPC burst per peer
//	-u string    S3 root user
//	-p string    S3 root password
//	-b string    S3 bucket name
//	-g string    S3 region
//	-e string    S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Token lifetimes are given as whole minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port for metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.JWTIssuer, "iss", config.JWTIssuer, "JWT issuer")
	fs.StringVar(&config.JWTAudience, "aud", config.JWTAudience, "JWT audience")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.Float64Var(&config.LoginRateLimit, "l", config.LoginRateLimit, "credential requests per second per peer")
	fs.IntVar(&config.LoginRateBurst, "lb", config.LoginRateBurst, "credential request burst per peer")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
