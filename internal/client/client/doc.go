// Package client talks to the auth and reward servers on behalf of the CLI.
//
// GRPCClient keeps one connection per server, attaches the access token to
// reward calls and, when the reward server reports an expired token,
// refreshes the pair once through the auth server and retries the call.
// Status codes are mapped to the sentinel errors in errors.go so callers can
// use errors.Is.
package client
