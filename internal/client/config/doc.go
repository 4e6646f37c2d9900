// Package config loads runtime configuration for the loyalty CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "auth_endpoint_addr": "127.0.0.1:50051",
//	  "reward_endpoint_addr": "127.0.0.1:50052",
//	  "session_dir": ".loyalty",
//	  "request_timeout": "10s"
//	}
package config
