package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mango-services/loyalty-auth/internal/flagx"
	"github.com/mango-services/loyalty-auth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts may
// be strings like "5s" or integer nanoseconds.
type JsonConfig struct {
	AuthEndpointAddr   *string         `json:"auth_endpoint_addr"`
	RewardEndpointAddr *string         `json:"reward_endpoint_addr"`
	SessionDir         *string         `json:"session_dir"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Only keys present in the file are applied. Panics on read
// or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthEndpointAddr != nil {
		cfg.AuthEndpointAddr = *jc.AuthEndpointAddr
	}
	if jc.RewardEndpointAddr != nil {
		cfg.RewardEndpointAddr = *jc.RewardEndpointAddr
	}
	if jc.SessionDir != nil {
		cfg.SessionDir = *jc.SessionDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
