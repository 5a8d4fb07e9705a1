package ratelimit

import (
	"strconv"

	"github.com/openpbs/go-pbs/config"
)

// ConfigFromPBS creates a rate limiter manager from PBS configuration
// Returns a manager with rate limits based on PBS configuration parameters:
//   - SERVER_QUERY_RATE_LIMIT: global rate limit for qmgr fan-out queries (requests/sec)
//   - SERVER_QUERY_PER_USER_RATE_LIMIT: per-user rate limit for qmgr fan-out queries (requests/sec)
//   - GATEWAY_QUERY_RATE_LIMIT: global rate limit for gateway queries (requests/sec)
//   - GATEWAY_QUERY_PER_USER_RATE_LIMIT: per-user rate limit for gateway queries (requests/sec)
//
// A value of 0 or unset means unlimited for that limit type.
func ConfigFromPBS(cfg *config.Config) *Manager {
	serverGlobal := getFloatParam(cfg, "SERVER_QUERY_RATE_LIMIT", 0)
	serverPerUser := getFloatParam(cfg, "SERVER_QUERY_PER_USER_RATE_LIMIT", 0)
	gatewayGlobal := getFloatParam(cfg, "GATEWAY_QUERY_RATE_LIMIT", 0)
	gatewayPerUser := getFloatParam(cfg, "GATEWAY_QUERY_PER_USER_RATE_LIMIT", 0)

	return NewManager(serverGlobal, serverPerUser, gatewayGlobal, gatewayPerUser)
}

// getFloatParam retrieves a float configuration parameter
// Returns defaultValue if the parameter is not set or cannot be parsed
func getFloatParam(cfg *config.Config, key string, defaultValue float64) float64 {
	if cfg == nil {
		return defaultValue
	}

	value, ok := cfg.Get(key)
	if !ok {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	// Negative values are treated as unlimited (0)
	if floatValue < 0 {
		return 0
	}

	return floatValue
}
