package ratelimit

import (
	"testing"

	"github.com/openpbs/go-pbs/config"
)

func TestConfigFromPBS(t *testing.T) {
	tests := []struct {
		name                   string
		configValues           map[string]string
		expectedServerGlobal   float64
		expectedServerPerUser  float64
		expectedGatewayGlobal float64
		expectedGatewayPerUser float64
	}{
		{
			name:                   "empty config",
			configValues:           map[string]string{},
			expectedServerGlobal:   0,
			expectedServerPerUser:  0,
			expectedGatewayGlobal: 0,
			expectedGatewayPerUser: 0,
		},
		{
			name: "all limits set",
			configValues: map[string]string{
				"SERVER_QUERY_RATE_LIMIT":           "10",
				"SERVER_QUERY_PER_USER_RATE_LIMIT":  "5",
				"GATEWAY_QUERY_RATE_LIMIT":        "20",
				"GATEWAY_QUERY_PER_USER_RATE_LIMIT": "10",
			},
			expectedServerGlobal:   10,
			expectedServerPerUser:  5,
			expectedGatewayGlobal: 20,
			expectedGatewayPerUser: 10,
		},
		{
			name: "partial config",
			configValues: map[string]string{
				"SERVER_QUERY_RATE_LIMIT":           "15",
				"GATEWAY_QUERY_PER_USER_RATE_LIMIT": "8",
			},
			expectedServerGlobal:   15,
			expectedServerPerUser:  0,
			expectedGatewayGlobal: 0,
			expectedGatewayPerUser: 8,
		},
		{
			name: "negative values treated as unlimited",
			configValues: map[string]string{
				"SERVER_QUERY_RATE_LIMIT":           "-1",
				"SERVER_QUERY_PER_USER_RATE_LIMIT":  "-5",
			},
			expectedServerGlobal:   0,
			expectedServerPerUser:  0,
			expectedGatewayGlobal: 0,
			expectedGatewayPerUser: 0,
		},
		{
			name: "invalid values use defaults",
			configValues: map[string]string{
				"SERVER_QUERY_RATE_LIMIT":           "invalid",
				"SERVER_QUERY_PER_USER_RATE_LIMIT":  "not_a_number",
			},
			expectedServerGlobal:   0,
			expectedServerPerUser:  0,
			expectedGatewayGlobal: 0,
			expectedGatewayPerUser: 0,
		},
		{
			name: "decimal values",
			configValues: map[string]string{
				"SERVER_QUERY_RATE_LIMIT":           "10.5",
				"SERVER_QUERY_PER_USER_RATE_LIMIT":  "2.5",
			},
			expectedServerGlobal:   10.5,
			expectedServerPerUser:  2.5,
			expectedGatewayGlobal: 0,
			expectedGatewayPerUser: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewEmpty()
			for key, value := range tt.configValues {
				cfg.Set(key, value)
			}

			manager := ConfigFromPBS(cfg)

			serverStats := manager.GetServerStats()
			if serverStats.GlobalRate != tt.expectedServerGlobal {
				t.Errorf("qmgr fan-out global rate: expected %f, got %f",
					tt.expectedServerGlobal, serverStats.GlobalRate)
			}
			if serverStats.PerUserRate != tt.expectedServerPerUser {
				t.Errorf("qmgr fan-out per-user rate: expected %f, got %f",
					tt.expectedServerPerUser, serverStats.PerUserRate)
			}

			gatewayStats := manager.GetGatewayStats()
			if gatewayStats.GlobalRate != tt.expectedGatewayGlobal {
				t.Errorf("gateway global rate: expected %f, got %f",
					tt.expectedGatewayGlobal, gatewayStats.GlobalRate)
			}
			if gatewayStats.PerUserRate != tt.expectedGatewayPerUser {
				t.Errorf("gateway per-user rate: expected %f, got %f",
					tt.expectedGatewayPerUser, gatewayStats.PerUserRate)
			}
		})
	}
}

func TestConfigFromPBSNilConfig(t *testing.T) {
	// Should not panic with nil config
	manager := ConfigFromPBS(nil)
	
	serverStats := manager.GetServerStats()
	if serverStats.GlobalRate != 0 {
		t.Errorf("expected 0 global rate with nil config, got %f", serverStats.GlobalRate)
	}
	
	gatewayStats := manager.GetGatewayStats()
	if gatewayStats.GlobalRate != 0 {
		t.Errorf("expected 0 global rate with nil config, got %f", gatewayStats.GlobalRate)
	}
}

func TestGetFloatParam(t *testing.T) {
	cfg := config.NewEmpty()
	cfg.Set("VALID_INT", "42")
	cfg.Set("VALID_FLOAT", "3.14")
	cfg.Set("INVALID", "not_a_number")
	cfg.Set("NEGATIVE", "-10")
	cfg.Set("ZERO", "0")

	tests := []struct {
		name         string
		key          string
		defaultValue float64
		expected     float64
	}{
		{
			name:         "valid integer",
			key:          "VALID_INT",
			defaultValue: 0,
			expected:     42,
		},
		{
			name:         "valid float",
			key:          "VALID_FLOAT",
			defaultValue: 0,
			expected:     3.14,
		},
		{
			name:         "invalid value uses default",
			key:          "INVALID",
			defaultValue: 99,
			expected:     99,
		},
		{
			name:         "missing key uses default",
			key:          "MISSING",
			defaultValue: 123,
			expected:     123,
		},
		{
			name:         "negative treated as unlimited",
			key:          "NEGATIVE",
			defaultValue: 5,
			expected:     0,
		},
		{
			name:         "zero value",
			key:          "ZERO",
			defaultValue: 10,
			expected:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getFloatParam(cfg, tt.key, tt.defaultValue)
			if result != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, result)
			}
		})
	}
}
