package wire

import (
	"context"

	"github.com/bbockelm/cedar/security"
)

// SecurityConfigFromConfig builds a CEDAR SecurityConfig for an
// administrative connection out of the handful of PBS_CONF_FILE directives
// that matter for transport security: PBS_AUTH_METHOD and
// PBS_ENCRYPT_METHOD. It falls back to sensible defaults (SSL preferred,
// AES when encryption is requested) when cfg is nil or the directives are
// absent.
func SecurityConfigFromConfig(cfg ConfigSource, command int, peerName string) *security.SecurityConfig {
	secConfig := &security.SecurityConfig{
		Command:        command,
		AuthMethods:    []security.AuthMethod{security.AuthSSL, security.AuthToken},
		Authentication: security.SecurityOptional,
		CryptoMethods:  []security.CryptoMethod{security.CryptoAES},
		Encryption:     security.SecurityOptional,
		Integrity:      security.SecurityOptional,
		PeerName:       peerName,
	}
	if cfg == nil {
		return secConfig
	}
	if method, ok := cfg.Get("PBS_AUTH_METHOD"); ok {
		secConfig.AuthMethods = mapAuthMethod(method)
	}
	if level, ok := cfg.Get("PBS_ENCRYPT_METHOD"); ok && level != "" {
		secConfig.Encryption = security.SecurityRequired
		_ = level
	}
	return secConfig
}

// ConfigSource is the minimal accessor wire needs from a PBS configuration
// source, satisfied by *config.Config without this package importing it
// directly (config in turn has no reason to import wire).
type ConfigSource interface {
	Get(key string) (string, bool)
}

func mapAuthMethod(method string) []security.AuthMethod {
	switch method {
	case "munge", "MUNGE":
		return []security.AuthMethod{security.AuthFS}
	case "ssl", "SSL":
		return []security.AuthMethod{security.AuthSSL}
	case "token", "TOKEN":
		return []security.AuthMethod{security.AuthToken}
	default:
		return []security.AuthMethod{security.AuthSSL, security.AuthToken}
	}
}

// ConnectWithConfig is a convenience wrapper combining SecurityConfigFromConfig
// and Connect for the common case of "connect using this PBS configuration".
func ConnectWithConfig(ctx context.Context, address string, cfg ConfigSource, command int) (int, error) {
	return Connect(ctx, address, SecurityConfigFromConfig(cfg, command, address))
}
