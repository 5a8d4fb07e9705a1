package wire

import (
	"testing"

	"github.com/bbockelm/cedar/security"
)

type mapConfig map[string]string

func (m mapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestSecurityConfigFromConfigDefaults(t *testing.T) {
	sc := SecurityConfigFromConfig(nil, 42, "pbs-server:15001")
	if sc.Command != 42 {
		t.Errorf("Command = %d, want 42", sc.Command)
	}
	if len(sc.AuthMethods) == 0 {
		t.Error("expected default auth methods to be set")
	}
}

func TestSecurityConfigFromConfigMunge(t *testing.T) {
	cfg := mapConfig{"PBS_AUTH_METHOD": "munge"}
	sc := SecurityConfigFromConfig(cfg, 42, "pbs-server:15001")
	if len(sc.AuthMethods) != 1 || sc.AuthMethods[0] != security.AuthFS {
		t.Errorf("unexpected auth methods for munge: %v", sc.AuthMethods)
	}
}

func TestSecurityConfigFromConfigEncryptRequired(t *testing.T) {
	cfg := mapConfig{"PBS_ENCRYPT_METHOD": "aes256"}
	sc := SecurityConfigFromConfig(cfg, 42, "pbs-server:15001")
	if sc.Encryption != security.SecurityRequired {
		t.Errorf("Encryption = %v, want SecurityRequired", sc.Encryption)
	}
}
