package httpserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func writeTestSigningKey(t *testing.T) string {
	t.Helper()
	key, err := GenerateSigningKey()
	if err != nil {
		t.Fatalf("GenerateSigningKey: %v", err)
	}
	path := filepath.Join(t.TempDir(), "signing.key")
	if err := os.WriteFile(path, key, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestGenerateTokenRoundTrips(t *testing.T) {
	keyPath := writeTestSigningKey(t)

	tok, err := GenerateToken("alice", keyPath)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	s := &Server{signingKeyPath: keyPath}
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	ctx, err := s.authenticate(req)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	username, ok := UsernameFromContext(ctx)
	if !ok || username != "alice" {
		t.Errorf("UsernameFromContext() = (%q, %v), want (\"alice\", true)", username, ok)
	}
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	s := &Server{signingKeyPath: writeTestSigningKey(t)}
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)

	if _, err := s.authenticate(req); err == nil {
		t.Error("authenticate() with no Authorization header should fail")
	}
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	s := &Server{signingKeyPath: writeTestSigningKey(t)}
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Basic deadbeef")

	if _, err := s.authenticate(req); err == nil {
		t.Error("authenticate() with a non-Bearer scheme should fail")
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	keyPath := writeTestSigningKey(t)
	keyData, err := os.ReadFile(keyPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	claims := jwt.MapClaims{
		"sub": "alice",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-1 * time.Hour).Unix(),
		"iss": "pbs-gateway",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(keyData)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	s := &Server{signingKeyPath: keyPath}
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	if _, err := s.authenticate(req); err == nil {
		t.Error("authenticate() with an expired token should fail")
	}
}

func TestAuthenticateRejectsWrongSigningKey(t *testing.T) {
	tok, err := GenerateToken("alice", writeTestSigningKey(t))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	s := &Server{signingKeyPath: writeTestSigningKey(t)} // different key
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	if _, err := s.authenticate(req); err == nil {
		t.Error("authenticate() with a token signed by a different key should fail")
	}
}

func TestExtractBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	tok, err := extractBearerToken(req)
	if err != nil {
		t.Fatalf("extractBearerToken: %v", err)
	}
	if tok != "abc.def.ghi" {
		t.Errorf("extractBearerToken() = %q, want %q", tok, "abc.def.ghi")
	}
}
