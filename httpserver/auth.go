package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type authContextKey struct{}

// WithToken attaches a validated bearer token's subject (username) to ctx.
func WithToken(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, authContextKey{}, username)
}

// UsernameFromContext retrieves the authenticated username from ctx.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(authContextKey{}).(string)
	return username, ok
}

// extractBearerToken extracts the bearer token from the Authorization header.
func extractBearerToken(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) < len(prefix) || auth[:len(prefix)] != prefix {
		return "", fmt.Errorf("missing or malformed Authorization header")
	}
	return auth[len(prefix):], nil
}

// authenticate extracts and verifies the request's bearer token, returning
// a context carrying the authenticated subject.
func (s *Server) authenticate(r *http.Request) (context.Context, error) {
	tokenString, err := extractBearerToken(r)
	if err != nil {
		return nil, err
	}

	keyData, err := os.ReadFile(s.signingKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading signing key: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method)
		}
		return keyData, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	return WithToken(r.Context(), sub), nil
}

// GenerateToken issues a gateway-scoped JWT bearer token for username,
// signed with the HS256 key at signingKeyPath. Used by operators to
// provision client-credentials-equivalent tokens out of band.
func GenerateToken(username, signingKeyPath string) (string, error) {
	//nolint:gosec // signingKeyPath is admin-configured, not user input
	keyData, err := os.ReadFile(signingKeyPath)
	if err != nil {
		return "", fmt.Errorf("reading signing key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
		"iss": "pbs-gateway",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(keyData)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return tokenString, nil
}

// GenerateSigningKey generates a random 256-bit signing key for GenerateToken.
func GenerateSigningKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating signing key: %w", err)
	}
	return key, nil
}

// EncodeSigningKey encodes a signing key for storage as a config value.
func EncodeSigningKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}
