package httpserver

import (
	"net/http"

	"github.com/ory/fosite"
)

// handleOAuth2Token handles POST /oauth2/token: the client-credentials
// grant callers use to mint a gateway access token.
func (s *Server) handleOAuth2Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := s.oauth2Provider.GetProvider()

	session := &fosite.DefaultSession{}
	accessRequest, err := provider.NewAccessRequest(ctx, r, session)
	if err != nil {
		s.logf("oauth2 token request rejected: %v", err)
		provider.WriteAccessError(ctx, w, accessRequest, err)
		return
	}

	response, err := provider.NewAccessResponse(ctx, accessRequest)
	if err != nil {
		s.logf("oauth2 token response failed: %v", err)
		provider.WriteAccessError(ctx, w, accessRequest, err)
		return
	}

	provider.WriteAccessResponse(ctx, w, accessRequest, response)
}

// handleOAuth2Introspect handles POST /oauth2/introspect (RFC 7662).
func (s *Server) handleOAuth2Introspect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := s.oauth2Provider.GetProvider()

	session := &fosite.DefaultSession{}
	ir, err := provider.NewIntrospectionRequest(ctx, r, session)
	if err != nil {
		s.logf("oauth2 introspection request failed: %v", err)
		provider.WriteIntrospectionError(ctx, w, err)
		return
	}
	provider.WriteIntrospectionResponse(ctx, w, ir)
}

// handleOAuth2Revoke handles POST /oauth2/revoke (RFC 7009).
func (s *Server) handleOAuth2Revoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := s.oauth2Provider.GetProvider()

	err := provider.NewRevocationRequest(ctx, r)
	if err != nil {
		s.logf("oauth2 revocation failed: %v", err)
	}
	provider.WriteRevocationResponse(ctx, w, err)
}
