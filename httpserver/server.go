// Package httpserver is a small read-mostly REST façade in front of the
// IFL: GET /v1/jobs, GET /v1/queues, and per-job hold/release/delete
// actions. Requests are authenticated with HS256 JWT bearer tokens verified
// against the gateway's signing key (see GenerateToken); the handlers do
// not consult the OAuth2 provider's token store. Requests are rate-limited
// per token subject (username). qmgr remains the primary, complete
// administrative surface; the gateway is a convenience wrapper around it.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	pbs "github.com/openpbs/go-pbs"
	"github.com/openpbs/go-pbs/config"
	"github.com/openpbs/go-pbs/logging"
	"github.com/openpbs/go-pbs/ratelimit"
)

// Server represents the gateway's HTTP API server.
type Server struct {
	httpServer     *http.Server
	cfg            *config.Config
	server         string // PBS server this gateway fronts
	signingKeyPath string
	limiter        *ratelimit.Manager
	oauth2Provider *OAuth2Provider
	log            *logging.Logger
}

// Config holds gateway server configuration.
type Config struct {
	ListenAddr     string  // address to listen on (e.g. ":8080")
	PBSServer      string  // PBS server this gateway connects to
	SigningKeyPath string  // path to the JWT signing key
	OAuth2DBPath   string  // path to the gateway's OAuth2 SQLite database
	Issuer         string  // OAuth2 issuer / audience string
	GlobalRate     float64 // requests/sec across all callers
	PerTokenRate   float64 // requests/sec per authenticated user (token subject)
}

// NewServer creates a new gateway HTTP API server.
func NewServer(cfg Config, pbsCfg *config.Config, log *logging.Logger) (*Server, error) {
	oauth2Provider, err := NewOAuth2Provider(cfg.OAuth2DBPath, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("creating oauth2 provider: %w", err)
	}

	s := &Server{
		cfg:            pbsCfg,
		server:         cfg.PBSServer,
		signingKeyPath: cfg.SigningKeyPath,
		limiter:        ratelimit.NewManager(cfg.GlobalRate, cfg.PerTokenRate, cfg.GlobalRate, cfg.PerTokenRate),
		oauth2Provider: oauth2Provider,
		log:            log,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logf("starting pbs-gateway on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server and the OAuth2 storage.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logf("shutting down pbs-gateway")
	if s.oauth2Provider != nil {
		_ = s.oauth2Provider.Close()
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Infof(logging.DestinationGateway, format, args...)
	}
}

// connect opens an IFL connection to the gateway's PBS server, ignoring
// the caller's bearer token identity: the gateway authenticates the HTTP
// caller itself and connects to PBS under the gateway's own credentials.
func (s *Server) connect(ctx context.Context) (int, error) {
	return pbs.Connect(ctx, s.server, s.cfg)
}

// ErrorResponse is the JSON body returned on every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writePBSError maps a *pbs.Error onto an HTTP status code; anything else
// is a 500.
func writePBSError(w http.ResponseWriter, err error) {
	var pbsErr *pbs.Error
	if !errors.As(err, &pbsErr) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	switch pbsErr.Code {
	case pbs.CodeUnkJobID, pbs.CodeJobNotFound, pbs.CodeNoQueue, pbs.CodeHistJobID:
		writeError(w, http.StatusNotFound, pbsErr.Error())
	case pbs.CodeNoPerm, pbs.CodeBadUser, pbs.CodeQAcsDny, pbs.CodeBadAcl:
		writeError(w, http.StatusForbidden, pbsErr.Error())
	case pbs.CodeBadAtVal, pbs.CodeDuplicateAttrOpl:
		writeError(w, http.StatusBadRequest, pbsErr.Error())
	default:
		writeError(w, http.StatusBadGateway, pbsErr.Error())
	}
}
