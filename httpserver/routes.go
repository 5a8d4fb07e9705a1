package httpserver

import "net/http"

// setupRoutes wires the gateway's narrow REST surface: job listing and
// per-job actions, queue listing, OAuth2 client-credentials token
// lifecycle, and health/readiness probes. qmgr remains the complete
// administrative surface; this is read-mostly convenience on top of it.
func (s *Server) setupRoutes(mux *http.ServeMux) {
	cors := func(h http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			h(w, r)
		})
	}

	mux.Handle("/openapi.json", cors(s.handleOpenAPISchema))

	mux.Handle("/v1/jobs", cors(s.handleJobs))
	mux.Handle("/v1/jobs/", cors(s.handleJobAction))
	mux.Handle("/v1/queues", cors(s.handleQueues))

	mux.HandleFunc("/oauth2/token", s.handleOAuth2Token)
	mux.HandleFunc("/oauth2/introspect", s.handleOAuth2Introspect)
	mux.HandleFunc("/oauth2/revoke", s.handleOAuth2Revoke)

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/readyz", s.handleReadyz)
}
