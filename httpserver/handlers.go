package httpserver

import (
	"net/http"
	"strings"

	pbs "github.com/openpbs/go-pbs"
	"github.com/openpbs/go-pbs/attr"
)

// batchStatusToJSON renders a BatchStatus the way qmgr's print path does:
// one JSON object per named entity, attributes keyed by wire name.
func batchStatusToJSON(bs *attr.BatchStatus) map[string]interface{} {
	out := map[string]interface{}{"name": bs.Name}
	attrs := make(map[string]interface{}, len(bs.Attribs))
	for _, a := range bs.Attribs {
		key := a.Name
		if a.Resource != "" {
			key = a.Name + "." + a.Resource
		}
		attrs[key] = a.Value
	}
	out["attributes"] = attrs
	return out
}

// handleJobs handles GET /v1/jobs: list jobs, optionally narrowed to one
// job by the `id` query parameter.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported on /v1/jobs")
		return
	}

	ctx, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	username, _ := UsernameFromContext(ctx)
	if err := s.limiter.WaitGateway(ctx, username); err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}

	handle, err := s.connect(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	defer pbs.Disconnect(handle)

	jobID := r.URL.Query().Get("id")
	list, err := pbs.StatJob(ctx, handle, jobID, nil)
	if err != nil {
		writePBSError(w, err)
		return
	}

	jobs := make([]map[string]interface{}, len(list))
	for i, bs := range list {
		jobs[i] = batchStatusToJSON(bs)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

// handleQueues handles GET /v1/queues: list queues known to the server.
func (s *Server) handleQueues(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported on /v1/queues")
		return
	}

	ctx, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	username, _ := UsernameFromContext(ctx)
	if err := s.limiter.WaitGateway(ctx, username); err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}

	handle, err := s.connect(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	defer pbs.Disconnect(handle)

	queueName := r.URL.Query().Get("name")
	list, err := pbs.StatQueue(ctx, handle, queueName, nil)
	if err != nil {
		writePBSError(w, err)
		return
	}

	queues := make([]map[string]interface{}, len(list))
	for i, bs := range list {
		queues[i] = batchStatusToJSON(bs)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"queues": queues})
}

// handleJobAction handles POST /v1/jobs/{id}/actions/{hold,release,delete}.
func (s *Server) handleJobAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is supported on job actions")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/v1/jobs/")
	parts := strings.SplitN(path, "/actions/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusNotFound, "expected /v1/jobs/{id}/actions/{action}")
		return
	}
	jobID, action := parts[0], parts[1]

	ctx, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	username, _ := UsernameFromContext(ctx)
	if err := s.limiter.WaitGateway(ctx, username); err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}

	handle, err := s.connect(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	defer pbs.Disconnect(handle)

	switch action {
	case "hold":
		err = pbs.HoldJob(ctx, handle, jobID, "")
	case "release":
		err = pbs.ReleaseJob(ctx, handle, jobID, "")
	case "delete":
		var results []pbs.JobResult
		results, err = pbs.DeleteJobList(ctx, handle, []string{jobID})
		if err == nil && len(results) > 0 {
			err = results[0].Err()
		}
	default:
		writeError(w, http.StatusNotFound, "unknown action: "+action)
		return
	}
	if err != nil {
		writePBSError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"job_id": jobID, "action": action, "status": "ok"})
}

// handleHealthz reports process liveness without contacting PBS.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reports readiness by attempting a connection to the PBS
// server this gateway fronts.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	handle, err := pbs.Connect(r.Context(), s.server, s.cfg)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	pbs.Disconnect(handle)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
