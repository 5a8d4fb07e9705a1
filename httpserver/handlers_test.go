package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pbs "github.com/openpbs/go-pbs"
	"github.com/openpbs/go-pbs/attr"
)

func TestBatchStatusToJSON(t *testing.T) {
	bs := &attr.BatchStatus{
		Name: "123.server",
		Attribs: attr.AttrLList{
			{Name: "job_state", Value: "R"},
			{Name: "Resource_List", Resource: "ncpus", Value: "4"},
		},
	}

	got := batchStatusToJSON(bs)
	if got["name"] != "123.server" {
		t.Errorf("name = %v, want %q", got["name"], "123.server")
	}
	attrs, ok := got["attributes"].(map[string]interface{})
	if !ok {
		t.Fatalf("attributes = %T, want map[string]interface{}", got["attributes"])
	}
	if attrs["job_state"] != "R" {
		t.Errorf("attributes[job_state] = %v, want %q", attrs["job_state"], "R")
	}
	if attrs["Resource_List.ncpus"] != "4" {
		t.Errorf("attributes[Resource_List.ncpus] = %v, want %q", attrs["Resource_List.ncpus"], "4")
	}
}

func TestHandleJobsRejectsWrongMethod(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/v1/jobs", nil)
	w := httptest.NewRecorder()

	s.handleJobs(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleJobsRejectsUnauthenticated(t *testing.T) {
	s := &Server{signingKeyPath: writeTestSigningKey(t)}
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	w := httptest.NewRecorder()

	s.handleJobs(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Code != http.StatusUnauthorized {
		t.Errorf("body.Code = %d, want %d", body.Code, http.StatusUnauthorized)
	}
}

func TestHandleQueuesRejectsUnauthenticated(t *testing.T) {
	s := &Server{signingKeyPath: writeTestSigningKey(t)}
	req := httptest.NewRequest(http.MethodGet, "/v1/queues", nil)
	w := httptest.NewRecorder()

	s.handleQueues(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestHandleJobActionRejectsMalformedPath(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/actions/hold", nil)
	w := httptest.NewRecorder()

	s.handleJobAction(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleJobActionRejectsUnauthenticated(t *testing.T) {
	s := &Server{signingKeyPath: writeTestSigningKey(t)}
	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/123.server/actions/hold", nil)
	w := httptest.NewRecorder()

	s.handleJobAction(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestHandleHealthz(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	s.handleHealthz(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestWritePBSErrorMapsCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown job id", &pbs.Error{Code: pbs.CodeUnkJobID, Message: "no such job"}, http.StatusNotFound},
		{"no perm", &pbs.Error{Code: pbs.CodeNoPerm, Message: "denied"}, http.StatusForbidden},
		{"bad attribute value", &pbs.Error{Code: pbs.CodeBadAtVal, Message: "bad value"}, http.StatusBadRequest},
		{"opaque error", errWrap("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writePBSError(w, tc.err)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

type errWrap string

func (e errWrap) Error() string { return string(e) }
