package pbs

import (
	"context"
	"fmt"

	"github.com/PelicanPlatform/classad/classad"
	"github.com/openpbs/go-pbs/attr"
	"github.com/openpbs/go-pbs/wire"
)

// simpleJobAction sends a job-targeted request carrying just a JobId and,
// optionally, an Extra string (signal name, message text, hold type letters,
// destination queue, and so on), and expects a status-only reply.
func simpleJobAction(ctx context.Context, handle int, command int, jobID string, extraKey, extraVal string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("JobId", jobID)
	if extraKey != "" {
		_ = ad.Set(extraKey, extraVal)
	}
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: command, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("job %s: %w", jobID, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// SignalJob sends signal (e.g. "SIGTERM", "resume", "suspend") to jobID.
func SignalJob(ctx context.Context, handle int, jobID, signal string) error {
	return simpleJobAction(ctx, handle, batchSignalJob, jobID, "Signal", signal)
}

// MessageJob delivers text to jobID's stdout/stderr stream, per streamID
// ("o", "e", or "oe" for both).
func MessageJob(ctx context.Context, handle int, jobID, streamID, text string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("JobId", jobID)
	_ = ad.Set("Stream", streamID)
	_ = ad.Set("Text", text)
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchMessageJob, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("message job %s: %w", jobID, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// HoldJob applies holdType (a combination of "u"/"o"/"s" letters) to jobID.
func HoldJob(ctx context.Context, handle int, jobID, holdType string) error {
	return simpleJobAction(ctx, handle, batchHoldJob, jobID, "HoldType", holdType)
}

// ReleaseJob clears holdType from jobID.
func ReleaseJob(ctx context.Context, handle int, jobID, holdType string) error {
	return simpleJobAction(ctx, handle, batchRlsJob, jobID, "HoldType", holdType)
}

// RunJob forces jobID to run now, optionally on a specific vnode list.
func RunJob(ctx context.Context, handle int, jobID, location string) error {
	return simpleJobAction(ctx, handle, batchRunJob, jobID, "Location", location)
}

// RunJobAsync is RunJob without waiting for the server to confirm the job
// actually started, matching pbs_asyrunjob's fire-and-forget contract.
func RunJobAsync(ctx context.Context, handle int, jobID, location string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("JobId", jobID)
	_ = ad.Set("Location", location)
	_ = ad.Set("Async", true)
	return wire.Send(ctx, c, wire.Request{Command: batchRunJob, Body: ad})
}

// RerunJob requests jobID be requeued and re-executed from the start.
func RerunJob(ctx context.Context, handle int, jobID string) error {
	return simpleJobAction(ctx, handle, batchRerunJob, jobID, "", "")
}

// MoveJob moves jobID to destination (a "queue" or "queue@server" string).
func MoveJob(ctx context.Context, handle int, jobID, destination string) error {
	return simpleJobAction(ctx, handle, batchMoveJob, jobID, "Destination", destination)
}

// LocateJob returns the server currently holding jobID.
func LocateJob(ctx context.Context, handle int, jobID string) (string, error) {
	c, err := conn(handle)
	if err != nil {
		return "", err
	}
	ad := classad.New()
	_ = ad.Set("JobId", jobID)
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchLocateJob, Body: ad}, true)
	if err != nil {
		return "", fmt.Errorf("locate job %s: %w", jobID, err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return "", err
	}
	if len(reply.Ads) == 0 {
		return "", fmt.Errorf("locate job %s: server returned no location", jobID)
	}
	loc, _ := reply.Ads[0].EvaluateAttrString("Server")
	return loc, nil
}

// AlterJob applies ops to jobID, verified against the job attribute catalog
// the same way Manager does for a managed object.
func AlterJob(ctx context.Context, handle int, jobID string, ops attr.AttrOplList) error {
	return Manager(ctx, handle, ManageSet, attr.ClassJob, jobID, ops)
}

// AlterJobAsync is AlterJob without waiting for the server's confirmation.
func AlterJobAsync(ctx context.Context, handle int, jobID string, ops attr.AttrOplList) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad, err := attr.DefaultCodec.EncodeAttrOpList(ops)
	if err != nil {
		return err
	}
	_ = ad.Set("JobId", jobID)
	_ = ad.Set("Async", true)
	return wire.Send(ctx, c, wire.Request{Command: batchModifyJob, Body: ad})
}

// OrderJob swaps the relative execution order of two jobs in the same
// queue.
func OrderJob(ctx context.Context, handle int, job1, job2 string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("JobId1", job1)
	_ = ad.Set("JobId2", job2)
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchOrderJob, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("order jobs %s/%s: %w", job1, job2, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// ReleaseNodes releases some or all of a running job's assigned vnodes
// back to the server, per the release_nodes_on_stageout family of
// behavior; vnodeSpec is a vnode selection expression, or "" for all.
func ReleaseNodes(ctx context.Context, handle int, jobID, vnodeSpec string) error {
	return simpleJobAction(ctx, handle, batchRelnodesJob, jobID, "VnodeSpec", vnodeSpec)
}

// PreemptJobs requests the server preempt every job in jobIDs (by
// suspend/checkpoint/requeue, the scheduler's choice), returning a map from
// job ID to the method actually used, or an error string if that job could
// not be preempted.
func PreemptJobs(ctx context.Context, handle int, jobIDs []string) (map[string]string, error) {
	c, err := conn(handle)
	if err != nil {
		return nil, err
	}
	ad := classad.New()
	_ = ad.Set("JobIds", joinCommaList(jobIDs))
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchRunJob, Body: ad}, true)
	if err != nil {
		return nil, fmt.Errorf("preempt jobs: %w", err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return nil, err
	}
	results := make(map[string]string, len(reply.Ads))
	for _, resultAd := range reply.Ads {
		jobID, _ := resultAd.EvaluateAttrString("JobId")
		method, _ := resultAd.EvaluateAttrString("Method")
		results[jobID] = method
	}
	return results, nil
}

// JobResult is one job's outcome within a batch request that reports
// per-id status, such as DeleteJobList: a missing id comes back with
// Code CodeUnkJobID, and a completed/history job comes back with
// CodeHistJobID and a Message with the id already interpolated.
type JobResult struct {
	JobID   string
	Code    Code
	Message string
}

// Err returns the result as an *Error, or nil if the job's own deletion
// succeeded.
func (r JobResult) Err() error {
	if r.Code == CodeNone {
		return nil
	}
	return &Error{Code: r.Code, Message: r.Message}
}

// DeleteJobList removes every job in jobIDs, de-duplicating the list first
// (a caller-built list from shell globs commonly repeats an ID), and
// returns one JobResult per surviving (deduplicated) id in request order.
// A non-nil error return means the request as a whole failed (connection
// or transport failure, or a reply the server rejected outright); a job
// missing from the server's per-id reply list is treated as having
// succeeded, matching how a reply with fewer result ads than request ids
// has historically been read as "the rest are fine".
func DeleteJobList(ctx context.Context, handle int, jobIDs []string) ([]JobResult, error) {
	c, err := conn(handle)
	if err != nil {
		return nil, err
	}
	deduped := attr.DedupJobIDs(jobIDs)
	ad := classad.New()
	_ = ad.Set("JobIds", joinCommaList(deduped))
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchDelJobList, Body: ad}, true)
	if err != nil {
		return nil, fmt.Errorf("delete job list: %w", err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return nil, err
	}

	perID := make(map[string]JobResult, len(reply.Ads))
	for _, resultAd := range reply.Ads {
		jobID, _ := resultAd.EvaluateAttrString("JobId")
		code, _ := resultAd.EvaluateAttrInt("Code")
		message, _ := resultAd.EvaluateAttrString("Message")
		perID[jobID] = JobResult{JobID: jobID, Code: Code(code), Message: message}
	}

	results := make([]JobResult, len(deduped))
	for i, jobID := range deduped {
		if r, ok := perID[jobID]; ok {
			results[i] = r
		} else {
			results[i] = JobResult{JobID: jobID, Code: CodeNone}
		}
	}
	return results, nil
}

func joinCommaList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ","
		}
		out += item
	}
	return out
}
