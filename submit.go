package pbs

import (
	"context"
	"fmt"

	"github.com/openpbs/go-pbs/attr"
	"github.com/openpbs/go-pbs/ecl"
	"github.com/openpbs/go-pbs/wire"
)

// SubmitJob submits a new job to queue (""  lets the server pick the
// default queue), verifying ops against the job attribute catalog before
// anything reaches the wire, and returns the new job id on success.
func SubmitJob(ctx context.Context, handle int, queue string, ops attr.AttrOplList) (string, error) {
	c, err := conn(handle)
	if err != nil {
		return "", err
	}

	verifyCtx := ecl.VerifyContext{Class: attr.ClassJob, Command: "submit"}
	if err := ecl.VerifyAttrOpList(verifyCtx, ops); err != nil {
		return "", fmt.Errorf("submit job: %w", err)
	}

	ad, err := attr.DefaultCodec.EncodeAttrOpList(ops)
	if err != nil {
		return "", fmt.Errorf("submit job: %w", err)
	}
	if queue != "" {
		_ = ad.Set("Queue", queue)
	}

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchQueueJob, Body: ad}, true)
	if err != nil {
		return "", fmt.Errorf("submit job: %w", err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return "", err
	}
	if len(reply.Ads) == 0 {
		return "", fmt.Errorf("submit job: server returned no job id")
	}
	jobID, _ := reply.Ads[0].EvaluateAttrString("JobId")
	if jobID == "" {
		return "", fmt.Errorf("submit job: server reply missing JobId")
	}
	return jobID, nil
}

// SubmitResv creates a new advance reservation from ops, returning its
// reservation id. The reservation attribute catalog (ClassResv) gates which
// names are legal the same way job submission does.
func SubmitResv(ctx context.Context, handle int, ops attr.AttrOplList) (string, error) {
	c, err := conn(handle)
	if err != nil {
		return "", err
	}

	verifyCtx := ecl.VerifyContext{Class: attr.ClassResv, Command: "submit"}
	if err := ecl.VerifyAttrOpList(verifyCtx, ops); err != nil {
		return "", fmt.Errorf("submit reservation: %w", err)
	}

	ad, err := attr.DefaultCodec.EncodeAttrOpList(ops)
	if err != nil {
		return "", fmt.Errorf("submit reservation: %w", err)
	}

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchSubmitResv, Body: ad}, true)
	if err != nil {
		return "", fmt.Errorf("submit reservation: %w", err)
	}
	if err := errorFromReply(reply.Code, reply.Message); err != nil {
		return "", err
	}
	if len(reply.Ads) == 0 {
		return "", fmt.Errorf("submit reservation: server returned no reservation id")
	}
	resvID, _ := reply.Ads[0].EvaluateAttrString("ResvId")
	if resvID == "" {
		return "", fmt.Errorf("submit reservation: server reply missing ResvId")
	}
	return resvID, nil
}

// ModifyResv applies ops to an existing reservation, verified the same way
// a manage request is.
func ModifyResv(ctx context.Context, handle int, resvID string, ops attr.AttrOplList) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}

	verifyCtx := ecl.VerifyContext{Class: attr.ClassResv, Command: "set"}
	if err := ecl.VerifyAttrOpList(verifyCtx, ops); err != nil {
		return fmt.Errorf("modify reservation %s: %w", resvID, err)
	}

	ad, err := attr.DefaultCodec.EncodeAttrOpList(ops)
	if err != nil {
		return fmt.Errorf("modify reservation %s: %w", resvID, err)
	}
	_ = ad.Set("ResvId", resvID)

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchModifyResv, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("modify reservation %s: %w", resvID, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}
