package pbs

import (
	"context"
	"fmt"

	"github.com/PelicanPlatform/classad/classad"
	"github.com/openpbs/go-pbs/wire"
)

// DeleteResv removes an advance or standing reservation by id.
func DeleteResv(ctx context.Context, handle int, resvID string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("ResvId", resvID)
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchDeleteResv, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("delete reservation %s: %w", resvID, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// ConfirmResv confirms a reservation the scheduler has chosen a time/node
// assignment for, optionally pinning it to assignment (a vnode selection
// expression; "" lets the server use the scheduler's own choice already on
// file for this reservation).
func ConfirmResv(ctx context.Context, handle int, resvID, assignment string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("ResvId", resvID)
	if assignment != "" {
		_ = ad.Set("Assignment", assignment)
	}
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchConfirmResv, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("confirm reservation %s: %w", resvID, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// TerminateResv ends a running reservation immediately, releasing any jobs
// still queued inside it back to their original queue.
func TerminateResv(ctx context.Context, handle int, resvID string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad := classad.New()
	_ = ad.Set("ResvId", resvID)
	_ = ad.Set("Terminate", true)
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchDeleteResv, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("terminate reservation %s: %w", resvID, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}
