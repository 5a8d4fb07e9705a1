package pbs

import (
	"context"
	"fmt"

	"github.com/openpbs/go-pbs/attr"
	"github.com/openpbs/go-pbs/wire"
)

// RegisterSched registers a scheduler instance (name, "" for the default
// scheduler) with the server, the handshake a scheduler daemon performs
// before it is allowed to issue run/preempt requests on jobs it did not
// submit.
func RegisterSched(ctx context.Context, handle int, name string, ops attr.AttrOplList) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}

	ad, err := attr.DefaultCodec.EncodeAttrOpList(ops)
	if err != nil {
		return fmt.Errorf("register scheduler %s: %w", name, err)
	}
	_ = ad.Set("Name", name)

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchRegisterSched, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("register scheduler %s: %w", name, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// Terminate requests the server shut itself down, per manner ("immediate",
// "delay", or "" for the server's default quiesce behavior): the last IFL
// call in spec §4.3's request list, used by qterm rather than qmgr.
func Terminate(ctx context.Context, handle int, manner string) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}
	ad, err := attr.DefaultCodec.EncodeAttrOpList(nil)
	if err != nil {
		return fmt.Errorf("terminate server: %w", err)
	}
	if manner != "" {
		_ = ad.Set("Manner", manner)
	}
	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchTerminate, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("terminate server: %w", err)
	}
	return errorFromReply(reply.Code, reply.Message)
}
