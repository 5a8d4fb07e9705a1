package pbs

import (
	"context"
	"fmt"

	"github.com/openpbs/go-pbs/attr"
	"github.com/openpbs/go-pbs/ecl"
	"github.com/openpbs/go-pbs/wire"
)

// ManageCmd is the qmgr-level operation a Manager call performs.
type ManageCmd int

const (
	ManageSet ManageCmd = iota
	ManageUnset
	ManageCreate
	ManageDelete
)

func (c ManageCmd) String() string {
	switch c {
	case ManageSet:
		return "set"
	case ManageUnset:
		return "unset"
	case ManageCreate:
		return "create"
	case ManageDelete:
		return "delete"
	default:
		return "?"
	}
}

// Manager performs one create/set/unset/delete request against a single
// named object of the given class, verifying the attribute list locally
// before it ever reaches the wire (the same client-side gate qmgr itself
// runs its directives through).
func Manager(ctx context.Context, handle int, cmd ManageCmd, class attr.ObjClass, name string, ops attr.AttrOplList) error {
	c, err := conn(handle)
	if err != nil {
		return err
	}

	verifyCtx := ecl.VerifyContext{Class: class, Command: cmd.String()}
	if err := ecl.VerifyAttrOpList(verifyCtx, ops); err != nil {
		return fmt.Errorf("manage %s %s: %w", class, name, err)
	}

	ad, err := attr.DefaultCodec.EncodeAttrOpList(ops)
	if err != nil {
		return fmt.Errorf("manage %s %s: %w", class, name, err)
	}
	_ = ad.Set("Name", name)
	_ = ad.Set("ObjectType", class.String())
	_ = ad.Set("ManageCmd", cmd.String())

	reply, err := wire.RoundTrip(ctx, c, wire.Request{Command: batchManager, Body: ad}, false)
	if err != nil {
		return fmt.Errorf("manage %s %s: %w", class, name, err)
	}
	return errorFromReply(reply.Code, reply.Message)
}

// ManagerMulti runs a Manager request against every name in names, in
// order, stopping and returning the first error: qmgr's active-object-set
// fan-out for a single directive applies this same one-object-at-a-time
// semantics so a caller sees exactly which object in the set failed.
func ManagerMulti(ctx context.Context, handle int, cmd ManageCmd, class attr.ObjClass, names []string, ops attr.AttrOplList) error {
	for _, name := range names {
		if err := Manager(ctx, handle, cmd, class, name, ops); err != nil {
			return fmt.Errorf("object %q: %w", name, err)
		}
	}
	return nil
}
