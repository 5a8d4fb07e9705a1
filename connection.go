package pbs

import (
	"context"
	"fmt"

	"github.com/openpbs/go-pbs/wire"
)

// Administrative protocol command codes, named the way the real wire
// protocol names them (PBS_BATCH_*), for the subset of requests this
// client implements.
const (
	batchConnect       = 0
	batchQueueJob      = 1
	batchStatusJob     = 20
	batchStatusQue     = 21
	batchStatusNode    = 22
	batchStatusSvr     = 23
	batchStatusSched   = 24
	batchStatusResv    = 25
	batchStatusRsc     = 26
	batchStatusHook    = 27
	batchManager       = 30
	batchSignalJob     = 40
	batchMessageJob    = 41
	batchHoldJob       = 42
	batchRlsJob        = 43
	batchRunJob        = 44
	batchRerunJob      = 45
	batchMoveJob       = 46
	batchLocateJob     = 47
	batchModifyJob     = 48
	batchOrderJob      = 49
	batchRelnodesJob   = 50
	batchDelJobList    = 51
	batchSubmitResv    = 60
	batchDeleteResv    = 61
	batchConfirmResv   = 62
	batchModifyResv    = 63
	batchRegisterSched = 70
	batchHookImport    = 80
	batchHookExport    = 81
	batchTerminate     = 90
)

// Connect establishes a new administrative connection to server (a
// "host:port" address) and returns a connection handle to pass to every
// other function in this package, matching pbs_connect's contract: the
// returned int is opaque to the caller and only meaningful as an argument
// to later calls.
func Connect(ctx context.Context, server string, cfg wire.ConfigSource) (int, error) {
	handle, err := wire.ConnectWithConfig(ctx, server, cfg, batchConnect)
	if err != nil {
		return 0, fmt.Errorf("pbs connect: %w", err)
	}
	return handle, nil
}

// ConnectExtend opens the same connection Connect does. The extend string
// is not sent to the server; a non-empty extend only adds a check that the
// new handle is still registered before it is returned.
func ConnectExtend(ctx context.Context, server string, cfg wire.ConfigSource, extend string) (int, error) {
	handle, err := Connect(ctx, server, cfg)
	if err != nil {
		return 0, err
	}
	if extend == "" {
		return handle, nil
	}
	conn := wire.Lookup(handle)
	if conn == nil {
		return 0, fmt.Errorf("pbs connect extend: connection vanished immediately after connect")
	}
	return handle, nil
}

// Disconnect closes the connection registered under handle.
func Disconnect(handle int) error {
	return wire.Disconnect(handle)
}

// conn looks up handle and converts a missing connection into the same
// error class pbs_errno would surface for a call on a stale connection.
func conn(handle int) (*wire.Conn, error) {
	c := wire.Lookup(handle)
	if c == nil {
		return nil, &Error{Code: CodeSvrDown, Message: "not connected"}
	}
	return c, nil
}
