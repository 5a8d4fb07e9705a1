package qmgr

import (
	"context"
	"fmt"

	"github.com/openpbs/go-pbs/attr"
	"github.com/openpbs/go-pbs/ratelimit"
	"github.com/openpbs/go-pbs/wire"
)

// ActiveSet tracks qmgr's four active-object sets (servers, queues, nodes,
// schedulers), each keyed by name, plus the table of open server
// connections a name-list cross-references into. It is owned by the single
// qmgr session goroutine; spec §5 notes this needs no lock.
type ActiveSet struct {
	servers []string
	queues  []string
	nodes   []string
	scheds  []string

	// openConns maps a server address to its live connection handle, opened
	// on demand the first time a directive needs it.
	openConns map[string]int
	cfg       wire.ConfigSource
	defServer string

	// limiter throttles the per-server request rate of a directive's
	// (name x server) fan-out, so a broad `active server <every-server>`
	// followed by one directive cannot hammer every server at once.
	limiter *ratelimit.Limiter
}

// NewActiveSet creates an ActiveSet that opens connections using cfg for
// security/handshake defaults, with defServer as the server name a bare
// name (no "@server" suffix, no active-server override) resolves to.
func NewActiveSet(cfg wire.ConfigSource, defServer string) *ActiveSet {
	return &ActiveSet{
		openConns: make(map[string]int),
		cfg:       cfg,
		defServer: defServer,
		limiter:   ratelimit.NewLimiter(50, 10),
	}
}

// SetActive replaces class's active-object set with names (the directive
// `active <obj-type> <list>`).
func (a *ActiveSet) SetActive(class attr.ObjClass, names []string) error {
	switch class {
	case attr.ClassServer:
		a.servers = names
	case attr.ClassQueue:
		a.queues = names
	case attr.ClassNode:
		a.nodes = names
	case attr.ClassSched:
		a.scheds = names
	default:
		return fmt.Errorf("active-object sets are not supported for object class %s", class)
	}
	return nil
}

// Active returns the current active-object set for class.
func (a *ActiveSet) Active(class attr.ObjClass) []string {
	switch class {
	case attr.ClassServer:
		return a.servers
	case attr.ClassQueue:
		return a.queues
	case attr.ClassNode:
		return a.nodes
	case attr.ClassSched:
		return a.scheds
	default:
		return nil
	}
}

// ServerList resolves which servers a directive targets: an explicit
// per-name "@server" always wins; a bare name with no active servers falls
// back to defServer; otherwise every active server is targeted.
func (a *ActiveSet) ServerList(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	if len(a.servers) > 0 {
		return a.servers
	}
	return []string{a.defServer}
}

// Conn returns an open connection handle to server, opening one on demand
// if this is the first directive to need it. Every call is throttled per
// server so a wide active-object set can't flood a single server with a
// directive's fan-out.
func (a *ActiveSet) Conn(ctx context.Context, server string) (int, error) {
	if err := a.limiter.Wait(ctx, server); err != nil {
		return 0, fmt.Errorf("rate limit for server %s: %w", server, err)
	}
	if h, ok := a.openConns[server]; ok {
		return h, nil
	}
	h, err := wire.ConnectWithConfig(ctx, server, a.cfg, 0)
	if err != nil {
		return 0, fmt.Errorf("connect to server %s: %w", server, err)
	}
	a.openConns[server] = h
	return h, nil
}

// CloseAll disconnects every connection this ActiveSet has opened.
func (a *ActiveSet) CloseAll() {
	for server, h := range a.openConns {
		_ = wire.Disconnect(h)
		delete(a.openConns, server)
	}
}
