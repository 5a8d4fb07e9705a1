// Package wire implements the PBS administrative protocol's transport
// layer: connection establishment and the process-wide connection table the
// IFL façade indexes requests against by integer handle, carried over a
// CEDAR stream.
package wire

import (
	"context"
	"fmt"
	"sync"

	"github.com/bbockelm/cedar/client"
	"github.com/bbockelm/cedar/security"
	"github.com/bbockelm/cedar/stream"
)

// Conn is one administrative connection to a server: a CEDAR stream plus the
// per-connection state (last error, authenticated user) the IFL layer
// surfaces through pbs_errno-style accessors. Every field is guarded by mu so
// a connection handle can be safely shared across goroutines the way the
// original library's global connection table was shared across threads.
type Conn struct {
	mu sync.Mutex

	client  *client.HTCondorClient
	stream  *stream.Stream
	address string
	user    string

	lastErrno int
	lastErr   string
}

// table is the process-wide connection table: handles returned by Connect
// index into it, mirroring the C library's static array of per-connection
// structs indexed by the small integer pbs_connect returns.
var table struct {
	mu     sync.Mutex
	conns  map[int]*Conn
	nextID int
}

func init() {
	table.conns = make(map[int]*Conn)
	table.nextID = 1
}

// Connect establishes a connection to address (host:port, or a CEDAR sinful
// string) and performs the security handshake for the command in
// secConfig, registering the
// result in the process-wide table and returning its handle.
func Connect(ctx context.Context, address string, secConfig *security.SecurityConfig) (int, error) {
	htClient, err := client.ConnectToAddress(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("connect to %s: %w", address, err)
	}

	cedarStream := htClient.GetStream()
	auth := security.NewAuthenticator(secConfig, cedarStream)
	negotiation, err := auth.ClientHandshake(ctx)
	if err != nil {
		_ = htClient.Close()
		return 0, fmt.Errorf("security handshake with %s: %w", address, err)
	}
	cedarStream.SetAuthenticated(true)

	c := &Conn{
		client:  htClient,
		stream:  cedarStream,
		address: address,
		user:    negotiation.User,
	}

	table.mu.Lock()
	handle := table.nextID
	table.nextID++
	table.conns[handle] = c
	table.mu.Unlock()

	return handle, nil
}

// Lookup returns the Conn registered under handle, or nil if it has been
// disconnected or was never valid. Every IFL entry point starts by doing
// this lookup before touching the stream.
func Lookup(handle int) *Conn {
	table.mu.Lock()
	defer table.mu.Unlock()
	return table.conns[handle]
}

// Disconnect closes the connection registered under handle and removes it
// from the table. Calling it twice on the same handle is not an error; the
// second call is a no-op, matching pbs_disconnect's tolerance of a
// double-disconnect.
func Disconnect(handle int) error {
	table.mu.Lock()
	c := table.conns[handle]
	delete(table.conns, handle)
	table.mu.Unlock()

	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Stream returns the underlying CEDAR stream for low-level codec use.
func (c *Conn) Stream() *stream.Stream {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream
}

// User returns the authenticated username negotiated for this connection.
func (c *Conn) User() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// SetError records the last error code/message for this connection, the
// values a subsequent pbs_errno/pbs_geterrmsg-style accessor reads back.
func (c *Conn) SetError(code int, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErrno = code
	c.lastErr = message
}

// LastError returns the most recently recorded error code and message.
func (c *Conn) LastError() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErrno, c.lastErr
}
