package wire

import "testing"

func TestConnTableLookupAndDisconnect(t *testing.T) {
	c := &Conn{address: "test:15001"}

	table.mu.Lock()
	handle := table.nextID
	table.nextID++
	table.conns[handle] = c
	table.mu.Unlock()

	if got := Lookup(handle); got != c {
		t.Fatalf("Lookup(%d) = %v, want %v", handle, got, c)
	}

	c.SetError(15001, "no such object")
	code, msg := c.LastError()
	if code != 15001 || msg != "no such object" {
		t.Errorf("LastError() = %d, %q", code, msg)
	}

	if err := Disconnect(handle); err != nil {
		t.Fatalf("Disconnect: unexpected error: %v", err)
	}
	if got := Lookup(handle); got != nil {
		t.Errorf("Lookup after disconnect = %v, want nil", got)
	}
	// Disconnecting again must be a no-op, not an error.
	if err := Disconnect(handle); err != nil {
		t.Errorf("second Disconnect: unexpected error: %v", err)
	}
}
