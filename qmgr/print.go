package qmgr

import (
	"context"
	"fmt"
	"io"

	pbs "github.com/openpbs/go-pbs"
	"github.com/openpbs/go-pbs/attr"
)

// PrintObject renders one batch-status entry as a re-parseable qmgr
// directive sequence: a `create` line naming the object, followed by one
// `set` line per attribute reading, in the order the server returned them.
// This is the output `qmgr -c print ... | qmgr` round-trips through.
func PrintObject(w io.Writer, class attr.ObjClass, bs *attr.BatchStatus) error {
	if _, err := fmt.Fprintf(w, "create %s %s\n", class, bs.Name); err != nil {
		return err
	}
	for _, a := range bs.Attribs {
		key := a.Name
		if a.Resource != "" {
			key += "." + a.Resource
		}
		if _, err := fmt.Fprintf(w, "set %s %s %s = %s\n", class, bs.Name, key, quoteIfNeeded(a.Value)); err != nil {
			return err
		}
	}
	return nil
}

// quoteIfNeeded wraps value in double quotes when it contains characters
// the value parser would otherwise treat as a terminator (unquoted
// whitespace or a comma), so the printed line parses back to the same
// value.
func quoteIfNeeded(value string) string {
	needsQuote := false
	for i := 0; i < len(value); i++ {
		if value[i] == ' ' || value[i] == '\t' || value[i] == ',' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return value
	}
	return `"` + value + `"`
}

// PrintServer implements the special `print server` semantics (spec §4.7):
// emit, in order, all custom resources, then all queues (skipping any
// reservation-owned queue, identified by cross-referencing stat_resv),
// then the server object's own attributes.
func PrintServer(ctx context.Context, w io.Writer, handle int) error {
	resources, err := pbs.StatResc(ctx, handle, "", nil)
	if err != nil {
		return fmt.Errorf("print server: stat resource: %w", err)
	}
	for _, r := range resources {
		if err := PrintObject(w, attr.ClassResource, r); err != nil {
			return err
		}
	}

	resvs, err := pbs.StatResv(ctx, handle, "", []string{"queue"})
	if err != nil {
		return fmt.Errorf("print server: stat resv: %w", err)
	}
	resvQueues := make(map[string]bool, len(resvs))
	for _, r := range resvs {
		if q, ok := r.Attribs.Find("queue"); ok {
			resvQueues[q.Value] = true
		}
	}

	queues, err := pbs.StatQueue(ctx, handle, "", nil)
	if err != nil {
		return fmt.Errorf("print server: stat queue: %w", err)
	}
	for _, q := range queues {
		if resvQueues[q.Name] {
			continue
		}
		if err := PrintObject(w, attr.ClassQueue, q); err != nil {
			return err
		}
	}

	servers, err := pbs.StatServer(ctx, handle, nil)
	if err != nil {
		return fmt.Errorf("print server: stat server: %w", err)
	}
	for _, s := range servers {
		if err := PrintObject(w, attr.ClassServer, s); err != nil {
			return err
		}
	}
	return nil
}
