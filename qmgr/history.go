package qmgr

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultHistorySize is the default bound on persisted history entries.
const DefaultHistorySize = 500

// History is a bounded ring of previously entered directives, persisted to
// disk at the end of each directive. If the file cannot be written,
// history falls back to in-memory only for the rest of the session (spec
// §5): Save failures are therefore not fatal, just silently absorbed after
// the first one, flagged via the degraded field.
type History struct {
	path     string
	maxSize  int
	entries  []string
	degraded bool
}

// HistoryPath resolves the history file location: $HOME/.pbs_qmgr_history,
// falling back to "<pbsHome>/spool/.pbs_qmgr_history" when HOME is unset.
func HistoryPath(pbsHome string) string {
	if home, ok := os.LookupEnv("HOME"); ok && home != "" {
		return filepath.Join(home, ".pbs_qmgr_history")
	}
	return filepath.Join(pbsHome, "spool", ".pbs_qmgr_history")
}

// NewHistory loads existing entries from path (if any) and returns a
// History bounded to maxSize entries (DefaultHistorySize if maxSize <= 0).
func NewHistory(path string, maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultHistorySize
	}
	h := &History{path: path, maxSize: maxSize}

	f, err := os.Open(path)
	if err != nil {
		return h
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.entries = append(h.entries, scanner.Text())
	}
	h.trim()
	return h
}

// Add appends line to the in-memory history and persists it, trimming to
// maxSize from the front.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.entries = append(h.entries, line)
	h.trim()
	h.save()
}

// Entries returns the current history, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Degraded reports whether history persistence has stopped working this
// session (the file became unwritable partway through).
func (h *History) Degraded() bool { return h.degraded }

func (h *History) trim() {
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

func (h *History) save() {
	if h.degraded || h.path == "" {
		return
	}
	f, err := os.Create(h.path)
	if err != nil {
		h.degraded = true
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range h.entries {
		fmt.Fprintln(w, e)
	}
	if err := w.Flush(); err != nil {
		h.degraded = true
	}
}
