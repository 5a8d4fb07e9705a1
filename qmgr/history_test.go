package qmgr

import (
	"path/filepath"
	"testing"
)

func TestHistoryAddAndPersist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	h := NewHistory(path, 3)
	h.Add("create queue workq")
	h.Add("set queue workq enabled=true")
	h.Add("set queue workq started=true")
	h.Add("print queue workq")

	got := h.Entries()
	want := []string{"set queue workq enabled=true", "set queue workq started=true", "print queue workq"}
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	h2 := NewHistory(path, 3)
	if len(h2.Entries()) != len(want) {
		t.Fatalf("reloaded history = %v, want %v", h2.Entries(), want)
	}
}

func TestHistoryDegradesOnUnwritablePath(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "missing-dir", "history"), 10)
	h.Add("create queue workq")
	if !h.Degraded() {
		t.Error("expected History to report degraded after a failed save")
	}
	if len(h.Entries()) != 1 {
		t.Errorf("Entries() = %v, want in-memory entry to survive", h.Entries())
	}
}
