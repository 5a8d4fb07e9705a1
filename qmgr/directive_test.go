package qmgr

import (
	"testing"

	"github.com/openpbs/go-pbs/attr"
)

func TestLookupCommandPrefix(t *testing.T) {
	cases := map[string]Command{
		"create": CmdCreate,
		"c":      CmdCreate,
		"p":      CmdPrint,
		"print":  CmdPrint,
		"s":      CmdSet,
		"u":      CmdUnset,
	}
	for word, want := range cases {
		got, ok := lookupCommand(word)
		if !ok || got != want {
			t.Errorf("lookupCommand(%q) = (%v, %v), want (%v, true)", word, got, ok, want)
		}
	}
}

func TestLookupCommandAmbiguousPrefixFails(t *testing.T) {
	// "e" matches both "exit" and "export".
	if _, ok := lookupCommand("e"); ok {
		t.Error("lookupCommand(\"e\") should be ambiguous")
	}
}

func TestLookupObject(t *testing.T) {
	cases := map[string]attr.ObjClass{
		"server": attr.ClassServer,
		"queue":  attr.ClassQueue,
		"q":      attr.ClassQueue,
		"node":   attr.ClassNode,
		"hook":   attr.ClassHook,
	}
	for word, want := range cases {
		got, ok := lookupObject(word)
		if !ok || got != want {
			t.Errorf("lookupObject(%q) = (%v, %v), want (%v, true)", word, got, ok, want)
		}
	}
}

func TestNameString(t *testing.T) {
	cases := []struct {
		n    Name
		want string
	}{
		{Name{Object: "workq"}, "workq"},
		{Name{Object: "workq", Server: "s1"}, "workq@s1"},
		{Name{Server: "s1"}, "@s1"},
	}
	for _, tc := range cases {
		if got := tc.n.String(); got != tc.want {
			t.Errorf("Name(%+v).String() = %q, want %q", tc.n, got, tc.want)
		}
	}
}
