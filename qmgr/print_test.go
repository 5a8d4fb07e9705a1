package qmgr

import (
	"strings"
	"testing"

	"github.com/openpbs/go-pbs/attr"
)

func TestQuoteIfNeeded(t *testing.T) {
	cases := map[string]string{
		"execution":  "execution",
		"":           "",
		"a,b":        `"a,b"`,
		"has space":  `"has space"`,
		"tab\tchar":  "\"tab\tchar\"",
	}
	for in, want := range cases {
		if got := quoteIfNeeded(in); got != want {
			t.Errorf("quoteIfNeeded(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrintObjectRoundTrips(t *testing.T) {
	bs := &attr.BatchStatus{
		Name: "workq",
		Attribs: attr.AttrLList{
			{Name: "queue_type", Value: "execution"},
			{Name: "resources_max", Resource: "ncpus", Value: "16"},
			{Name: "acl_users", Value: "alice,bob"},
		},
	}

	var out strings.Builder
	if err := PrintObject(&out, attr.ClassQueue, bs); err != nil {
		t.Fatalf("PrintObject: %v", err)
	}

	got := out.String()
	wantLines := []string{
		"create queue workq",
		"set queue workq queue_type = execution",
		"set queue workq resources_max.ncpus = 16",
		`set queue workq acl_users = "alice,bob"`,
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("PrintObject output missing line %q; got:\n%s", line, got)
		}
	}

	// The quoted acl_users line must parse back to the same attr op.
	d, err := Parse(wantLines[3])
	if err != nil {
		t.Fatalf("re-parsing printed line: %v", err)
	}
	if len(d.Ops) != 1 || d.Ops[0].Value != "alice,bob" {
		t.Errorf("round-tripped op = %+v, want value %q", d.Ops, "alice,bob")
	}
}
