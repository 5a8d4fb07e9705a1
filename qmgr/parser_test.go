package qmgr

import (
	"testing"

	"github.com/openpbs/go-pbs/attr"
)

func TestParseCreateQueue(t *testing.T) {
	d, err := Parse("create queue workq")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Command != CmdCreate || d.Object != attr.ClassQueue {
		t.Fatalf("got command=%v object=%v", d.Command, d.Object)
	}
	if len(d.Names) != 1 || d.Names[0].Object != "workq" {
		t.Fatalf("got names=%v", d.Names)
	}
}

func TestParseSetWithAttrs(t *testing.T) {
	d, err := Parse("set queue workq queue_type=execution,enabled=true")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Ops) != 2 {
		t.Fatalf("got %d ops, want 2: %+v", len(d.Ops), d.Ops)
	}
	if d.Ops[0].Name != "queue_type" || d.Ops[0].Value != "execution" || d.Ops[0].Op != attr.OpSet {
		t.Errorf("op[0] = %+v", d.Ops[0])
	}
	if d.Ops[1].Name != "enabled" || d.Ops[1].Value != "true" {
		t.Errorf("op[1] = %+v", d.Ops[1])
	}
}

func TestParseUnsetNoValue(t *testing.T) {
	d, err := Parse("unset queue workq resources_max.ncpus")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Ops) != 1 {
		t.Fatalf("got %d ops, want 1: %+v", len(d.Ops), d.Ops)
	}
	op := d.Ops[0]
	if op.Name != "resources_max" || op.Resource != "ncpus" || op.Op != attr.OpUnset {
		t.Errorf("op = %+v", op)
	}
}

func TestParseIncrDecrOperators(t *testing.T) {
	d, err := Parse("set queue workq max_queuable+=5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Ops[0].Op != attr.OpIncr || d.Ops[0].Value != "5" {
		t.Errorf("op = %+v", d.Ops[0])
	}

	d, err = Parse("set queue workq max_queuable-=5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Ops[0].Op != attr.OpDecr || d.Ops[0].Value != "5" {
		t.Errorf("op = %+v", d.Ops[0])
	}
}

func TestParseCommandPrefix(t *testing.T) {
	d, err := Parse("p server")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Command != CmdPrint {
		t.Errorf("got command %v, want CmdPrint", d.Command)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	if _, err := Parse("frobnicate server"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestParseHookImport(t *testing.T) {
	d, err := Parse("import hook myhook application/x-python default /tmp/myhook.py")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Command != CmdImport {
		t.Fatalf("got command %v", d.Command)
	}
	if len(d.Names) != 1 || d.Names[0].Object != "myhook" {
		t.Fatalf("got names=%v", d.Names)
	}
	if d.ContentType != "application/x-python" || d.Encoding != "default" || d.File != "/tmp/myhook.py" {
		t.Errorf("got contentType=%q encoding=%q file=%q", d.ContentType, d.Encoding, d.File)
	}
}

func TestParseEntityLimitAllowsWhitespace(t *testing.T) {
	// max_run is an entity-limit attribute; quoting its value lets the
	// internal commas survive SplitTopLevel's unquoted comma splitting,
	// and the quoted region keeps its embedded spaces.
	d, err := Parse(`set queue workq acl_user_enable=true,max_run="[u:bob = 5, g:staff = 10]"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Ops) != 2 {
		t.Fatalf("got %d ops, want 2: %+v", len(d.Ops), d.Ops)
	}
	if d.Ops[1].Name != "max_run" || d.Ops[1].Value != "[u:bob = 5, g:staff = 10]" {
		t.Errorf("op[1] = %+v", d.Ops[1])
	}
}

func TestParseNoObjCommandsTakeNoObject(t *testing.T) {
	for _, line := range []string{"quit", "exit", "help", "history"} {
		if _, err := Parse(line); err != nil {
			t.Errorf("Parse(%q): %v", line, err)
		}
	}
}
