package pbs

import "testing"

func TestCodeString(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{CodeNone, "PBSE_NONE"},
		{CodeUnkJobID, "PBSE_UNKJOBID"},
		{CodeHistJobID, "PBSE_HISTJOBID"},
		{Code(99999), "PBSE_99999"},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.want {
			t.Errorf("Code(%d).String() = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestErrorFromReply(t *testing.T) {
	if err := errorFromReply(0, "ignored on success"); err != nil {
		t.Fatalf("errorFromReply(0, ...) = %v, want nil", err)
	}

	err := errorFromReply(int(CodeNoPerm), "not authorized")
	if err == nil {
		t.Fatal("errorFromReply(non-zero, ...) = nil, want error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("errorFromReply returned %T, want *Error", err)
	}
	if perr.Code != CodeNoPerm || perr.Message != "not authorized" {
		t.Errorf("got %+v", perr)
	}
}

func TestErrorErrorString(t *testing.T) {
	withMsg := &Error{Code: CodeNoPerm, Message: "not authorized"}
	if got, want := withMsg.Error(), "PBSE_NOPERM: not authorized"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noMsg := &Error{Code: CodeNoPerm}
	if got, want := noMsg.Error(), "PBSE_NOPERM"; got != want {
		t.Errorf("Error() with empty message = %q, want %q", got, want)
	}
}
