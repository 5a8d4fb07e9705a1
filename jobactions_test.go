package pbs

import "testing"

func TestJoinCommaList(t *testing.T) {
	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"1.server"}, "1.server"},
		{[]string{"1.server", "2.server", "3.server"}, "1.server,2.server,3.server"},
	}
	for _, c := range cases {
		if got := joinCommaList(c.items); got != c.want {
			t.Errorf("joinCommaList(%v) = %q, want %q", c.items, got, c.want)
		}
	}
}

func TestJobResultErr(t *testing.T) {
	ok := JobResult{JobID: "1.server", Code: CodeNone}
	if err := ok.Err(); err != nil {
		t.Errorf("JobResult{Code: CodeNone}.Err() = %v, want nil", err)
	}

	missing := JobResult{JobID: "2.server", Code: CodeUnkJobID}
	err := missing.Err()
	if err == nil {
		t.Fatal("JobResult{Code: CodeUnkJobID}.Err() = nil, want error")
	}
	if perr := err.(*Error); perr.Code != CodeUnkJobID {
		t.Errorf("Err().Code = %v, want %v", perr.Code, CodeUnkJobID)
	}

	// Scenario from spec §8 item 6: a history job's message already has the
	// id interpolated by the server; JobResult.Err must carry it through
	// verbatim rather than reformatting it.
	hist := JobResult{JobID: "3.server", Code: CodeHistJobID, Message: "Job 3.server is in history"}
	if err := hist.Err(); err.Error() != "PBSE_HISTJOBID: Job 3.server is in history" {
		t.Errorf("hist.Err() = %q", err.Error())
	}
}
