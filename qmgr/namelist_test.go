package qmgr

import "testing"

func TestParseNameList(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []Name
		wantErr bool
	}{
		{name: "empty", in: "", want: nil},
		{name: "single bare name", in: "workq", want: []Name{{Object: "workq"}}},
		{name: "name at server", in: "workq@server1", want: []Name{{Object: "workq", Server: "server1"}}},
		{name: "bare server wildcard", in: "@server1", want: []Name{{Server: "server1"}}},
		{name: "multiple names", in: "workq, batch, gpu", want: []Name{
			{Object: "workq"}, {Object: "batch"}, {Object: "gpu"},
		}},
		{name: "server half of a name@server may start with a digit", in: "workq@10node1", want: []Name{{Object: "workq", Server: "10node1"}}},
		{name: "trailing comma is an error", in: "workq,", wantErr: true},
		{name: "bare @ is an error", in: "@", wantErr: true},
		{name: "double @ is an error", in: "workq@a@b", wantErr: true},
		{name: "attribute-like name must start alphabetic", in: "1bad@server1", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseNameList(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseNameList(%q) = nil error, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNameList(%q) unexpected error: %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("ParseNameList(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("ParseNameList(%q)[%d] = %+v, want %+v", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}
