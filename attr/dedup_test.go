package attr

import (
	"reflect"
	"testing"
)

func TestDedupJobIDs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"no dupes", []string{"1.s", "2.s", "3.s"}, []string{"1.s", "2.s", "3.s"}},
		{
			// spec §8 scenario 6: deljoblist([1,2,2,3]) dedupes the repeated 2,
			// preserving first-occurrence order.
			"spec scenario 6", []string{"1.s", "2.s", "2.s", "3.s"}, []string{"1.s", "2.s", "3.s"},
		},
		{"all dupes", []string{"1.s", "1.s", "1.s"}, []string{"1.s"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DedupJobIDs(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("DedupJobIDs(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
