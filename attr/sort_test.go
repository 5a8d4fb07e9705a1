package attr

import "testing"

func TestSortBatchStatus(t *testing.T) {
	list := BatchStatusList{
		{Name: "charlie"},
		{Name: "alice"},
		{Name: "bob"},
	}
	SortBatchStatus(list)
	want := []string{"alice", "bob", "charlie"}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("list[%d].Name = %q, want %q", i, list[i].Name, name)
		}
	}
}

func TestFindBatchStatusByName(t *testing.T) {
	list := BatchStatusList{{Name: "a"}, {Name: "b"}}
	if bs := FindBatchStatusByName(list, "b"); bs == nil || bs.Name != "b" {
		t.Errorf("expected to find %q", "b")
	}
	if bs := FindBatchStatusByName(list, "missing"); bs != nil {
		t.Errorf("expected nil for missing name, got %+v", bs)
	}
}

func TestDedupJobIDsKeepsFirstOccurrence(t *testing.T) {
	ids := []string{"1.server", "2.server", "1.server", "3.server", "2.server"}
	got := DedupJobIDs(ids)
	want := []string{"1.server", "2.server", "3.server"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
