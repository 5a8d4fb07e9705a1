package attr

import "testing"

func TestParseEntityLimitsBasic(t *testing.T) {
	limits, err := ParseEntityLimits("[u:alice=10,g:staff=5]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limits) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(limits))
	}
	if limits[0].Class != "u" || limits[0].Name != "alice" || limits[0].Limit != "10" {
		t.Errorf("unexpected first entry: %+v", limits[0])
	}
	if limits[1].Class != "g" || limits[1].Name != "staff" || limits[1].Limit != "5" {
		t.Errorf("unexpected second entry: %+v", limits[1])
	}
}

func TestParseEntityLimitsEmpty(t *testing.T) {
	limits, err := ParseEntityLimits("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limits != nil {
		t.Errorf("expected nil for empty value, got %+v", limits)
	}
}

func TestParseEntityLimitsDuplicate(t *testing.T) {
	_, err := ParseEntityLimits("[u:alice=10,u:alice=20]")
	if err == nil {
		t.Fatal("expected error for duplicate entry")
	}
}

func TestParseEntityLimitsBadClass(t *testing.T) {
	_, err := ParseEntityLimits("[x:alice=10]")
	if err == nil {
		t.Fatal("expected error for unknown class")
	}
}

func TestFormatEntityLimitsRoundTrip(t *testing.T) {
	limits := []EntityLimit{{Class: "u", Name: "alice", Limit: "10"}, {Class: "o", Name: "PBS_GENERIC", Limit: "100"}}
	formatted := FormatEntityLimits(limits)
	reparsed, err := ParseEntityLimits(formatted)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if len(reparsed) != len(limits) {
		t.Fatalf("round trip lost entries: %+v", reparsed)
	}
}
