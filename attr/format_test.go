package attr

import "testing"

func TestParseSize(t *testing.T) {
	cases := map[string]int64{
		"1024":  1024,
		"8gb":   8 << 30,
		"512mw": 512 << 20 * 8,
		"1kb":   1 << 10,
		"4w":    32,
	}
	for in, want := range cases {
		got, err := ParseSize(in)
		if err != nil {
			t.Fatalf("ParseSize(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSize(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "gb", "10xy"} {
		if _, err := ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q): expected error", in)
		}
	}
}

func TestFormatSizeRoundTrip(t *testing.T) {
	for _, bytes := range []int64{0, 1024, 8 << 30, 5} {
		s := FormatSize(bytes)
		got, err := ParseSize(s)
		if err != nil {
			t.Fatalf("ParseSize(%q) failed: %v", s, err)
		}
		if got != bytes {
			t.Errorf("round trip %d -> %q -> %d", bytes, s, got)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := map[string]int64{
		"30":       30,
		"1:00":     60,
		"01:00:00": 3600,
		"0:00:05":  5,
	}
	for in, want := range cases {
		got, err := ParseDuration(in)
		if err != nil {
			t.Fatalf("ParseDuration(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseDuration(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(3661); got != "01:01:01" {
		t.Errorf("FormatDuration(3661) = %q, want 01:01:01", got)
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"true", "T", "y", "1", "Yes"}
	for _, s := range truthy {
		b, err := ParseBool(s)
		if err != nil || !b {
			t.Errorf("ParseBool(%q) = %v, %v; want true, nil", s, b, err)
		}
	}
	falsy := []string{"false", "F", "n", "0"}
	for _, s := range falsy {
		b, err := ParseBool(s)
		if err != nil || b {
			t.Errorf("ParseBool(%q) = %v, %v; want false, nil", s, b, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Error("expected error for invalid boolean")
	}
}
