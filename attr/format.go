package attr

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses a size value of the form "<int>[k|m|g|t|p][b|w]", the
// canonical PBS size suffix grammar (e.g. "8gb", "512mw", "1024"). A bare
// "b"/"w" unit with no multiplier letter is also accepted. The returned
// value is always in bytes; a "w" (word) unit is treated as 8 bytes, the
// value OpenPBS itself compiles in for word size on every supported
// platform.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size value")
	}
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("malformed size value %q: no leading digits", s)
	}
	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed size value %q: %w", s, err)
	}
	suffix := strings.ToLower(s[i:])

	mult := int64(1)
	unit := int64(1)
	idx := 0
	switch {
	case strings.HasPrefix(suffix, "k"):
		mult = 1 << 10
		idx = 1
	case strings.HasPrefix(suffix, "m"):
		mult = 1 << 20
		idx = 1
	case strings.HasPrefix(suffix, "g"):
		mult = 1 << 30
		idx = 1
	case strings.HasPrefix(suffix, "t"):
		mult = 1 << 40
		idx = 1
	case strings.HasPrefix(suffix, "p"):
		mult = 1 << 50
		idx = 1
	}
	rest := suffix[idx:]
	switch rest {
	case "", "b":
		unit = 1
	case "w":
		unit = 8
	default:
		return 0, fmt.Errorf("malformed size value %q: unknown unit %q", s, rest)
	}
	return n * mult * unit, nil
}

// FormatSize renders bytes in the same "<int>kb"-style suffix form
// ParseSize accepts, picking the largest whole unit that divides evenly so
// round-tripping a value through qmgr print stays stable.
func FormatSize(bytes int64) string {
	units := []struct {
		suffix string
		size   int64
	}{
		{"pb", 1 << 50},
		{"tb", 1 << 40},
		{"gb", 1 << 30},
		{"mb", 1 << 20},
		{"kb", 1 << 10},
	}
	for _, u := range units {
		if bytes != 0 && bytes%u.size == 0 {
			return fmt.Sprintf("%d%s", bytes/u.size, u.suffix)
		}
	}
	return fmt.Sprintf("%db", bytes)
}

// ParseDuration parses a time value in either "[[HH:]MM:]SS" or bare-seconds
// integer form, the two forms the administrative protocol accepts for
// walltime/cput and similar resources.
func ParseDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}
	if !strings.Contains(s, ":") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed time value %q: %w", s, err)
		}
		return n, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("malformed time value %q: too many ':'-separated fields", s)
	}
	var secs int64
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed time value %q: %w", s, err)
		}
		secs = secs*60 + n
	}
	return secs, nil
}

// FormatDuration renders seconds as canonical "HH:MM:SS", the form qmgr and
// stat replies use for walltime-shaped resources.
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseBool accepts the handful of spellings OpenPBS treats as boolean
// attribute values: "true"/"false", "t"/"f", "y"/"n", "1"/"0", case folded.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "y", "yes", "1":
		return true, nil
	case "false", "f", "n", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("malformed boolean value %q", s)
	}
}

// FormatBool renders the canonical "True"/"False" spelling qmgr print uses.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
