package attr

import (
	"fmt"
	"strings"
)

// EntityLimit is one entry of an entity-limit attribute value:
// [u:name|g:name|o:name|p:name=limit ...]. The limit string itself may
// carry whitespace when quoted by the qmgr value parser; ParseEntityLimits
// does not care how the whitespace got there, only that it is balanced.
type EntityLimit struct {
	Class string // "u", "g", "o", or "p"
	Name  string
	Limit string
}

var validEntClasses = map[string]bool{"u": true, "g": true, "o": true, "p": true}

// ParseEntityLimits parses an entity-limit attribute value of the form
// "[u:alice=10,g:staff=5]" (brackets optional, comma- or space-separated
// entries). Duplicate (class, name) pairs within the same value are
// rejected per spec §3's invariant on entity-limit attributes.
func ParseEntityLimits(value string) ([]EntityLimit, error) {
	v := strings.TrimSpace(value)
	v = strings.TrimPrefix(v, "[")
	v = strings.TrimSuffix(v, "]")
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	fields := splitEntLimFields(v)
	seen := make(map[string]bool, len(fields))
	out := make([]EntityLimit, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		el, err := parseOneEntLim(f)
		if err != nil {
			return nil, err
		}
		key := el.Class + ":" + el.Name
		if seen[key] {
			return nil, fmt.Errorf("duplicate entity limit entry %s:%s", el.Class, el.Name)
		}
		seen[key] = true
		out = append(out, el)
	}
	return out, nil
}

// splitEntLimFields splits on commas or unquoted whitespace that separates
// "class:name=limit" entries, while keeping a quoted limit's internal
// whitespace intact.
func splitEntLimFields(v string) []string {
	var fields []string
	var cur strings.Builder
	depth := 0
	for _, r := range v {
		switch {
		case r == '"' || r == '\'':
			depth ^= 1
			cur.WriteRune(r)
		case depth == 0 && (r == ',' ):
			fields = append(fields, cur.String())
			cur.Reset()
		case depth == 0 && (r == ' ' || r == '\t') && cur.Len() > 0 && strings.Contains(cur.String(), "=") && !strings.HasSuffix(strings.TrimSpace(cur.String()), "="):
			fields = append(fields, cur.String())
			cur.Reset()
		case depth == 0 && (r == ' ' || r == '\t') && cur.Len() == 0:
			// leading whitespace between fields, skip
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}

func parseOneEntLim(f string) (EntityLimit, error) {
	colon := strings.IndexByte(f, ':')
	if colon < 0 {
		return EntityLimit{}, fmt.Errorf("malformed entity limit entry %q: missing ':'", f)
	}
	class := strings.TrimSpace(f[:colon])
	if !validEntClasses[class] {
		return EntityLimit{}, fmt.Errorf("malformed entity limit entry %q: unknown class %q", f, class)
	}
	rest := f[colon+1:]
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return EntityLimit{}, fmt.Errorf("malformed entity limit entry %q: missing '='", f)
	}
	name := strings.TrimSpace(rest[:eq])
	limit := strings.TrimSpace(rest[eq+1:])
	if name == "" || limit == "" {
		return EntityLimit{}, fmt.Errorf("malformed entity limit entry %q: empty name or limit", f)
	}
	return EntityLimit{Class: class, Name: name, Limit: limit}, nil
}

// FormatEntityLimits renders limits in the canonical bracketed form that
// qmgr's `list`/`print` re-emit, and that is itself re-parseable.
func FormatEntityLimits(limits []EntityLimit) string {
	parts := make([]string, 0, len(limits))
	for _, el := range limits {
		parts = append(parts, fmt.Sprintf("%s:%s=%s", el.Class, el.Name, el.Limit))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
