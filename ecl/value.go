package ecl

import (
	"fmt"
	"strings"

	"github.com/openpbs/go-pbs/attr"
)

// ValueVerifier is a context-aware check: unlike a datatype verifier it may
// need to know which object class and command the attribute is being set
// against, mirroring the (connect, batch_request, parent_object, attropl)
// signature every verify_value_* function in the administrative library
// takes.
type ValueVerifier func(ctx VerifyContext, op attr.AttrOpl) error

// VerifyContext carries the fields a value verifier may need beyond the
// attribute operation itself.
type VerifyContext struct {
	Class   attr.ObjClass
	Command string // e.g. "create", "set", "submit"
}

var valueVerifiers = map[attr.ValueVerifierID]ValueVerifier{
	attr.VVResource:      verifyResource,
	attr.VVHold:          verifyHold,
	attr.VVJoinPath:      verifyJoinPath,
	attr.VVKeepFiles:     verifyKeepFiles,
	attr.VVMailPoints:    verifyMailPoints,
	attr.VVJobArrayRange: verifyJobArrayRange,
	attr.VVPreemptOrder:  func(_ VerifyContext, op attr.AttrOpl) error { return VerifyPreemptOrder(op.Value) },
	attr.VVObjectName:    verifyObjectName,
	attr.VVQueueType:     verifyQueueType,
	attr.VVACL:           verifyACL,
}

// VerifyValue runs the value verifier registered for id, if any.
func VerifyValue(id attr.ValueVerifierID, ctx VerifyContext, op attr.AttrOpl) error {
	v, ok := valueVerifiers[id]
	if !ok {
		return nil
	}
	return v(ctx, op)
}

// verifyResource checks a Resource_List sub-entry against the resource
// sub-catalog: the attribute name alone is not enough, the resource name
// carried alongside it must also be registered.
func verifyResource(_ VerifyContext, op attr.AttrOpl) error {
	if op.Resource == "" {
		return fmt.Errorf("resource list attribute %q missing resource sub-name", op.Name)
	}
	entry, ok := attr.Default.FindResc(op.Resource)
	if !ok {
		return fmt.Errorf("unknown resource %q", op.Resource)
	}
	return VerifyDatatype(entry.Datatype, op.Value)
}

// verifyHold checks a Hold_Types value: a combination of the letters
// "u" (user), "o" (operator), "s" (system), or the literal "n" (none).
func verifyHold(_ VerifyContext, op attr.AttrOpl) error {
	v := op.Value
	if v == "n" {
		return nil
	}
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case 'u', 'o', 's':
		default:
			return fmt.Errorf("invalid hold type letter %q in %q", v[i], v)
		}
	}
	return nil
}

// verifyJoinPath checks Join_Path: "oe" (merge stderr into stdout), "eo"
// (merge stdout into stderr), or "n" (no merge).
func verifyJoinPath(_ VerifyContext, op attr.AttrOpl) error {
	switch op.Value {
	case "oe", "eo", "n":
		return nil
	default:
		return fmt.Errorf("invalid join path value %q", op.Value)
	}
}

// verifyKeepFiles checks Keep_Files: a combination of "o"/"e", or "n".
func verifyKeepFiles(_ VerifyContext, op attr.AttrOpl) error {
	v := op.Value
	if v == "n" {
		return nil
	}
	seen := map[byte]bool{}
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case 'o', 'e':
			if seen[v[i]] {
				return fmt.Errorf("duplicate keep files letter %q in %q", v[i], v)
			}
			seen[v[i]] = true
		default:
			return fmt.Errorf("invalid keep files letter %q in %q", v[i], v)
		}
	}
	return nil
}

// verifyMailPoints checks Mail_Points: a combination of "a" (abort), "b"
// (begin), "e" (end), or the literal "n" (none).
func verifyMailPoints(_ VerifyContext, op attr.AttrOpl) error {
	v := op.Value
	if v == "n" {
		return nil
	}
	seen := map[byte]bool{}
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case 'a', 'b', 'e':
			if seen[v[i]] {
				return fmt.Errorf("duplicate mail point letter %q in %q", v[i], v)
			}
			seen[v[i]] = true
		default:
			return fmt.Errorf("invalid mail point letter %q in %q", v[i], v)
		}
	}
	return nil
}

// verifyJobArrayRange checks an array_indices_submitted style range:
// "start-end[:step]", grounded on the subjob index range grammar the qsub
// -J option validates before ever contacting a server.
func verifyJobArrayRange(_ VerifyContext, op attr.AttrOpl) error {
	return VerifyJobArrayRange(op.Value)
}

// VerifyJobArrayRange implements the same grammar as the C chk_Jrange
// validator: "<start>-<end>[:<step>]" with 0 <= start < end and step >= 1.
func VerifyJobArrayRange(value string) error {
	main, step, hasStep := strings.Cut(value, ":")
	start, end, ok := strings.Cut(main, "-")
	if !ok {
		return fmt.Errorf("malformed job array range %q: expected start-end", value)
	}
	startN, err := parseNonNegativeLong(start)
	if err != nil {
		return fmt.Errorf("malformed job array range %q: %w", value, err)
	}
	endN, err := parseNonNegativeLong(end)
	if err != nil {
		return fmt.Errorf("malformed job array range %q: %w", value, err)
	}
	if startN >= endN {
		return fmt.Errorf("malformed job array range %q: start must be less than end", value)
	}
	if hasStep {
		stepN, err := parseNonNegativeLong(step)
		if err != nil {
			return fmt.Errorf("malformed job array range %q: %w", value, err)
		}
		if stepN < 1 {
			return fmt.Errorf("malformed job array range %q: step must be >= 1", value)
		}
	}
	return nil
}

func parseNonNegativeLong(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing number")
	}
	var n int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("not a positive number: %q", s)
		}
		n = n*10 + int64(s[i]-'0')
		if n >= maxLong {
			return 0, fmt.Errorf("number %q too large", s)
		}
	}
	return n, nil
}

// verifyObjectName is only invoked for object-creation commands: it checks
// the target object's own name field, not one of its attributes.
func verifyObjectName(ctx VerifyContext, op attr.AttrOpl) error {
	if ctx.Command != "create" {
		return nil
	}
	if op.Value == "" {
		return fmt.Errorf("object name must not be empty")
	}
	if strings.ContainsAny(op.Value, " \t\n@") {
		return fmt.Errorf("invalid object name %q", op.Value)
	}
	return nil
}

// verifyQueueType checks Queue_Type: "execution" or "route".
func verifyQueueType(_ VerifyContext, op attr.AttrOpl) error {
	switch op.Value {
	case "execution", "route", "e", "r":
		return nil
	default:
		return fmt.Errorf("invalid queue type %q", op.Value)
	}
}

// verifyACL checks an access-control-list value: a comma-separated list of
// names, optionally prefixed with "+" or "-".
func verifyACL(_ VerifyContext, op attr.AttrOpl) error {
	if op.Value == "" {
		return nil
	}
	for _, name := range strings.Split(op.Value, ",") {
		name = strings.TrimSpace(name)
		name = strings.TrimPrefix(name, "+")
		name = strings.TrimPrefix(name, "-")
		if name == "" {
			return fmt.Errorf("empty ACL entry in %q", op.Value)
		}
	}
	return nil
}
