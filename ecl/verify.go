package ecl

import (
	"github.com/openpbs/go-pbs/attr"
)

// VerifyFunc is the shape of the client-side verification entry point. It is
// stored in a package variable rather than called directly so a caller can
// swap in a permissive stub, mirroring the original library's
// pfn_pbs_verify_attributes function-pointer indirection (used historically
// to let a single client binary link against either a verifying or
// non-verifying build of the library).
type VerifyFunc func(ctx VerifyContext, ops attr.AttrOplList) error

// pfnVerifyAttributes is the active verification function. Tests and
// programs that want to bypass verification entirely can replace it; the
// default performs full catalog + datatype + value verification.
var pfnVerifyAttributes VerifyFunc = verifyAttrOpList

// disabled mirrors set_no_attribute_verification/SLOT_INCR_SIZE era global
// toggle: once set, VerifyAttrOpList becomes a no-op for the life of the
// process. There is no way to turn it back on, matching the original.
var disabled bool

// SetNoAttributeVerification permanently disables attribute verification for
// the remainder of the process's life.
func SetNoAttributeVerification() { disabled = true }

// VerifyAttrOpList verifies every operation in ops against the catalog
// referenced by ctx.Class, accumulating every failure rather than stopping
// at the first one. It returns a non-nil ErrorList (as an error) only
// when at least one operation failed.
func VerifyAttrOpList(ctx VerifyContext, ops attr.AttrOplList) error {
	if disabled {
		return nil
	}
	return pfnVerifyAttributes(ctx, ops)
}

func verifyAttrOpList(ctx VerifyContext, ops attr.AttrOplList) error {
	var errs ErrorList
	for _, op := range ops {
		if err := verifyOne(ctx, op); err != nil {
			errs = append(errs, AttrErr{Op: op, Code: classifyErr(err), Message: err.Error()})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func verifyOne(ctx VerifyContext, op attr.AttrOpl) error {
	entry, ok := attr.Default.Find(ctx.Class, op.Name)
	if !ok {
		return &attr.ErrNoAttr{Class: ctx.Class, Name: op.Name}
	}
	if op.Op != attr.OpInternal && entry.ReadOnly() {
		return errReadOnly{name: op.Name}
	}
	if op.Op == attr.OpUnset {
		// An unset carries no value, so there is nothing to check past
		// the catalog and read-only tests.
		return nil
	}
	if err := VerifyDatatype(entry.Datatype, op.Value); err != nil {
		return err
	}
	if err := VerifyValue(entry.Value, ctx, op); err != nil {
		return err
	}
	return nil
}

type errReadOnly struct{ name string }

func (e errReadOnly) Error() string { return e.name + " is read-only" }

func classifyErr(err error) Code {
	switch err.(type) {
	case *attr.ErrNoAttr:
		return CodeNoAttr
	case errReadOnly:
		return CodeReadOnly
	default:
		return CodeBadAttr
	}
}
