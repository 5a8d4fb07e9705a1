// Package ecl is the client-side "Execution Control Layer" verifier: it
// checks an attribute-operation list against the attribute catalog before a
// request ever reaches the wire, matching datatypes and running
// attribute-specific value checks the way the administrative client library
// has always done before handing a request to the transport layer.
package ecl

import (
	"fmt"

	"github.com/openpbs/go-pbs/attr"
)

// AttrErr records one attribute operation that failed verification, mirroring
// the C ecl_attrerr structure: the offending operation plus an error code and
// message.
type AttrErr struct {
	Op      attr.AttrOpl
	Code    Code
	Message string
}

func (e AttrErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Op.Name, e.Message)
}

// ErrorList accumulates every AttrErr produced by one VerifyAttrOpList call,
// mirroring the C ecl_attribute_errors array: verification does not stop at
// the first bad attribute, it reports all of them so a caller can fix an
// entire qmgr command in one pass.
type ErrorList []AttrErr

func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	return fmt.Sprintf("%d attributes failed verification, first: %s", len(l), l[0].Error())
}

// Code is a verification failure classification, loosely corresponding to
// the PBSE_* taxonomy the server itself returns for the same failures.
type Code int

const (
	CodeNoAttr Code = iota
	CodeBadAttr
	CodeReadOnly
	CodePerm
	CodeBadACL
)

func (c Code) String() string {
	switch c {
	case CodeNoAttr:
		return "PBSE_NOATTR"
	case CodeBadAttr:
		return "PBSE_BADATVAL"
	case CodeReadOnly:
		return "PBSE_ATTRRO"
	case CodePerm:
		return "PBSE_PERM"
	case CodeBadACL:
		return "PBSE_BADACL"
	default:
		return "PBSE_UNKNOWN"
	}
}
