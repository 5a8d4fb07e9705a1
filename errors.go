// Package pbs is the client-side IFL façade: one function per
// administrative request kind. Each function looks up the handle's wire
// connection and sends its request directly; there is no function-pointer
// indirection to substitute a mock through.
package pbs

import "fmt"

// Code is a PBSE_* status code returned in a reply's ErrorCode field.
type Code int

// A representative slice of the PBSE_* taxonomy: the codes this client
// library itself needs to recognize and branch on. The full catalog has
// several hundred entries; callers that need an exact code not named here
// can still inspect Error.Code numerically.
const (
	CodeNone             Code = 0
	CodeUnkJobID         Code = 15001
	CodeNoAttr           Code = 15002
	CodeAttrRO           Code = 15004
	CodeNoPerm           Code = 15007
	CodeBadUser          Code = 15010
	CodeNoQueue          Code = 15018
	CodeQUnoEnb          Code = 15021
	CodeQAcsDny          Code = 15022
	CodeBadAcl           Code = 15025
	CodeBadAtVal         Code = 15034
	CodeSysRq            Code = 15085
	CodeSvrDown          Code = 15008
	CodeDuplicateAttrOpl Code = 15170
	CodeJobNotFound      Code = 15011
	CodeHistJobID        Code = 15205
	CodeUnknown          Code = 1
)

var codeNames = map[Code]string{
	CodeNone:             "PBSE_NONE",
	CodeUnkJobID:         "PBSE_UNKJOBID",
	CodeNoAttr:           "PBSE_NOATTR",
	CodeAttrRO:           "PBSE_ATTRRO",
	CodeNoPerm:           "PBSE_NOPERM",
	CodeBadUser:          "PBSE_BADUSER",
	CodeNoQueue:          "PBSE_UNKQUE",
	CodeQUnoEnb:          "PBSE_QUNOENB",
	CodeQAcsDny:          "PBSE_QACESS",
	CodeBadAcl:           "PBSE_BADACL",
	CodeBadAtVal:         "PBSE_BADATVAL",
	CodeSysRq:            "PBSE_SYSTEM",
	CodeSvrDown:          "PBSE_SVRDOWN",
	CodeDuplicateAttrOpl: "PBSE_DUPLIST",
	CodeJobNotFound:      "PBSE_UNKJOBID",
	CodeHistJobID:        "PBSE_HISTJOBID",
	CodeUnknown:          "PBSE_UNKNOWN",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("PBSE_%d", int(c))
}

// Error wraps a reply's status code and message, the equivalent of reading
// pbs_errno and calling pbs_geterrmsg after a failed request.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// errorFromReply converts a non-zero reply status into an *Error, or
// returns nil for a successful (code 0) reply.
func errorFromReply(code int, message string) error {
	if code == 0 {
		return nil
	}
	return &Error{Code: Code(code), Message: message}
}
