// Package attr implements the PBS attribute/resource catalog and the
// attribute-list wire codec: the data shape every server object (server,
// queue, node, job, reservation, scheduler, hook, resource) exposes over
// the administrative protocol.
package attr

// Op is the operation carried by an attribute-operation ("attropl") node.
type Op int

// Attribute operation kinds, matching the wire enum named in the PBS
// administrative protocol.
const (
	OpSet Op = iota
	OpUnset
	OpIncr
	OpDecr
	OpEQ
	OpNE
	OpGE
	OpGT
	OpLE
	OpLT
	OpDflt
	OpInternal
)

func (o Op) String() string {
	switch o {
	case OpSet:
		return "="
	case OpUnset:
		return "unset"
	case OpIncr:
		return "+="
	case OpDecr:
		return "-="
	case OpEQ:
		return "=="
	case OpNE:
		return "!="
	case OpGE:
		return ">="
	case OpGT:
		return ">"
	case OpLE:
		return "<="
	case OpLT:
		return "<"
	case OpDflt:
		return "dflt"
	case OpInternal:
		return "internal"
	default:
		return "?"
	}
}

// Type is the semantic type declared for a catalog entry. The codec treats
// every value as a byte string; Type tells the ECL verifier and formatter
// how to interpret it.
type Type int

// Semantic attribute types.
const (
	TypeBool Type = iota
	TypeShort
	TypeLong
	TypeLongLong
	TypeFloat
	TypeSize // integer + {b|w}{,k,m,g,t,p} unit suffix
	TypeTime // HH:MM:SS or integer seconds
	TypeChar
	TypeString
	TypeStringArray
	TypeACL
	TypeEntityLimit  // [u:name|g:name|o:name|p:name=limit ...]
	TypeResourceList // resource sub-entries, see attropl.Resource
	TypeJobInfoPtr
	TypeOther
)

// Flag is a bit in the per-attribute flag set.
type Flag uint32

// Attribute flags. Mom/Sched visibility bits gate which daemon class may
// see the attribute at all; the rest gate how a client may use it.
const (
	FlagReadOnly Flag = 1 << iota
	FlagMgrOnlySet
	FlagNoUserSet
	FlagAltRun // alterable while job is running
	FlagSelEQ  // usable as a select predicate
	FlagNoSavm // not persisted
	FlagDeflt  // value is the compiled-in default
	FlagMomOnly
	FlagSchedOnly
)

// Has reports whether f contains every bit in mask.
func (f Flag) Has(mask Flag) bool { return f&mask == mask }

// ObjClass names an object class in the catalog: each has its own
// attribute table.
type ObjClass int

// Object classes.
const (
	ClassServer ObjClass = iota
	ClassQueue
	ClassNode
	ClassJob
	ClassResv
	ClassSched
	ClassHook
	ClassResource
)

func (c ObjClass) String() string {
	switch c {
	case ClassServer:
		return "server"
	case ClassQueue:
		return "queue"
	case ClassNode:
		return "node"
	case ClassJob:
		return "job"
	case ClassResv:
		return "resv"
	case ClassSched:
		return "sched"
	case ClassHook:
		return "hook"
	case ClassResource:
		return "resource"
	default:
		return "?"
	}
}

// Visibility gates find/is_attr lookups against a connection's auth class.
type Visibility int

// Visibility levels, from least to most privileged.
const (
	VisibilityUser Visibility = iota
	VisibilityOperator
	VisibilityManager
	VisibilityHidden // Mom/Sched-only internal attributes
)

// DatatypeVerifierID names a pure-syntactic verifier in the ecl package.
// Kept as an ID rather than a function value here to avoid attr depending
// on ecl (ecl depends on attr for catalog lookups, not the reverse).
type DatatypeVerifierID int

// Datatype (syntactic) verifier identifiers.
const (
	DVNone DatatypeVerifierID = iota
	DVBool
	DVShort
	DVLong
	DVLongLong
	DVFloat
	DVSize
	DVTime
	DVString
	DVEntityLimit
)

// ValueVerifierID names a context-aware verifier in the ecl package.
type ValueVerifierID int

// Value (context-aware) verifier identifiers.
const (
	VVNone ValueVerifierID = iota
	VVResource
	VVHold
	VVJoinPath
	VVKeepFiles
	VVMailPoints
	VVJobArrayRange
	VVPreemptOrder
	VVObjectName // only invoked for MGR_CMD_CREATE, see ecl package
	VVQueueType
	VVACL
)
