package attr

// AttrOpl is an attribute-operation node (spec §3): name, optional
// resource sub-name, string-form value, and the operation to apply. The
// original C layout threads these as a singly-linked list built by
// inserting at head; per spec §9's design note we instead keep them in a
// plain ordered slice and append at tail, which preserves the order a
// caller actually typed them in (what `qmgr print` output depends on).
type AttrOpl struct {
	Name     string
	Resource string // empty unless Type is TypeResourceList
	Value    string
	Op       Op
}

// AttrL is an attribute reading: layout-compatible with AttrOpl but Op is
// unused. Used in replies and in stat "which attributes to fetch" filters.
type AttrL struct {
	Name     string
	Resource string
	Value    string
}

// AttrOplList is an ordered list of attribute operations. Append adds at
// the tail, so list order always matches caller insertion order.
type AttrOplList []AttrOpl

// Append adds op to the tail of the list and returns the extended list.
func (l AttrOplList) Append(op AttrOpl) AttrOplList {
	return append(l, op)
}

// Find returns the first node whose name and resource sub-name both match
// exactly (an empty resource matches only nodes without a resource). It
// returns the earliest match; it does not resolve a repeated SET to the
// later one.
func (l AttrOplList) Find(name, resource string) (AttrOpl, bool) {
	for _, op := range l {
		if op.Name == name && op.Resource == resource {
			return op, true
		}
	}
	return AttrOpl{}, false
}

// AttrLList is an ordered list of attribute readings.
type AttrLList []AttrL

// Find returns the first reading with a matching name, or false.
func (l AttrLList) Find(name string) (AttrL, bool) {
	for _, a := range l {
		if a.Name == name {
			return a, true
		}
	}
	return AttrL{}, false
}

// BatchStatus is one (object-name, attribute-readings, text) triple in a
// batch-status reply (spec §3). The zero value is ready to use without a
// separate init step: unlike the C `init_bstat`, Go's zero value for the
// slice/string fields here is already safe to read.
type BatchStatus struct {
	Name     string
	Attribs  AttrLList
	Text     string
	Resource string // set only for resource-definition stat replies
}

// BatchStatusList is an ordered collection of BatchStatus entries, in the
// order the server emitted them.
type BatchStatusList []*BatchStatus
