package attr

import "fmt"

// Entry is a single catalog row: one attribute's name, flags, semantic
// type, and the verifiers the ECL layer should run against it.
type Entry struct {
	Name     string
	Flags    Flag
	Type     Type
	Datatype DatatypeVerifierID
	Value    ValueVerifierID
}

// ReadOnly reports whether the entry may not appear in a SET/UNSET/INCR/DECR
// attribute operation.
func (e *Entry) ReadOnly() bool { return e.Flags.Has(FlagReadOnly) }

// ManagerOnly reports whether the entry is only settable over a
// manager-class connection.
func (e *Entry) ManagerOnly() bool { return e.Flags.Has(FlagMgrOnlySet) }

// table is one object class's catalog: a static row list plus a name index.
type table struct {
	rows  []*Entry
	index map[string]*Entry
}

func newTable(rows []*Entry) *table {
	t := &table{rows: rows, index: make(map[string]*Entry, len(rows))}
	for _, r := range rows {
		t.index[r.Name] = r
	}
	return t
}

func (t *table) find(name string) *Entry { return t.index[name] }

// Catalog is the compile-time attribute/resource registry. It is built once
// at process start and never mutated afterward (spec §3 invariant); callers
// only ever hold read references into it.
type Catalog struct {
	classes map[ObjClass]*table
	resc    *table
}

// Default is the process-wide catalog, populated by the catalog_*.go
// init-time tables. The ECL layer and the wire codec both consult Default
// so that they share the same ground truth for every attribute name.
var Default = newCatalog()

func newCatalog() *Catalog {
	c := &Catalog{classes: make(map[ObjClass]*table)}
	c.classes[ClassServer] = newTable(serverAttrs)
	c.classes[ClassQueue] = newTable(queueAttrs)
	c.classes[ClassNode] = newTable(nodeAttrs)
	c.classes[ClassJob] = newTable(jobAttrs)
	c.classes[ClassResv] = newTable(resvAttrs)
	c.classes[ClassSched] = newTable(schedAttrs)
	c.classes[ClassHook] = newTable(hookAttrs)
	c.resc = newTable(rescDefs)
	return c
}

// Find looks up name in class's table. It returns nil, false for an
// unknown name (the caller must surface PBSE_NOATTR).
func (c *Catalog) Find(class ObjClass, name string) (*Entry, bool) {
	t, ok := c.classes[class]
	if !ok {
		return nil, false
	}
	e := t.find(name)
	return e, e != nil
}

// IsAttr reports whether name is a valid, visible attribute of class at the
// given visibility level.
func (c *Catalog) IsAttr(class ObjClass, name string, vis Visibility) bool {
	e, ok := c.Find(class, name)
	if !ok {
		return false
	}
	if e.Flags.Has(FlagMomOnly) || e.Flags.Has(FlagSchedOnly) {
		return vis >= VisibilityHidden
	}
	if e.ManagerOnly() {
		return vis >= VisibilityManager
	}
	return true
}

// FindResc looks up a resource name in the resource sub-catalog; it is
// consulted only when decoding or verifying a resource-list attribute.
func (c *Catalog) FindResc(name string) (*Entry, bool) {
	e := c.resc.find(name)
	return e, e != nil
}

// ErrNoAttr is returned (wrapped with the attribute name) when a wire name
// has no catalog entry in the target object class.
type ErrNoAttr struct {
	Class ObjClass
	Name  string
}

func (e *ErrNoAttr) Error() string {
	return fmt.Sprintf("PBSE_NOATTR: unknown attribute %q for object class %s", e.Name, e.Class)
}
