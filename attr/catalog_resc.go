package attr

// rescDefs is the resource sub-catalog (resc_def): consulted only when the
// codec or verifier needs to interpret a Resource_List sub-entry such as
// Resource_List.ncpus. Shape mirrors the attribute catalog: name, flags,
// type, verifiers.
var rescDefs = []*Entry{
	{Name: "ncpus", Flags: FlagSelEQ, Type: TypeLong, Datatype: DVLong},
	{Name: "mem", Flags: FlagSelEQ, Type: TypeSize, Datatype: DVSize},
	{Name: "vmem", Flags: FlagSelEQ, Type: TypeSize, Datatype: DVSize},
	{Name: "pmem", Flags: FlagSelEQ, Type: TypeSize, Datatype: DVSize},
	{Name: "pvmem", Flags: FlagSelEQ, Type: TypeSize, Datatype: DVSize},
	{Name: "walltime", Flags: FlagSelEQ, Type: TypeTime, Datatype: DVTime},
	{Name: "cput", Flags: FlagSelEQ, Type: TypeTime, Datatype: DVTime},
	{Name: "ncpus_cumulative", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "nodect", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "nodes", Flags: FlagSelEQ, Type: TypeString},
	{Name: "select", Flags: FlagSelEQ, Type: TypeString},
	{Name: "place", Flags: 0, Type: TypeString},
	{Name: "software", Flags: 0, Type: TypeString},
	{Name: "arch", Flags: FlagSelEQ, Type: TypeString},
	{Name: "host", Flags: FlagSelEQ, Type: TypeString},
	{Name: "ngpus", Flags: FlagSelEQ, Type: TypeLong, Datatype: DVLong},
	{Name: "mpiprocs", Flags: 0, Type: TypeLong, Datatype: DVLong},
	{Name: "file", Flags: FlagSelEQ, Type: TypeSize, Datatype: DVSize},
}
