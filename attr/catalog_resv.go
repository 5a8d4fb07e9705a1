package attr

// resvAttrs is drawn from the OpenPBS ecl_resv_attr_def table: advance and
// standing reservation attributes.
var resvAttrs = []*Entry{
	{Name: "Reserve_Name", Flags: FlagReadOnly, Type: TypeString},
	{Name: "Reserve_Owner", Flags: FlagReadOnly, Type: TypeString},
	{Name: "reserve_state", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "reserve_substate", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "reserve_start", Flags: FlagAltRun, Type: TypeTime, Datatype: DVTime},
	{Name: "reserve_end", Flags: FlagAltRun, Type: TypeTime, Datatype: DVTime},
	{Name: "reserve_duration", Flags: FlagAltRun, Type: TypeTime, Datatype: DVTime},
	{Name: "reserve_Tag", Flags: FlagReadOnly, Type: TypeString},
	{Name: "reserve_ID", Flags: FlagReadOnly, Type: TypeString},
	{Name: "reserve_job", Flags: FlagReadOnly, Type: TypeString},
	{Name: "Resource_List", Flags: FlagAltRun, Type: TypeResourceList, Value: VVResource},
	{Name: "resv_nodes", Flags: FlagReadOnly, Type: TypeString},
	{Name: "reserve_standing", Flags: FlagReadOnly, Type: TypeBool},
	{Name: "reserve_count", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "reserve_index", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "reserve_rrule", Flags: 0, Type: TypeString},
	{Name: "reserve_execvnodes", Flags: FlagReadOnly, Type: TypeString},
	{Name: "reserve_timezone", Flags: 0, Type: TypeString},
	{Name: "reserve_retry", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "queue", Flags: FlagReadOnly, Type: TypeString},
	{Name: "server", Flags: FlagReadOnly, Type: TypeString},
	{Name: "ctime", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "euser", Flags: FlagReadOnly, Type: TypeString},
	{Name: "egroup", Flags: FlagReadOnly, Type: TypeString},
}
