package attr

// nodeAttrs is drawn from the OpenPBS ecl_node_attr_def table.
var nodeAttrs = []*Entry{
	{Name: "state", Flags: 0, Type: TypeStringArray},
	{Name: "ntype", Flags: FlagReadOnly, Type: TypeString},
	{Name: "pcpus", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "jobs", Flags: FlagReadOnly | FlagNoSavm, Type: TypeString},
	{Name: "resources_available", Flags: FlagMgrOnlySet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_assigned", Flags: FlagReadOnly | FlagNoSavm, Type: TypeResourceList},
	{Name: "queue", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "comment", Flags: 0, Type: TypeString},
	{Name: "sharing", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "priority", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "Mom", Flags: FlagReadOnly, Type: TypeString},
	{Name: "Port", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "current_aoe", Flags: FlagReadOnly, Type: TypeString},
	{Name: "license", Flags: FlagReadOnly, Type: TypeString},
	{Name: "last_state_change_time", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "last_used_time", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "maxjobs", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "no_multinode_jobs", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "partition", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "poweroff_eligible", Flags: FlagReadOnly, Type: TypeBool},
	{Name: "provision_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "topology", Flags: FlagReadOnly, Type: TypeString},
}
