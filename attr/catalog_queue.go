package attr

// queueAttrs is drawn from the OpenPBS ecl_queue_attr_def table.
var queueAttrs = []*Entry{
	{Name: "queue_type", Flags: 0, Type: TypeString, Value: VVQueueType},
	{Name: "total_jobs", Flags: FlagReadOnly | FlagNoSavm, Type: TypeLong},
	{Name: "state_count", Flags: FlagReadOnly | FlagNoSavm, Type: TypeString},
	{Name: "max_running", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_queuable", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_queued", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "max_queued_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_run", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "max_run_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_run_soft", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "max_run_res_soft", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_user_run", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_user_run_soft", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_group_run", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_group_run_soft", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "queued_jobs_threshold", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "queued_jobs_threshold_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "resources_available", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_default", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_max", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_min", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_assigned", Flags: FlagReadOnly | FlagNoSavm, Type: TypeResourceList},
	{Name: "acl_group_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "acl_groups", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "acl_host_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "acl_hosts", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "acl_user_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "acl_users", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "enabled", Flags: 0, Type: TypeBool, Datatype: DVBool},
	{Name: "started", Flags: 0, Type: TypeBool, Datatype: DVBool},
	{Name: "from_route_only", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "route_destinations", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "route_held_jobs", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "route_waiting_jobs", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "route_retry_time", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "route_lifetime", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "checkpoint_min", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "kill_delay", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "backfill_depth", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "hasnodes", Flags: FlagReadOnly | FlagNoSavm, Type: TypeBool},
	{Name: "comment", Flags: 0, Type: TypeString},
}
