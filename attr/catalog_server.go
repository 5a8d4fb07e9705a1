package attr

// serverAttrs is drawn from the OpenPBS ecl_svr_attr_def table: the server
// object's attribute catalog. Names and flags are taken from pbs_ifl.h's
// ATTR_* definitions and ecl_svr_attr_def.c's flag/type columns, not
// invented.
var serverAttrs = []*Entry{
	{Name: "server_state", Flags: FlagReadOnly | FlagNoSavm, Type: TypeLong},
	{Name: "server_host", Flags: FlagReadOnly, Type: TypeString},
	{Name: "scheduling", Flags: FlagNoUserSet, Type: TypeBool, Datatype: DVBool},
	{Name: "max_running", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_queued", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "max_queued_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_run", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "max_run_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_run_soft", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit},
	{Name: "max_run_res_soft", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_user_run", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_group_run", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "max_user_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_group_res", Flags: FlagNoUserSet, Type: TypeEntityLimit, Datatype: DVEntityLimit, Value: VVResource},
	{Name: "max_array_size", Flags: FlagNoUserSet, Type: TypeLong, Datatype: DVLong},
	{Name: "total_jobs", Flags: FlagReadOnly | FlagNoSavm, Type: TypeLong},
	{Name: "state_count", Flags: FlagReadOnly | FlagNoSavm, Type: TypeString},
	{Name: "default_queue", Flags: 0, Type: TypeString},
	{Name: "resources_available", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_default", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_max", Flags: FlagNoUserSet, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_cost", Flags: FlagMgrOnlySet, Type: TypeResourceList, Value: VVResource},
	{Name: "acl_host_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "acl_hosts", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "acl_user_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "acl_users", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "acl_group_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "acl_groups", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "acl_roots", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "managers", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "operators", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "default_node", Flags: 0, Type: TypeString},
	{Name: "log_events", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "mail_from", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "query_other_jobs", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "resources_assigned", Flags: FlagReadOnly | FlagNoSavm, Type: TypeResourceList},
	{Name: "scheduler_iteration", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "flatuid", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "resv_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "node_group_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "node_group_key", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "job_sort_formula", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "eligible_time_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "job_history_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "job_history_duration", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "backfill_depth", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "job_requeue_timeout", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "pbs_license_min", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "pbs_license_max", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "license_count", Flags: FlagReadOnly | FlagNoSavm, Type: TypeString},
	{Name: "comment", Flags: FlagMgrOnlySet, Type: TypeString},
}
