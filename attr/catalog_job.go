package attr

// jobAttrs is drawn from the OpenPBS ecl_job_attr_def table: the bulk of
// the catalog's "ALTRUN" (alterable while running) and select-predicate
// ("SELEQ") attributes live here.
var jobAttrs = []*Entry{
	{Name: "Job_Name", Flags: 0, Type: TypeString},
	{Name: "Job_Owner", Flags: FlagReadOnly, Type: TypeString},
	{Name: "job_state", Flags: FlagReadOnly | FlagSelEQ, Type: TypeChar},
	{Name: "queue", Flags: FlagReadOnly | FlagSelEQ, Type: TypeString},
	{Name: "server", Flags: FlagReadOnly, Type: TypeString},
	{Name: "Checkpoint", Flags: FlagAltRun, Type: TypeString},
	{Name: "ctime", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "mtime", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "qtime", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "stime", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "etime", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "Error_Path", Flags: 0, Type: TypeString},
	{Name: "Output_Path", Flags: 0, Type: TypeString},
	{Name: "Execution_Time", Flags: FlagAltRun, Type: TypeTime, Datatype: DVTime},
	{Name: "group_list", Flags: 0, Type: TypeStringArray},
	{Name: "Hold_Types", Flags: FlagAltRun, Type: TypeString, Value: VVHold},
	{Name: "Join_Path", Flags: 0, Type: TypeString, Value: VVJoinPath},
	{Name: "Keep_Files", Flags: 0, Type: TypeString, Value: VVKeepFiles},
	{Name: "Mail_Points", Flags: 0, Type: TypeString, Value: VVMailPoints},
	{Name: "Mail_Users", Flags: 0, Type: TypeStringArray},
	{Name: "Priority", Flags: FlagAltRun | FlagSelEQ, Type: TypeShort, Datatype: DVShort},
	{Name: "Rerunable", Flags: 0, Type: TypeBool, Datatype: DVBool},
	{Name: "Resource_List", Flags: FlagAltRun | FlagSelEQ, Type: TypeResourceList, Value: VVResource},
	{Name: "resources_used", Flags: FlagReadOnly, Type: TypeResourceList},
	{Name: "resources_released", Flags: FlagReadOnly, Type: TypeResourceList},
	{Name: "Shell_Path_List", Flags: 0, Type: TypeStringArray},
	{Name: "User_List", Flags: 0, Type: TypeStringArray},
	{Name: "Variable_List", Flags: 0, Type: TypeStringArray},
	{Name: "euser", Flags: FlagReadOnly, Type: TypeString},
	{Name: "egroup", Flags: FlagReadOnly, Type: TypeString},
	{Name: "project", Flags: FlagAltRun, Type: TypeString},
	{Name: "exec_host", Flags: FlagReadOnly, Type: TypeString},
	{Name: "exec_vnode", Flags: FlagReadOnly, Type: TypeString},
	{Name: "depend", Flags: FlagAltRun, Type: TypeString},
	{Name: "interactive", Flags: FlagReadOnly, Type: TypeBool},
	{Name: "sandbox", Flags: 0, Type: TypeString},
	{Name: "stagein", Flags: 0, Type: TypeStringArray},
	{Name: "stageout", Flags: 0, Type: TypeStringArray},
	{Name: "Account_Name", Flags: 0, Type: TypeString},
	{Name: "array", Flags: FlagReadOnly, Type: TypeBool},
	{Name: "array_id", Flags: FlagReadOnly, Type: TypeString},
	{Name: "array_index", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "array_state_count", Flags: FlagReadOnly, Type: TypeString},
	{Name: "array_indices_submitted", Flags: 0, Type: TypeString, Value: VVJobArrayRange},
	{Name: "array_indices_remaining", Flags: FlagReadOnly, Type: TypeString},
	{Name: "comment", Flags: FlagAltRun, Type: TypeString},
	{Name: "run_count", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "Submit_Host", Flags: FlagReadOnly, Type: TypeString},
	{Name: "Submit_arguments", Flags: FlagReadOnly, Type: TypeString},
	{Name: "executable", Flags: FlagReadOnly | FlagMomOnly, Type: TypeString},
	{Name: "argument_list", Flags: FlagReadOnly | FlagMomOnly, Type: TypeString},
	{Name: "eligible_time", Flags: FlagReadOnly, Type: TypeTime},
	{Name: "accrue_type", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "job_kill_delay", Flags: FlagAltRun, Type: TypeTime, Datatype: DVTime},
	{Name: "topjob_ineligible", Flags: FlagReadOnly, Type: TypeBool},
	{Name: "Exit_status", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "session_id", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "jobdir", Flags: FlagReadOnly | FlagMomOnly, Type: TypeString},
	{Name: "security", Flags: FlagReadOnly | FlagMomOnly, Type: TypeString},
	{Name: "umask", Flags: 0, Type: TypeString},
	{Name: "release_nodes_on_stageout", Flags: FlagAltRun, Type: TypeBool, Datatype: DVBool},
	{Name: "tolerate_node_failures", Flags: FlagAltRun, Type: TypeString},
}
