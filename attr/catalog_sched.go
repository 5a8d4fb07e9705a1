package attr

// schedAttrs is drawn from the OpenPBS ecl_sched_attr_def table.
var schedAttrs = []*Entry{
	{Name: "sched_host", Flags: FlagReadOnly, Type: TypeString},
	{Name: "sched_cycle_length", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	{Name: "do_not_span_psets", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "only_explicit_psets", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "sched_preempt_enforce_resumption", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "preempt_targets_enable", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "preempt_order", Flags: FlagMgrOnlySet, Type: TypeString, Value: VVPreemptOrder},
	{Name: "job_sort_formula_threshold", Flags: FlagMgrOnlySet, Type: TypeFloat, Datatype: DVFloat},
	{Name: "throughput_mode", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "job_run_wait", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "opt_backfill_fuzzy", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "partition", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "scheduling", Flags: FlagReadOnly, Type: TypeBool},
	{Name: "sched_port", Flags: FlagReadOnly, Type: TypeLong},
	{Name: "comment", Flags: FlagMgrOnlySet, Type: TypeString},
}
