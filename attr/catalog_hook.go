package attr

// hookAttrs covers the hook object's administrative surface. Hook content
// itself travels out-of-band through the hooks workdir (spec §4.7); these
// attributes describe the hook, not its script body.
var hookAttrs = []*Entry{
	{Name: "type", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "enabled", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "event", Flags: FlagMgrOnlySet, Type: TypeStringArray},
	{Name: "alarm", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "order", Flags: FlagMgrOnlySet, Type: TypeLong, Datatype: DVLong},
	{Name: "debug", Flags: FlagMgrOnlySet, Type: TypeBool, Datatype: DVBool},
	{Name: "fail_action", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "user", Flags: FlagMgrOnlySet, Type: TypeString},
	{Name: "freq", Flags: FlagMgrOnlySet, Type: TypeTime, Datatype: DVTime},
	// input-file is set internally by the client to point the manager
	// request at the staged temp file basename; never settable directly.
	{Name: "input-file", Flags: FlagNoUserSet | FlagNoSavm, Type: TypeString},
	{Name: "output-file", Flags: FlagReadOnly | FlagNoSavm, Type: TypeString},
	{Name: "content-type", Flags: FlagNoUserSet, Type: TypeString},
	{Name: "content-encoding", Flags: FlagNoUserSet, Type: TypeString},
}
