package qmgr

import (
	"github.com/openpbs/go-pbs/attr"
)

// Command is a qmgr directive's leading verb.
type Command int

// Directive commands.
const (
	CmdCreate Command = iota
	CmdDelete
	CmdSet
	CmdUnset
	CmdList
	CmdPrint
	CmdActive
	CmdImport
	CmdExport
	CmdQuit
	CmdExit
	CmdHelp
	CmdHistory
)

var commandNames = map[string]Command{
	"create":  CmdCreate,
	"delete":  CmdDelete,
	"set":     CmdSet,
	"unset":   CmdUnset,
	"list":    CmdList,
	"print":   CmdPrint,
	"active":  CmdActive,
	"import":  CmdImport,
	"export":  CmdExport,
	"quit":    CmdQuit,
	"exit":    CmdExit,
	"help":    CmdHelp,
	"?":       CmdHelp,
	"history": CmdHistory,
}

func (c Command) String() string {
	for k, v := range commandNames {
		if v == c {
			return k
		}
	}
	return "?"
}

// lookupCommand resolves a directive's first word to a Command, accepting
// any unambiguous prefix the way qmgr's own tokenizer does (e.g. "c" for
// create, "p" for print).
func lookupCommand(word string) (Command, bool) {
	if cmd, ok := commandNames[word]; ok {
		return cmd, true
	}
	var match Command
	matches := 0
	for name, cmd := range commandNames {
		if len(word) > 0 && len(word) < len(name) && name[:len(word)] == word {
			match = cmd
			matches++
		}
	}
	if matches == 1 {
		return match, true
	}
	return 0, false
}

var objectNames = map[string]attr.ObjClass{
	"server":   attr.ClassServer,
	"queue":    attr.ClassQueue,
	"node":     attr.ClassNode,
	"sched":    attr.ClassSched,
	"resource": attr.ClassResource,
	"hook":     attr.ClassHook,
	"pbshook":  attr.ClassHook,
}

func lookupObject(word string) (attr.ObjClass, bool) {
	if class, ok := objectNames[word]; ok {
		return class, true
	}
	var match attr.ObjClass
	matches := 0
	for name, class := range objectNames {
		if len(word) > 0 && len(word) < len(name) && name[:len(word)] == word {
			match = class
			matches++
		}
	}
	if matches == 1 {
		return match, true
	}
	return 0, false
}

// Name is one entry of a directive's name-list: a bare object name, an
// object@server pair, or an @server wildcard meaning "every active object
// of this type on server".
type Name struct {
	Object string // empty for the "@server" shape
	Server string // empty means "every active server"
}

func (n Name) String() string {
	switch {
	case n.Object == "":
		return "@" + n.Server
	case n.Server == "":
		return n.Object
	default:
		return n.Object + "@" + n.Server
	}
}

// Directive is one fully parsed qmgr line: a command against an object
// class, over a set of names, carrying zero or more attribute operations.
type Directive struct {
	Command Command
	Object  attr.ObjClass
	HasObj  bool // false for quit/exit/help/history, which take no object
	Names   []Name
	Ops     attr.AttrOplList

	// Hook import/export extras, set only when Command is CmdImport/CmdExport.
	ContentType string
	Encoding    string
	File        string // "-" means stdin/stdout
}
