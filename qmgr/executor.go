package qmgr

import (
	"context"
	"fmt"
	"io"
	"os"

	pbs "github.com/openpbs/go-pbs"
	"github.com/openpbs/go-pbs/attr"
)

// Options holds the qmgr command-line flags that shape executor behavior.
type Options struct {
	Abort       bool // -a: abort (exit) on first error
	Echo        bool // -e: echo each directive before executing it
	SyntaxOnly  bool // -n: parse only, never send a request
	SuppressErr bool // -z: suppress stderr output
}

// Executor runs parsed directives against an ActiveSet, the qmgr
// (name × server) fan-out loop described in spec §4.7.
type Executor struct {
	Active  *ActiveSet
	PBSHome string
	Opts    Options
	Out     io.Writer
	ErrOut  io.Writer
}

// errStop is returned internally to signal -a should abort the whole
// session immediately, distinct from an ordinary per-object failure.
type errStop struct{ err error }

func (e errStop) Error() string { return e.err.Error() }
func (e errStop) Unwrap() error { return e.err }

// Run executes d, iterating the cartesian product of its name-list against
// the server(s) each name resolves to. With Options.Abort set it stops at
// the first error and returns it wrapped in errStop; otherwise it attempts
// every target and returns the last error encountered (see repl.go's state
// machine).
func (ex *Executor) Run(ctx context.Context, d *Directive) error {
	if ex.Opts.Echo {
		fmt.Fprintln(ex.Out, formatEcho(d))
	}
	if ex.Opts.SyntaxOnly {
		return nil
	}

	switch d.Command {
	case CmdActive:
		names := make([]string, len(d.Names))
		for i, n := range d.Names {
			names[i] = n.Object
		}
		return ex.Active.SetActive(d.Object, names)

	case CmdImport:
		return ex.forEachTarget(ctx, d, func(ctx context.Context, handle int, _ Name) error {
			return runImport(ctx, handle, ex.PBSHome, d)
		})

	case CmdExport:
		return ex.forEachTarget(ctx, d, func(ctx context.Context, handle int, _ Name) error {
			return runExport(ctx, handle, ex.PBSHome, d)
		})

	case CmdCreate, CmdDelete, CmdSet, CmdUnset:
		cmd := manageCmdFor(d.Command)
		return ex.forEachTarget(ctx, d, func(ctx context.Context, handle int, name Name) error {
			return pbs.Manager(ctx, handle, cmd, d.Object, name.Object, d.Ops)
		})

	case CmdList, CmdPrint:
		return ex.runPrint(ctx, d)

	default:
		return fmt.Errorf("directive %s is not executable against a connection", d.Command)
	}
}

func manageCmdFor(cmd Command) pbs.ManageCmd {
	switch cmd {
	case CmdCreate:
		return pbs.ManageCreate
	case CmdDelete:
		return pbs.ManageDelete
	case CmdSet:
		return pbs.ManageSet
	default:
		return pbs.ManageUnset
	}
}

// forEachTarget iterates the (name × server) product, opening connections
// on demand and running fn against each. -a aborts the whole directive (and
// signals the caller to exit) on the first error; otherwise every target is
// attempted and the last error, if any, is returned.
func (ex *Executor) forEachTarget(ctx context.Context, d *Directive, fn func(ctx context.Context, handle int, name Name) error) error {
	var lastErr error
	names := d.Names
	if len(names) == 0 {
		names = []Name{{}}
	}
	for _, name := range names {
		servers := ex.Active.ServerList(name.Server)
		for _, server := range servers {
			handle, err := ex.Active.Conn(ctx, server)
			if err != nil {
				if ex.Opts.Abort {
					return errStop{err}
				}
				ex.reportErr(err)
				lastErr = err
				continue
			}
			if err := fn(ctx, handle, name); err != nil {
				err = fmt.Errorf("%s@%s: %w", name.Object, server, err)
				if ex.Opts.Abort {
					return errStop{err}
				}
				ex.reportErr(err)
				lastErr = err
			}
		}
	}
	return lastErr
}

func (ex *Executor) runPrint(ctx context.Context, d *Directive) error {
	return ex.forEachTarget(ctx, d, func(ctx context.Context, handle int, name Name) error {
		if d.Command == CmdPrint && d.Object == attr.ClassServer {
			return PrintServer(ctx, ex.Out, handle)
		}
		list, err := statFor(ctx, handle, d.Object, name.Object)
		if err != nil {
			return err
		}
		for _, bs := range list {
			if err := PrintObject(ex.Out, d.Object, bs); err != nil {
				return err
			}
		}
		return nil
	})
}

func statFor(ctx context.Context, handle int, class attr.ObjClass, name string) (attr.BatchStatusList, error) {
	switch class {
	case attr.ClassServer:
		return pbs.StatServer(ctx, handle, nil)
	case attr.ClassQueue:
		return pbs.StatQueue(ctx, handle, name, nil)
	case attr.ClassNode:
		return pbs.StatNode(ctx, handle, name, nil)
	case attr.ClassSched:
		return pbs.StatSched(ctx, handle, name, nil)
	case attr.ClassResv:
		return pbs.StatResv(ctx, handle, name, nil)
	case attr.ClassHook:
		return pbs.StatHook(ctx, handle, name, nil)
	case attr.ClassResource:
		return pbs.StatResc(ctx, handle, name, nil)
	default:
		return nil, fmt.Errorf("print/list is not supported for object class %s", class)
	}
}

func (ex *Executor) reportErr(err error) {
	if ex.Opts.SuppressErr {
		return
	}
	w := ex.ErrOut
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, "qmgr:", err)
}

func formatEcho(d *Directive) string {
	s := d.Command.String()
	if d.HasObj {
		s += " " + d.Object.String()
	}
	for i, n := range d.Names {
		if i == 0 {
			s += " "
		} else {
			s += ","
		}
		s += n.String()
	}
	return s
}
