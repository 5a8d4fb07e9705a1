package qmgr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/openpbs/go-pbs/logging"
)

// IdleTimeout is how long the REPL will wait for the next directive before
// terminating the session (spec §4.7): 15 minutes of read inactivity.
const IdleTimeout = 15 * time.Minute

// Exit codes, matching the qmgr command-line contract in spec §6.
const (
	ExitOK            = 0
	ExitParseError    = 1
	ExitExecuteError  = 2
	ExitConnectError  = 3
	ExitActiveSetErr  = 4
	ExitOutOfMemory   = 5
)

// Session drives the READ -> PARSE -> EXECUTE loop over one Source,
// formatting results via its Executor and recording each accepted
// directive to History.
type Session struct {
	Source   *Source
	Executor *Executor
	History  *History
	Log      *logging.Logger
}

// requestResult carries one GetRequest's outcome back from the reader
// goroutine so Run can select on it against the idle-timeout timer.
type requestResult struct {
	line string
	err  error
}

// Run executes directives from the session's Source until EOF, a `quit`/
// `exit` directive, an idle timeout, or an abort (-a) triggered failure,
// and returns the process exit code the state machine in spec §4.7 calls
// for.
func (s *Session) Run(ctx context.Context) int {
	for {
		line, err := s.readWithTimeout(ctx)
		if err != nil {
			if errors.Is(err, errIdleTimeout) {
				s.logf("qmgr: idle timeout after %s, disconnecting", IdleTimeout)
				return ExitOK
			}
			if errors.Is(err, io.EOF) {
				return ExitOK
			}
			s.logf("qmgr: read error: %v", err)
			return ExitConnectError
		}
		if line == "" {
			continue
		}

		s.History.Add(line)

		d, perr := Parse(line)
		if perr != nil {
			s.logf("qmgr: parse error: %v", perr)
			if s.Executor.Opts.Abort {
				return ExitParseError
			}
			continue
		}

		switch d.Command {
		case CmdQuit, CmdExit:
			return ExitOK
		case CmdHelp:
			fmt.Fprintln(s.Executor.Out, helpText)
			continue
		case CmdHistory:
			for _, e := range s.History.Entries() {
				fmt.Fprintln(s.Executor.Out, e)
			}
			continue
		}

		if err := s.Executor.Run(ctx, d); err != nil {
			var stop errStop
			if errors.As(err, &stop) {
				s.logf("qmgr: %v", stop.err)
				if d.Command == CmdActive {
					return ExitActiveSetErr
				}
				return ExitExecuteError
			}
			// Non-aborting failures were already reported by the executor.
		}
	}
}

var errIdleTimeout = errors.New("qmgr: idle timeout")

// readWithTimeout reads the next directive, returning errIdleTimeout if
// none arrives within IdleTimeout. bufio.Scanner has no native read
// deadline, so the read runs in its own goroutine and Run selects between
// it and a timer; the goroutine leaks harmlessly on timeout; a process
// exiting on idle-timeout is about to tear the whole session down anyway.
func (s *Session) readWithTimeout(ctx context.Context) (string, error) {
	ch := make(chan requestResult, 1)
	go func() {
		line, err := s.Source.GetRequest()
		ch <- requestResult{line: line, err: err}
	}()

	timer := time.NewTimer(IdleTimeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.line, r.err
	case <-timer.C:
		return "", errIdleTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Infof(logging.DestinationQmgr, format, args...)
		return
	}
	fmt.Println(fmt.Sprintf(format, args...))
}

const helpText = `qmgr commands: create, delete, set, unset, list, print, active, import, export, history, help, quit, exit`
