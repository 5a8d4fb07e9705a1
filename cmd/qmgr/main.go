// Command qmgr is the PBS batch system manager: a line-oriented REPL for
// creating, deleting, and configuring queues, nodes, the server object
// itself, schedulers, hooks, and custom resources.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/openpbs/go-pbs/config"
	"github.com/openpbs/go-pbs/logging"
	"github.com/openpbs/go-pbs/qmgr"
)

func main() {
	abort := flag.Bool("a", false, "abort on first error")
	cmdline := flag.String("c", "", "execute a single directive and exit")
	echo := flag.Bool("e", false, "echo each directive before executing it")
	syntaxOnly := flag.Bool("n", false, "parse only, do not execute")
	quiet := flag.Bool("z", false, "suppress stderr output")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qmgr: loading configuration:", err)
		os.Exit(qmgr.ExitConnectError)
	}
	log, err := logging.FromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qmgr: initializing logging:", err)
		os.Exit(qmgr.ExitConnectError)
	}

	defServer, _ := cfg.Get("PBS_SERVER")
	if len(flag.Args()) > 0 {
		defServer = flag.Args()[0]
	}
	pbsHome, _ := cfg.Get("PBS_HOME")

	active := qmgr.NewActiveSet(cfg, defServer)
	defer active.CloseAll()

	opts := qmgr.Options{Abort: *abort, Echo: *echo, SyntaxOnly: *syntaxOnly, SuppressErr: *quiet}
	executor := &qmgr.Executor{Active: active, PBSHome: pbsHome, Opts: opts, Out: os.Stdout, ErrOut: os.Stderr}

	history := qmgr.NewHistory(qmgr.HistoryPath(pbsHome), qmgr.DefaultHistorySize)
	ctx := context.Background()

	if *cmdline != "" {
		source := qmgr.NewSource(strings.NewReader(*cmdline))
		session := &qmgr.Session{Source: source, Executor: executor, History: history, Log: log}
		os.Exit(session.Run(ctx))
	}

	session := &qmgr.Session{Source: qmgr.NewSource(os.Stdin), Executor: executor, History: history, Log: log}
	os.Exit(session.Run(ctx))
}
