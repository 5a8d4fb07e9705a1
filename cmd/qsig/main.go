// Command qsig sends a signal to one or more jobs, implementing the
// locate-and-retry idiom: on PBSE_UNKJOBID, locate the job and retry once
// against the server that actually holds it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	pbs "github.com/openpbs/go-pbs"
	"github.com/openpbs/go-pbs/config"
)

func main() {
	signal := flag.String("s", "SIGTERM", "signal to send")
	flag.Parse()

	jobIDs := flag.Args()
	if len(jobIDs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: qsig [-s signal] job_id [job_id ...]")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qsig:", err)
		os.Exit(1)
	}
	server, _ := cfg.Get("PBS_SERVER")

	ctx := context.Background()
	exitCode := 0
	for _, jobID := range jobIDs {
		if err := signalWithRetry(ctx, cfg, server, jobID, *signal); err != nil {
			fmt.Fprintf(os.Stderr, "qsig: %s: %v\n", jobID, err)
			exitCode = exitCodeFor(err)
		}
	}
	os.Exit(exitCode)
}

// signalWithRetry opens a connection to server, signals jobID, and if the
// server reports PBSE_UNKJOBID and the job hasn't yet been located,
// locates it and retries exactly once against the server it actually lives
// on (spec §4.3's locate-and-retry idiom).
func signalWithRetry(ctx context.Context, cfg *config.Config, server, jobID, signal string) error {
	handle, err := pbs.Connect(ctx, server, cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", server, err)
	}
	defer pbs.Disconnect(handle)

	err = pbs.SignalJob(ctx, handle, jobID, signal)
	if !isUnkJobID(err) {
		return err
	}

	location, locErr := pbs.LocateJob(ctx, handle, jobID)
	if locErr != nil || location == "" || location == server {
		return err
	}
	pbs.Disconnect(handle)

	handle2, connErr := pbs.Connect(ctx, location, cfg)
	if connErr != nil {
		return fmt.Errorf("connect to %s: %w", location, connErr)
	}
	defer pbs.Disconnect(handle2)

	return pbs.SignalJob(ctx, handle2, jobID, signal)
}

func isUnkJobID(err error) bool {
	var pbsErr *pbs.Error
	if errors.As(err, &pbsErr) {
		return pbsErr.Code == pbs.CodeUnkJobID || pbsErr.Code == pbs.CodeJobNotFound
	}
	return false
}

// exitCodeFor renders a PBSE_* code as qsig's non-zero exit status; a
// multi-job invocation retains the last non-zero code (spec §6).
func exitCodeFor(err error) int {
	var pbsErr *pbs.Error
	if errors.As(err, &pbsErr) {
		return int(pbsErr.Code)
	}
	return 1
}
