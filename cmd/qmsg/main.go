// Command qmsg writes a message into one or more jobs' output streams,
// using the same locate-and-retry idiom as qsig.
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
	toStderr := flag.Bool("E", false, "write to stderr stream instead of stdout")
	flag.Bool("O", false, "write to stdout stream (default)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: qmsg [-E|-O] message job_id [job_id ...]")
		os.Exit(1)
	}
	message := args[0]
	jobIDs := args[1:]

	stream := "o"
	if *toStderr {
		stream = "e"
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qmsg:", err)
		os.Exit(1)
	}
	server, _ := cfg.Get("PBS_SERVER")

	ctx := context.Background()
	exitCode := 0
	for _, jobID := range jobIDs {
		if err := messageWithRetry(ctx, cfg, server, jobID, stream, message); err != nil {
			fmt.Fprintf(os.Stderr, "qmsg: %s: %v\n", jobID, err)
			exitCode = exitCodeFor(err)
		}
	}
	os.Exit(exitCode)
}

func messageWithRetry(ctx context.Context, cfg *config.Config, server, jobID, stream, message string) error {
	handle, err := pbs.Connect(ctx, server, cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", server, err)
	}
	defer pbs.Disconnect(handle)

	err = pbs.MessageJob(ctx, handle, jobID, stream, message)
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

	return pbs.MessageJob(ctx, handle2, jobID, stream, message)
}

func isUnkJobID(err error) bool {
	var pbsErr *pbs.Error
	if errors.As(err, &pbsErr) {
		return pbsErr.Code == pbs.CodeUnkJobID || pbsErr.Code == pbs.CodeJobNotFound
	}
	return false
}

func exitCodeFor(err error) int {
	var pbsErr *pbs.Error
	if errors.As(err, &pbsErr) {
		return int(pbsErr.Code)
	}
	return 1
}
