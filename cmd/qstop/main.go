// Command qstop deletes one or more jobs from the batch system, using the
// locate-and-retry idiom on PBSE_UNKJOBID and pbs_deljoblist's
// deduplicate-then-batch contract when every job targets the same server.
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
	flag.Parse()
	jobIDs := flag.Args()
	if len(jobIDs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: qstop job_id [job_id ...]")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qstop:", err)
		os.Exit(1)
	}
	server, _ := cfg.Get("PBS_SERVER")

	ctx := context.Background()
	handle, err := pbs.Connect(ctx, server, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qstop: connect:", err)
		os.Exit(1)
	}
	defer pbs.Disconnect(handle)

	exitCode := 0
	results, err := pbs.DeleteJobList(ctx, handle, jobIDs)
	if err != nil {
		for _, jobID := range jobIDs {
			if retryErr := deleteWithRetry(ctx, cfg, server, handle, jobID); retryErr != nil {
				fmt.Fprintf(os.Stderr, "qstop: %s: %v\n", jobID, retryErr)
				exitCode = exitCodeFor(retryErr)
			}
		}
	} else {
		for _, r := range results {
			rErr := r.Err()
			if rErr == nil {
				continue
			}
			if !isUnkJobID(rErr) {
				fmt.Fprintf(os.Stderr, "qstop: %s: %v\n", r.JobID, rErr)
				exitCode = exitCodeFor(rErr)
				continue
			}
			if retryErr := deleteWithRetry(ctx, cfg, server, handle, r.JobID); retryErr != nil {
				fmt.Fprintf(os.Stderr, "qstop: %s: %v\n", r.JobID, retryErr)
				exitCode = exitCodeFor(retryErr)
			}
		}
	}
	os.Exit(exitCode)
}

func deleteWithRetry(ctx context.Context, cfg *config.Config, server string, handle int, jobID string) error {
	err := deleteOne(ctx, handle, jobID)
	if !isUnkJobID(err) {
		return err
	}

	location, locErr := pbs.LocateJob(ctx, handle, jobID)
	if locErr != nil || location == "" || location == server {
		return err
	}

	handle2, connErr := pbs.Connect(ctx, location, cfg)
	if connErr != nil {
		return fmt.Errorf("connect to %s: %w", location, connErr)
	}
	defer pbs.Disconnect(handle2)

	return deleteOne(ctx, handle2, jobID)
}

// deleteOne issues a single-id DeleteJobList and flattens its (request-
// level error, per-id result) pair into one error, for callers that only
// care about one job at a time.
func deleteOne(ctx context.Context, handle int, jobID string) error {
	results, err := pbs.DeleteJobList(ctx, handle, []string{jobID})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}
	return results[0].Err()
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
