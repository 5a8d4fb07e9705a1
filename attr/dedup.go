package attr

// DedupJobIDs removes duplicate job IDs from ids while preserving the order
// of first occurrence. The original delete-job-list request walked its
// linked list with an O(n^2) neighbor scan to drop repeats; callers here are
// expected to pass possibly large arrays built up from shell globs, so we
// use a seen-set instead and keep the same "first occurrence wins, order
// preserved" contract.
func DedupJobIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
