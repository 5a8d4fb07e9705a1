package attr

// SortBatchStatus performs a stable insertion sort of a BatchStatus reply by
// object name, the same algorithm (and the same reason: stability on
// already-mostly-ordered server replies) used by the C batch_status_sort
// helper. It sorts in place.
func SortBatchStatus(list BatchStatusList) {
	for i := 1; i < len(list); i++ {
		cur := list[i]
		j := i - 1
		for j >= 0 && list[j].Name > cur.Name {
			list[j+1] = list[j]
			j--
		}
		list[j+1] = cur
	}
}

// FindBatchStatusByName returns the first entry with the given object name,
// or nil if the reply contains no such entry.
func FindBatchStatusByName(list BatchStatusList, name string) *BatchStatus {
	for _, bs := range list {
		if bs.Name == name {
			return bs
		}
	}
	return nil
}
