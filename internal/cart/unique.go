package cart

// ensureUnique fails the whole batch on the first key that was already seen, in input
// order. The reported key is the value recorded at its first occurrence.
func ensureUnique[K comparable](keys []K) error {
	seen := make(map[K]K, len(keys))
	for _, key := range keys {
		if recorded, ok := seen[key]; ok {
			return duplicateItemError(recorded)
		}
		seen[key] = key
	}
	return nil
}

func optionIDs(items []AddItemInput) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.OptionID)
	}
	return ids
}

func cartIDs(items []UpdateItemInput) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.CartID)
	}
	return ids
}
