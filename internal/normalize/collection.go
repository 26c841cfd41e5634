package normalize

import "sort"

// Process is the sort-filter-truncate pipeline applied to raw weapon, vehicle
// and soldier record lists before mapping. Records whose sort key resolves to
// exactly 0 are "never used" items and are dropped. The sort is stable and
// descending; limit <= 0 keeps everything.
func Process(records []map[string]any, sortKey string, limit int) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if pathNumber(rec, sortKey) != 0 {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return pathNumber(out[i], sortKey) > pathNumber(out[j], sortKey)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// recordsAt extracts a list-of-maps field from a payload. An absent key,
// or elements that are not objects, simply contribute nothing.
func recordsAt(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		if rec, ok := el.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}
