package store

import "strings"

// record is what the generic list mechanics need from an entity: a stable id
// and the text the search box matches against.
type record interface {
	RecordID() string
	SearchText() string
}

// updateRecord applies merge to the record with a matching id, in place.
// Returns false when no record matches; the list is then untouched.
func updateRecord[T record](list []T, id string, merge func(*T)) bool {
	for i := range list {
		if list[i].RecordID() == id {
			merge(&list[i])
			return true
		}
	}
	return false
}

// removeRecord filters out the record with a matching id, preserving order.
func removeRecord[T record](list []T, id string) ([]T, bool) {
	for i := range list {
		if list[i].RecordID() == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// filterRecords returns the records whose search text contains query,
// case-insensitively, in original order. An empty query matches everything.
// The result is a fresh slice recomputed on every call.
func filterRecords[T record](list []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(list))
	for _, item := range list {
		if q == "" || strings.Contains(strings.ToLower(item.SearchText()), q) {
			out = append(out, item)
		}
	}
	return out
}
