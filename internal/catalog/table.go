// Package catalog holds the in-session management tables for users and bins.
package catalog

import (
	"strconv"
	"strings"
)

// Record is a row addressable by its backend id.
type Record interface {
	RecordID() int
}

// Filter returns the rows whose id contains search as a substring. An empty
// search returns every row.
func Filter[T Record](rows []T, search string) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if search == "" || strings.Contains(strconv.Itoa(r.RecordID()), search) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the row with id.
func Find[T Record](rows []T, id int) (T, bool) {
	for _, r := range rows {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Remove returns rows without the row with id and reports whether a row
// was removed. rows is not modified.
func Remove[T Record](rows []T, id int) ([]T, bool) {
	out := make([]T, 0, len(rows))
	removed := false
	for _, r := range rows {
		if !removed && r.RecordID() == id {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}

// Append returns rows with r added at the end. rows is not modified.
func Append[T Record](rows []T, r T) []T {
	out := make([]T, 0, len(rows)+1)
	out = append(out, rows...)
	return append(out, r)
}
