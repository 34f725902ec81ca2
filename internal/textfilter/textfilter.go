// Package textfilter implements the search box semantics shared by every ledger:
// a record is kept when any of its searchable fields contains the term,
// ignoring case.
package textfilter

import (
	"strings"

	"golang.org/x/text/cases"
)

// Match reports whether term occurs in any of the fields. An empty term matches everything.
func Match(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	// A Caser keeps state between calls, so each match gets its own.
	folder := cases.Fold()
	needle := folder.String(term)

	for _, f := range fields {
		if strings.Contains(folder.String(f), needle) {
			return true
		}
	}

	return false
}

// Apply returns the records whose fields match term, preserving their order.
// The input slice is never modified.
func Apply[T any](records []T, term string, fields func(T) []string) []T {
	out := make([]T, 0, len(records))

	for _, r := range records {
		if Match(term, fields(r)...) {
			out = append(out, r)
		}
	}

	return out
}
