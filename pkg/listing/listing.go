// Package listing holds the in-memory filter and sort steps shared by the
// history and roster screens. Every function returns a new slice and leaves
// its input untouched.
package listing

import (
	"sort"
	"strings"
	"time"
)

type SortOrder string

const (
	Newest SortOrder = "newest"
	Oldest SortOrder = "oldest"
)

// ParseSortOrder defaults to Newest for empty or unknown values.
func ParseSortOrder(raw string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(raw))) == Oldest {
		return Oldest
	}
	return Newest
}

// Matches reports whether term is a case-insensitive substring of any field.
// An empty term matches everything.
func Matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the items whose fields match term, preserving order.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}

var epoch = time.Unix(0, 0).UTC()

// sortKey maps an unknown (zero) timestamp onto the Unix epoch.
func sortKey(t time.Time) time.Time {
	if t.IsZero() {
		return epoch
	}
	return t
}

// SortByTime orders items by timestamp. Equal timestamps keep input order.
func SortByTime[T any](items []T, order SortOrder, at func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(at(out[i])), sortKey(at(out[j]))
		if order == Oldest {
			return a.Before(b)
		}
		return a.After(b)
	})
	return out
}
