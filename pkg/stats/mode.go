// Package stats computes the read-only trip reports: popular times, popular
// stations, trip durations and user demographics.
package stats

import (
	"sort"

	"github.com/yuriiter/bikeshare/pkg/models"
)

// Count is one row of a value-counts listing.
type Count[T comparable] struct {
	Value T
	N     int
}

// CountValues tallies values, ordered by descending count. Ties keep the
// order in which values were first seen.
func CountValues[T comparable](values []T) []Count[T] {
	pos := make(map[T]int)
	var counts []Count[T]
	for _, v := range values {
		if i, ok := pos[v]; ok {
			counts[i].N++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, Count[T]{Value: v, N: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].N > counts[j].N })
	return counts
}

// Mode returns the most frequent value, the first seen on ties. ok is false
// for an empty slice.
func Mode[T comparable](values []T) (mode T, ok bool) {
	counts := CountValues(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}

func column[T any](t *models.Table, get func(*models.Trip) T) []T {
	out := make([]T, 0, t.Len())
	for i := range t.Trips {
		out = append(out, get(&t.Trips[i]))
	}
	return out
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
