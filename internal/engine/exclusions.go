// Package engine implements the plan accounting and scheduling logic:
// exclusion merging, qualifying-day counting, daily target derivation,
// completion projection, and the daily rollover.
package engine

import (
	"sort"

	"github.com/theirongolddev/stash/internal/model"
)

// MergeExclusions normalizes ranges into a minimal sorted, non-overlapping
// set. Overlapping or contiguous-or-earlier ranges collapse into one.
// Empty input yields an empty result.
func MergeExclusions(ranges []model.DateRange) []model.DateRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]model.DateRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := []model.DateRange{sorted[0]}
	for _, r := range sorted[1:] {
		cur := &merged[len(merged)-1]
		if r.Start <= cur.End {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// IsExcluded reports whether date falls within any of the ranges,
// inclusive on both ends. The ranges are expected to be merged, but
// correctness does not depend on it.
func IsExcluded(date string, ranges []model.DateRange) bool {
	for _, r := range ranges {
		if date >= r.Start && date <= r.End {
			return true
		}
	}
	return false
}
