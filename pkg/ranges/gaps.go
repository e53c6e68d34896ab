package ranges

import (
	"cmp"
	"fmt"
	"slices"
)

// Merge fuses overlapping and contiguous ranges and returns them sorted by start.
// The input slice is not modified.
func Merge(rs []Range) ([]Range, error) {
	if err := validateAll(rs); err != nil {
		return nil, err
	}

	if len(rs) == 0 {
		return nil, nil
	}

	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Range) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	merged := make([]Range, 0, len(sorted))
	current := sorted[0]
	for _, r := range sorted[1:] {
		if current.Overlaps(r) || current.Touches(r) {
			current.End = max(current.End, r.End)
			continue
		}

		merged = append(merged, current)
		current = r
	}

	return append(merged, current), nil
}

// GetRangeGaps returns the sub-ranges of [start, end] that are not covered by any of the given ranges.
// Covered ranges may be unsorted, overlapping, or extend beyond [start, end]; they are merged
// and clipped first. The gaps are returned in ascending order.
func GetRangeGaps(start, end uint64, covered []Range) ([]Range, error) {
	if start > end {
		return nil, fmt.Errorf("%w: gap start %d is greater than end %d", ErrInvalidArgument, start, end)
	}

	merged, err := Merge(covered)
	if err != nil {
		return nil, err
	}

	var gaps []Range
	cursor := start

	for _, block := range merged {
		if block.End < cursor {
			continue
		}
		if block.Start > end {
			break
		}

		if block.Start > cursor {
			gaps = append(gaps, Range{Start: cursor, End: block.Start - 1})
		}

		if block.End >= end {
			// The rest of the target is covered.
			return gaps, nil
		}

		cursor = block.End + 1
	}

	return append(gaps, Range{Start: cursor, End: end}), nil
}

// IsCovered reports whether [start, end] is fully covered by the given ranges.
func IsCovered(start, end uint64, covered []Range) (bool, error) {
	gaps, err := GetRangeGaps(start, end, covered)
	if err != nil {
		return false, err
	}

	return len(gaps) == 0, nil
}
