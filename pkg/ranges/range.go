// Package ranges implements the interval arithmetic used to plan cached RPC queries.
// It finds which parts of a block range are still missing from a cache, which
// recorded ranges can be compacted together, and how to split a range into
// request-sized chunks. Every function is pure and safe for concurrent use.
package ranges

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when a precondition is violated, e.g. a range with start > end
// or a zero chunk size. It indicates a programming error upstream and must not be retried.
var ErrInvalidArgument = errors.New("invalid argument")

// Range is a closed interval of block numbers [Start, End].
type Range struct {
	Start uint64
	End   uint64
}

// New creates a validated Range.
func New(start, end uint64) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate checks that Start <= End.
func (r Range) Validate() error {
	if r.Start > r.End {
		return fmt.Errorf("%w: range start %d is greater than end %d", ErrInvalidArgument, r.Start, r.End)
	}

	return nil
}

// Len returns the number of integers in the range.
// It saturates at math.MaxUint64 for the full uint64 domain.
func (r Range) Len() uint64 {
	n := r.End - r.Start
	if n == math.MaxUint64 {
		return n
	}

	return n + 1
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v <= r.End
}

// ContainsRange reports whether o lies entirely inside r.
func (r Range) ContainsRange(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether both ranges share at least one point.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Touches reports whether the ranges abut with no shared point and no gap between them.
func (r Range) Touches(o Range) bool {
	return (r.End != math.MaxUint64 && r.End+1 == o.Start) ||
		(o.End != math.MaxUint64 && o.End+1 == r.Start)
}

// Intersect returns the common part of both ranges, and false when they are disjoint.
func (r Range) Intersect(o Range) (Range, bool) {
	if !r.Overlaps(o) {
		return Range{}, false
	}

	return Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}, true
}

// String returns the range as "[start, end]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// MarshalJSON encodes the range as a two element array.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint64{r.Start, r.End})
}

// UnmarshalJSON decodes a two element array and validates it.
func (r *Range) UnmarshalJSON(data []byte) error {
	var bounds [2]uint64
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("range must be a [start, end] array: %w", err)
	}

	parsed, err := New(bounds[0], bounds[1])
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}

// validateAll checks every range of a collection, reporting the first malformed position.
func validateAll(rs []Range) error {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("range #%d: %w", i, err)
		}
	}

	return nil
}
