package ranges

// Pair identifies two ranges of an input collection by position, with I < J.
type Pair struct {
	I int
	J int
}

// FindOverlaps reports every pair of ranges that share a point. When includeContiguous is set,
// pairs that abut without a gap (e.g. [6, 10] and [11, 20]) are reported as well.
// Pairs are returned in scan order over (i, j), not sorted by value.
func FindOverlaps(rs []Range, includeContiguous bool) ([]Pair, error) {
	if err := validateAll(rs); err != nil {
		return nil, err
	}

	var pairs []Pair
	for i := range rs {
		for j := i + 1; j < len(rs); j++ {
			if rs[i].Overlaps(rs[j]) || (includeContiguous && rs[i].Touches(rs[j])) {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}

	return pairs, nil
}
