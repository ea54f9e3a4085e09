package renderer

// RowRange is the half-open range of image rows [Start, End) owned by one worker
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r RowRange) Len() int {
	return r.End - r.Start
}

// PartitionRows splits height rows into contiguous, disjoint ranges that
// together cover every row. Leftover rows go one each to the first ranges,
// so range sizes differ by at most one. No range is empty: asking for more
// workers than rows yields one range per row.
func PartitionRows(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	base := height / workers
	extra := height % workers

	ranges := make([]RowRange, workers)
	start := 0
	for i := range ranges {
		size := base
		if i < extra {
			size++
		}
		ranges[i] = RowRange{Start: start, End: start + size}
		start += size
	}
	return ranges
}
