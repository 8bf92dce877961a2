package buffer

// Range is a half-open selection in grapheme offsets: [Start, End).
// Start <= End once normalized.
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of graphemes covered by the normalized range.
func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, length].
func ClampOffset(off, length int) int {
	if length < 0 {
		length = 0
	}
	return clampInt(off, 0, length)
}

func ClampRange(r Range, length int) Range {
	return Range{
		Start: ClampOffset(r.Start, length),
		End:   ClampOffset(r.End, length),
	}
}
