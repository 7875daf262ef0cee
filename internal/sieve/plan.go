package sieve

// Segment is a half-open interval [Lo, Hi) of the sieve domain.
// Segments produced by a Planner are disjoint, contiguous and ascending.
type Segment struct {
	Lo uint64
	Hi uint64
}

// Width returns the number of integers covered by the segment.
func (s Segment) Width() uint64 {
	return s.Hi - s.Lo
}

// Planner lazily produces the segments covering [lo, hi).
//
// Segment width is fixed (the last segment may be narrower), chosen by the
// caller so that a segment's flag buffer fits the configured working-set
// budget. This decouples peak memory from the sieve bound.
type Planner struct {
	next  uint64
	bound uint64
	width uint64
}

// NewPlanner creates a Planner over [lo, hi) with the given segment width.
// Requires lo < hi and width > 0.
func NewPlanner(lo, hi, width uint64) *Planner {
	return &Planner{next: lo, bound: hi, width: width}
}

// Next returns the next segment, or ok=false when the range is exhausted.
func (p *Planner) Next() (Segment, bool) {
	if p.next >= p.bound {
		return Segment{}, false
	}
	seg := Segment{Lo: p.next, Hi: p.next + p.width}
	if seg.Hi > p.bound || seg.Hi < seg.Lo { // clamp, guard wrap
		seg.Hi = p.bound
	}
	p.next = seg.Hi
	return seg, true
}

// Count returns the total number of segments the planner will produce.
func (p *Planner) Count() int {
	if p.next >= p.bound {
		return 0
	}
	span := p.bound - p.next
	return int((span + p.width - 1) / p.width)
}

// Plan materializes all segments covering [lo, hi). Intended for tests and
// small ranges; the pipeline consumes segments lazily via Planner.Next.
func Plan(lo, hi, width uint64) []Segment {
	p := NewPlanner(lo, hi, width)
	segs := make([]Segment, 0, p.Count())
	for {
		seg, ok := p.Next()
		if !ok {
			return segs
		}
		segs = append(segs, seg)
	}
}
