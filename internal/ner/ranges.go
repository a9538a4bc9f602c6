package ner

import "sort"

type span struct {
	start, end int
}

// claimedRanges is the set of [start,end) intervals already owned by an
// extractor during one Extract call. Intervals never overlap; callers must
// query before inserting, which claim does atomically.
type claimedRanges struct {
	spans []span
}

func (c *claimedRanges) overlaps(start, end int) bool {
	i := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].end > start })
	return i < len(c.spans) && c.spans[i].start < end
}

// claim inserts [start,end) unless it is empty or overlaps an existing
// interval. It reports whether the interval was inserted.
func (c *claimedRanges) claim(start, end int) bool {
	if start >= end || c.overlaps(start, end) {
		return false
	}
	i := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].start >= end })
	c.spans = append(c.spans, span{})
	copy(c.spans[i+1:], c.spans[i:])
	c.spans[i] = span{start: start, end: end}
	return true
}

func (c *claimedRanges) clone() *claimedRanges {
	return &claimedRanges{spans: append([]span(nil), c.spans...)}
}
