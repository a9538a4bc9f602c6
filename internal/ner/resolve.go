package ner

import "sort"

// Resolve merges candidates from all extractors into a position-sorted list
// with no overlapping spans. Candidates are visited by start offset; one that
// overlaps the entity already kept replaces it only with strictly higher
// confidence. Spans outside text are dropped and confidences are clamped to
// [0,1].
func Resolve(text string, candidates []Entity) []Entity {
	valid := make([]Entity, 0, len(candidates))
	for _, c := range candidates {
		if c.Start < 0 || c.End > len(text) || c.Start >= c.End {
			continue
		}
		c.Confidence = clamp(c.Confidence)
		valid = append(valid, c)
	}
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Start < valid[j].Start })

	accepted := make([]Entity, 0, len(valid))
	for _, c := range valid {
		// Accepted spans are disjoint and sorted, and c starts at or after all
		// of them, so only the last one can overlap c.
		last := len(accepted) - 1
		if last >= 0 && accepted[last].Overlaps(c) {
			if c.Confidence > accepted[last].Confidence {
				accepted[last] = c
			}
			continue
		}
		accepted = append(accepted, c)
	}
	return accepted
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
