package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ent(start, end int, conf float64, typ EntityType) Entity {
	return Entity{Start: start, End: end, Confidence: conf, Type: typ}
}

func TestResolve(t *testing.T) {
	text := "0123456789012345678901234567890"
	tests := []struct {
		name       string
		candidates []Entity
		want       []Entity
	}{
		{
			name:       "disjoint kept and sorted",
			candidates: []Entity{ent(10, 12, 0.8, Skill), ent(0, 4, 0.9, Person)},
			want:       []Entity{ent(0, 4, 0.9, Person), ent(10, 12, 0.8, Skill)},
		},
		{
			name:       "stronger overlapping candidate replaces",
			candidates: []Entity{ent(0, 6, 0.6, Location), ent(4, 9, 0.9, Organization)},
			want:       []Entity{ent(4, 9, 0.9, Organization)},
		},
		{
			name:       "tie keeps the accepted entity",
			candidates: []Entity{ent(0, 6, 0.8, Skill), ent(2, 9, 0.8, Education)},
			want:       []Entity{ent(0, 6, 0.8, Skill)},
		},
		{
			name:       "weaker overlapping candidate dropped",
			candidates: []Entity{ent(0, 10, 0.95, Person), ent(5, 8, 0.85, Person)},
			want:       []Entity{ent(0, 10, 0.95, Person)},
		},
		{
			name:       "invalid spans dropped",
			candidates: []Entity{ent(-1, 2, 0.9, Date), ent(5, 5, 0.9, Date), ent(30, 40, 0.9, Date)},
			want:       []Entity{},
		},
		{
			name:       "confidence clamped",
			candidates: []Entity{ent(0, 2, 1.4, Date)},
			want:       []Entity{ent(0, 2, 1, Date)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(text, tt.candidates))
		})
	}
}
