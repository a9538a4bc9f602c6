package ner

import (
	"fmt"
)

// EntityType classifies an extracted span.
type EntityType string

const (
	Person       EntityType = "PERSON"
	Location     EntityType = "LOCATION"
	Organization EntityType = "ORGANIZATION"
	Skill        EntityType = "SKILL"
	Education    EntityType = "EDUCATION"
	Date         EntityType = "DATE"
	Contact      EntityType = "CONTACT"
)

// Subtype refines CONTACT and EDUCATION entities.
type Subtype string

const (
	SubtypeNone        Subtype = ""
	SubtypeEmail       Subtype = "email"
	SubtypePhone       Subtype = "phone"
	SubtypeDegree      Subtype = "degree"
	SubtypeInstitution Subtype = "institution"
	SubtypeField       Subtype = "field"
)

// Entity is a typed span of the source text. Text always equals
// source[Start:End].
type Entity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"type"`
	Subtype    Subtype    `json:"subtype,omitempty"`
	Start      int        `json:"startPos"`
	End        int        `json:"endPos"`
	Confidence float64    `json:"confidence"`
	Language   string     `json:"language"`
}

func (e Entity) String() string {
	typ := string(e.Type)
	if e.Subtype != SubtypeNone {
		typ += "/" + string(e.Subtype)
	}
	return fmt.Sprintf("%s(%q)[%d:%d]@%.2f", typ, e.Text, e.Start, e.End, e.Confidence)
}

// Overlaps reports whether the two spans share at least one byte.
func (e Entity) Overlaps(o Entity) bool {
	return e.Start < o.End && o.Start < e.End
}

// Filter returns the entities of type t, preserving order.
func Filter(entities []Entity, t EntityType) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Best returns the highest-confidence entity of type t and subtype st. The
// earliest entity wins ties. ok is false when none exists.
func Best(entities []Entity, t EntityType, st Subtype) (best Entity, ok bool) {
	for _, e := range entities {
		if e.Type != t || e.Subtype != st {
			continue
		}
		if !ok || e.Confidence > best.Confidence {
			best, ok = e, true
		}
	}
	return best, ok
}
