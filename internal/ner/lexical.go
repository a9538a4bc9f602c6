package ner

import "voice-cv/internal/gazetteer"

// skillExtractor matches single tokens only. Multi-word skills such as
// "machine learning" are not recognised here; the CV mapper's raw-text pass
// recovers the common ones.
type skillExtractor struct{}

func (skillExtractor) name() string { return "skill" }

func (skillExtractor) extract(s *scope) ([]Entity, error) {
	return singleTokens(s, gazetteer.Skills, Skill, SubtypeNone, s.conf.Skill), nil
}

type educationExtractor struct{}

func (educationExtractor) name() string { return "education" }

func (educationExtractor) extract(s *scope) ([]Entity, error) {
	return singleTokens(s, gazetteer.Education, Education, SubtypeDegree, s.conf.Education), nil
}

func singleTokens(s *scope, c gazetteer.Category, typ EntityType, sub Subtype, conf float64) []Entity {
	var out []Entity
	for i, t := range s.tokens {
		if !s.free(i) || !s.lex.Has(c, t.Text) {
			continue
		}
		if e, ok := s.claimTokens(i, i, typ, sub, conf); ok {
			out = append(out, e)
		}
	}
	return out
}
