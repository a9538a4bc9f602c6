package ner

import "voice-cv/internal/gazetteer"

// locationExtractor matches known cities and states, then falls back to a
// proper noun next to a locative adposition ("दिल्ली में", "in Shimla"). The
// fallback scores low on purpose and loses any overlap with a stronger entity.
type locationExtractor struct{}

func (locationExtractor) name() string { return "location" }

func (locationExtractor) extract(s *scope) ([]Entity, error) {
	var out []Entity
	for i := 0; i < len(s.tokens); i++ {
		if !s.free(i) {
			continue
		}
		if n := s.longestMatch(i, gazetteer.Cities); n > 0 {
			if e, ok := s.claimTokens(i, i+n-1, Location, SubtypeNone, s.conf.City); ok {
				out = append(out, e)
				i += n - 1
				continue
			}
		}
		if n := s.longestMatch(i, gazetteer.States); n > 0 {
			if e, ok := s.claimTokens(i, i+n-1, Location, SubtypeNone, s.conf.State); ok {
				out = append(out, e)
				i += n - 1
			}
		}
	}

	for i := range s.tokens {
		if !s.free(i) || !s.properNoun(i) || s.lex.Known(s.tokens[i].Text) {
			continue
		}
		if !beforePostposition(s, i) && !afterPreposition(s, i) {
			continue
		}
		if e, ok := s.claimTokens(i, i, Location, SubtypeNone, s.conf.ContextLocation); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func beforePostposition(s *scope, i int) bool {
	return i+1 < len(s.tokens) && s.lex.Has(gazetteer.Postpositions, s.tokens[i+1].Text)
}

func afterPreposition(s *scope, i int) bool {
	return i > 0 && s.lex.Has(gazetteer.Prepositions, s.tokens[i-1].Text)
}
