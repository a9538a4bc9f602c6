package ner

import (
	"voice-cv/internal/gazetteer"
	"voice-cv/internal/script"
)

// personExtractor tries Title + Name [+ Surname] before Name + Surname at
// every position. A match claims its tokens immediately, so the weaker
// pattern cannot re-match part of a stronger one.
type personExtractor struct{}

func (personExtractor) name() string { return "person" }

func (personExtractor) extract(s *scope) ([]Entity, error) {
	var out []Entity
	for i := 0; i < len(s.tokens); i++ {
		if !s.free(i) {
			continue
		}
		if last, ok := titledName(s, i); ok {
			if e, ok := s.claimTokens(i, last, Person, SubtypeNone, s.conf.TitledPerson); ok {
				out = append(out, e)
				i = last
				continue
			}
		}
		if i+1 < len(s.tokens) && s.free(i+1) && s.givenName(i) &&
			s.lex.Has(gazetteer.Surnames, s.tokens[i+1].Text) {
			if e, ok := s.claimTokens(i, i+1, Person, SubtypeNone, s.conf.NamedPerson); ok {
				out = append(out, e)
				i++
			}
		}
	}
	return out, nil
}

// titledName matches a title at i followed by a name-like token and an
// optional surname, returning the index of the last matched token.
func titledName(s *scope, i int) (int, bool) {
	t := s.tokens[i]
	if !s.lex.Has(gazetteer.Titles, t.Text) {
		return 0, false
	}
	if i+1 >= len(s.tokens) || !s.free(i+1) || !nameLike(s.tokens[i+1]) {
		return 0, false
	}
	if i+2 < len(s.tokens) && s.free(i+2) && s.lex.Has(gazetteer.Surnames, s.tokens[i+2].Text) {
		return i + 2, true
	}
	// "I miss Bangalore": a lowercase everyday word is only a title when a
	// surname confirms it.
	if everydayTitles[gazetteer.Key(t.Text)] && script.IsLatin(t.Text) && !script.StartsUpper(t.Text) {
		return 0, false
	}
	return i + 1, true
}

var everydayTitles = map[string]bool{"miss": true, "sir": true, "master": true, "madam": true}

// givenName reports whether token i can open a Name + Surname pair. Speech
// to text output is often all lowercase, so case only matters when the pair
// mixes it: "joined Sharma" is a verb before a surname.
func (s *scope) givenName(i int) bool {
	t, next := s.tokens[i], s.tokens[i+1]
	if !nameLike(t) || s.lex.HasAny(t.Text, gazetteer.Prepositions, gazetteer.Postpositions) {
		return false
	}
	if script.IsLatin(t.Text) && script.IsLatin(next.Text) {
		return script.StartsUpper(t.Text) == script.StartsUpper(next.Text)
	}
	return true
}
