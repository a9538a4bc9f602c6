package ner

import (
	"voice-cv/internal/gazetteer"
	"voice-cv/internal/script"
)

// scope is the state of one Extract call. It is created per call and never
// shared, so extractors may mutate claimed freely.
type scope struct {
	text    string
	lang    string
	tokens  []Token
	lex     *gazetteer.Lexicon
	conf    Confidence
	claimed *claimedRanges
}

// free reports whether token i is untouched by any claimed interval.
func (s *scope) free(i int) bool {
	t := s.tokens[i]
	return !s.claimed.overlaps(t.Start, t.End)
}

// allFree reports whether tokens [i, i+n) are all free.
func (s *scope) allFree(i, n int) bool {
	for k := i; k < i+n; k++ {
		if !s.free(k) {
			return false
		}
	}
	return true
}

// words returns the Text of tokens [i, i+n).
func (s *scope) words(i, n int) []string {
	out := make([]string, n)
	for k := 0; k < n; k++ {
		out[k] = s.tokens[i+k].Text
	}
	return out
}

// claimTokens claims tokens [first, last] and builds an entity over them with
// punctuation trimmed from both edges. ok is false when the span was already
// claimed or holds nothing matchable.
func (s *scope) claimTokens(first, last int, typ EntityType, sub Subtype, conf float64) (Entity, bool) {
	start, end := s.tokens[first].Start, s.tokens[last].End
	ts, te := script.Trim(s.text[start:end])
	if ts == te {
		return Entity{}, false
	}
	if !s.claimed.claim(start, end) {
		return Entity{}, false
	}
	return s.entity(start+ts, start+te, typ, sub, conf), true
}

// claimSpan claims an exact byte span, typically a regex match.
func (s *scope) claimSpan(start, end int, typ EntityType, sub Subtype, conf float64) (Entity, bool) {
	if !s.claimed.claim(start, end) {
		return Entity{}, false
	}
	return s.entity(start, end, typ, sub, conf), true
}

func (s *scope) entity(start, end int, typ EntityType, sub Subtype, conf float64) Entity {
	return Entity{
		Text:       s.text[start:end],
		Type:       typ,
		Subtype:    sub,
		Start:      start,
		End:        end,
		Confidence: conf,
		Language:   s.lang,
	}
}

// longestMatch returns the length of the longest run of free tokens starting
// at i that forms an entry of category c, or 0.
func (s *scope) longestMatch(i int, c gazetteer.Category) int {
	n := s.lex.MaxWords(c)
	if rest := len(s.tokens) - i; n > rest {
		n = rest
	}
	for ; n >= 1; n-- {
		if s.allFree(i, n) && s.lex.Has(c, s.words(i, n)...) {
			return n
		}
	}
	return 0
}

// properNoun narrows nameLike for the contextual patterns: adpositions never
// qualify, and Latin words must be capitalised.
func (s *scope) properNoun(i int) bool {
	t := s.tokens[i]
	if !nameLike(t) || s.lex.HasAny(t.Text, gazetteer.Prepositions, gazetteer.Postpositions) {
		return false
	}
	return !script.IsLatin(t.Text) || script.StartsUpper(t.Text)
}
