package ner

import (
	"voice-cv/internal/gazetteer"
	"voice-cv/internal/script"
)

// organizationExtractor matches known companies and organizations, then
// treats organization-type words ("University", "Ltd") as suffixes that pull
// in the preceding name-like token.
type organizationExtractor struct{}

func (organizationExtractor) name() string { return "organization" }

func (organizationExtractor) extract(s *scope) ([]Entity, error) {
	var out []Entity
	for i := 0; i < len(s.tokens); i++ {
		if !s.free(i) {
			continue
		}
		if n := s.longestMatch(i, gazetteer.Companies); n > 0 {
			if e, ok := s.claimTokens(i, i+n-1, Organization, SubtypeNone, s.conf.Company); ok {
				out = append(out, e)
				i += n - 1
				continue
			}
		}
		n := s.longestMatch(i, gazetteer.Organizations)
		if n == 0 {
			continue
		}
		if n > 1 {
			if e, ok := s.claimTokens(i, i+n-1, Organization, SubtypeNone, s.conf.Organization); ok {
				out = append(out, e)
				i += n - 1
			}
			continue
		}

		// A suffix directly after an organization we just emitted extends it:
		// "Sharma Technologies Pvt Ltd" stays one entity.
		if k := len(out) - 1; k >= 0 && i > 0 && out[k].Start <= s.tokens[i-1].Start &&
			out[k].End > s.tokens[i-1].Start {
			if extended, ok := extend(s, out[k], i); ok {
				out[k] = extended
				continue
			}
		}
		if i > 0 && s.free(i-1) && s.properNoun(i-1) {
			if e, ok := s.claimTokens(i-1, i, Organization, SubtypeNone, s.conf.OrganizationSuffix); ok {
				out = append(out, e)
				continue
			}
		}
		if e, ok := s.claimTokens(i, i, Organization, SubtypeNone, s.conf.Organization); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// extend grows e to cover token i, keeping its confidence.
func extend(s *scope, e Entity, i int) (Entity, bool) {
	t := s.tokens[i]
	if !s.claimed.claim(t.Start, t.End) {
		return e, false
	}
	_, te := script.Trim(s.text[t.Start:t.End])
	return s.entity(e.Start, t.Start+te, e.Type, e.Subtype, e.Confidence), true
}
