package ner

import (
	"regexp"
	"strings"
	"sync"

	"voice-cv/internal/gazetteer"
	"voice-cv/internal/script"
)

// Separators such as '/' and '-' do not survive tokenization, so numeric
// dates are matched on the raw text.
var (
	numericDateRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
	}
	yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// YearPattern matches a bare four-digit year.
func YearPattern() *regexp.Regexp { return yearRe }

// dateExtractor caches the "D <month> YYYY" pattern per lexicon.
type dateExtractor struct {
	monthRes *sync.Map // *gazetteer.Lexicon -> *regexp.Regexp
}

func (dateExtractor) name() string { return "date" }

func (d dateExtractor) extract(s *scope) ([]Entity, error) {
	var out []Entity
	patterns := append([]*regexp.Regexp{}, numericDateRes...)
	if re := d.monthPattern(s.lex); re != nil {
		patterns = append(patterns, re)
	}
	for _, re := range patterns {
		for _, loc := range re.FindAllStringIndex(s.text, -1) {
			if e, ok := s.claimSpan(loc[0], loc[1], Date, SubtypeNone, s.conf.DatePattern); ok {
				out = append(out, e)
			}
		}
	}

	for i, t := range s.tokens {
		if !s.free(i) || !isDateWord(s.lex, t.Text) {
			continue
		}
		if e, ok := s.claimTokens(i, i, Date, SubtypeNone, s.conf.DateWord); ok {
			out = append(out, e)
		}
	}

	for _, loc := range yearRe.FindAllStringIndex(s.text, -1) {
		if e, ok := s.claimSpan(loc[0], loc[1], Date, SubtypeNone, s.conf.Year); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// isDateWord accepts relative terms and month names. Lower-case Latin month
// names are skipped: "may" is far more often a verb.
func isDateWord(lex *gazetteer.Lexicon, word string) bool {
	if lex.Has(gazetteer.DateWords, word) {
		return true
	}
	if !lex.Has(gazetteer.Months, word) {
		return false
	}
	return !script.IsLatin(word) || script.StartsUpper(word)
}

func (d dateExtractor) monthPattern(lex *gazetteer.Lexicon) *regexp.Regexp {
	if cached, ok := d.monthRes.Load(lex); ok {
		return cached.(*regexp.Regexp)
	}
	re := buildMonthPattern(lex.MonthNames())
	if re == nil {
		return nil
	}
	d.monthRes.Store(lex, re)
	return re
}

func buildMonthPattern(months []string) *regexp.Regexp {
	if len(months) == 0 {
		return nil
	}
	quoted := make([]string, len(months))
	for i, m := range months {
		quoted[i] = regexp.QuoteMeta(m)
	}
	return regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` +
		strings.Join(quoted, "|") + `),?\s+\d{4}\b`)
}
