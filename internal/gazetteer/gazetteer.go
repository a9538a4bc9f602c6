// Package gazetteer holds the per-language word lists the rule-based
// extractors match against. A Gazetteer is built once at startup and is
// read-only afterwards, so a single instance is shared by every extraction.
package gazetteer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"voice-cv/internal/script"
)

// Category names one word list inside a Lexicon.
type Category int

const (
	Titles Category = iota
	Surnames
	Organizations
	Companies
	Cities
	States
	Skills
	Education
	DateWords
	Months
	Postpositions
	Prepositions
	numCategories
)

var categoryNames = [...]string{
	Titles:        "titles",
	Surnames:      "surnames",
	Organizations: "organizations",
	Companies:     "companies",
	Cities:        "cities",
	States:        "states",
	Skills:        "skills",
	Education:     "education",
	DateWords:     "date_words",
	Months:        "months",
	Postpositions: "postpositions",
	Prepositions:  "prepositions",
}

func (c Category) String() string {
	if c >= 0 && c < numCategories {
		return categoryNames[c]
	}
	return "unknown"
}

// Source is the raw, unindexed form of one language's lists, as read from a
// gazetteer file.
type Source struct {
	Titles        []string `toml:"titles" json:"titles"`
	Surnames      []string `toml:"surnames" json:"surnames"`
	Organizations []string `toml:"organizations" json:"organizations"`
	Companies     []string `toml:"companies" json:"companies"`
	Cities        []string `toml:"cities" json:"cities"`
	States        []string `toml:"states" json:"states"`
	Skills        []string `toml:"skills" json:"skills"`
	Education     []string `toml:"education" json:"education"`
	DateWords     []string `toml:"date_words" json:"dateWords"`
	Months        []string `toml:"months" json:"months"`
	Postpositions []string `toml:"postpositions" json:"postpositions"`
	Prepositions  []string `toml:"prepositions" json:"prepositions"`
}

func (s Source) lists() [numCategories][]string {
	return [numCategories][]string{
		Titles:        s.Titles,
		Surnames:      s.Surnames,
		Organizations: s.Organizations,
		Companies:     s.Companies,
		Cities:        s.Cities,
		States:        s.States,
		Skills:        s.Skills,
		Education:     s.Education,
		DateWords:     s.DateWords,
		Months:        s.Months,
		Postpositions: s.Postpositions,
		Prepositions:  s.Prepositions,
	}
}

// merge returns s with every list of o appended.
func (s Source) merge(o Source) Source {
	return Source{
		Titles:        append(append([]string{}, s.Titles...), o.Titles...),
		Surnames:      append(append([]string{}, s.Surnames...), o.Surnames...),
		Organizations: append(append([]string{}, s.Organizations...), o.Organizations...),
		Companies:     append(append([]string{}, s.Companies...), o.Companies...),
		Cities:        append(append([]string{}, s.Cities...), o.Cities...),
		States:        append(append([]string{}, s.States...), o.States...),
		Skills:        append(append([]string{}, s.Skills...), o.Skills...),
		Education:     append(append([]string{}, s.Education...), o.Education...),
		DateWords:     append(append([]string{}, s.DateWords...), o.DateWords...),
		Months:        append(append([]string{}, s.Months...), o.Months...),
		Postpositions: append(append([]string{}, s.Postpositions...), o.Postpositions...),
		Prepositions:  append(append([]string{}, s.Prepositions...), o.Prepositions...),
	}
}

// Key normalises a word for lookup: script filtering, NFC composition and
// case folding. Lexicon entries and token texts go through the same function.
func Key(word string) string {
	return cases.Fold().String(norm.NFC.String(script.Filter(word)))
}

// phraseKey joins the keys of several words. Empty keys are skipped so that
// "Tata, Consultancy" and "Tata Consultancy" agree.
func phraseKey(words []string) string {
	keys := make([]string, 0, len(words))
	for _, w := range words {
		if k := Key(w); k != "" {
			keys = append(keys, k)
		}
	}
	return strings.Join(keys, " ")
}

type termSet struct {
	terms map[string]struct{}
	// maxWords is the longest entry in words, used to bound phrase lookups.
	maxWords int
}

func newTermSet(entries []string) termSet {
	ts := termSet{terms: make(map[string]struct{}, len(entries)), maxWords: 1}
	for _, e := range entries {
		words := strings.Fields(e)
		k := phraseKey(words)
		// "C++" folds to "c", which would match a bare letter ("Grade C").
		if utf8.RuneCountInString(k) < 2 {
			continue
		}
		ts.terms[k] = struct{}{}
		if n := len(strings.Fields(k)); n > ts.maxWords {
			ts.maxWords = n
		}
	}
	return ts
}

// Lexicon is the indexed, immutable word list set for one language.
type Lexicon struct {
	Language string

	sets   [numCategories]termSet
	months []string
}

func newLexicon(lang string, src Source) *Lexicon {
	l := &Lexicon{Language: lang}
	for c, entries := range src.lists() {
		l.sets[c] = newTermSet(entries)
	}
	l.months = dedupe(src.Months)
	return l
}

// Has reports whether the words, joined, form an entry of category c.
func (l *Lexicon) Has(c Category, words ...string) bool {
	if l == nil || len(words) == 0 {
		return false
	}
	_, ok := l.sets[c].terms[phraseKey(words)]
	return ok
}

// HasAny reports whether word is an entry of any of the given categories.
func (l *Lexicon) HasAny(word string, cats ...Category) bool {
	for _, c := range cats {
		if l.Has(c, word) {
			return true
		}
	}
	return false
}

// Known reports whether word appears in any category other than the
// adposition lists.
func (l *Lexicon) Known(word string) bool {
	return l.HasAny(word, Titles, Surnames, Organizations, Companies, Cities,
		States, Skills, Education, DateWords, Months)
}

// MaxWords is the number of words in the longest entry of category c.
func (l *Lexicon) MaxWords(c Category) int {
	if l == nil {
		return 1
	}
	return l.sets[c].maxWords
}

// Size is the number of distinct entries in category c.
func (l *Lexicon) Size(c Category) int {
	if l == nil {
		return 0
	}
	return len(l.sets[c].terms)
}

// MonthNames returns the display forms of the month names, longest first so
// that regex alternations prefer "September" over "Sep".
func (l *Lexicon) MonthNames() []string {
	if l == nil {
		return nil
	}
	out := append([]string(nil), l.months...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// Gazetteer maps language codes to lexicons.
type Gazetteer struct {
	lexicons map[string]*Lexicon
}

// New indexes sources. The returned Gazetteer never changes.
func New(sources map[string]Source) *Gazetteer {
	g := &Gazetteer{lexicons: make(map[string]*Lexicon, len(sources))}
	for lang, src := range sources {
		lang = normalizeLanguage(lang)
		g.lexicons[lang] = newLexicon(lang, src)
	}
	return g
}

// Lexicon returns the lexicon for lang. Region suffixes are ignored
// ("hi-IN" resolves to "hi"); unknown languages get English, and a
// gazetteer without English gets the built-in English list.
func (g *Gazetteer) Lexicon(lang string) *Lexicon {
	lang = normalizeLanguage(lang)
	if g != nil {
		if l, ok := g.lexicons[lang]; ok {
			return l
		}
		if l, ok := g.lexicons["en"]; ok {
			return l
		}
	}
	if l, ok := builtin.lexicons[lang]; ok {
		return l
	}
	return builtin.lexicons["en"]
}

// Languages lists the language codes with a dedicated lexicon, sorted.
func (g *Gazetteer) Languages() []string {
	out := make([]string, 0, len(g.lexicons))
	for lang := range g.lexicons {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return "en"
	}
	return lang
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
