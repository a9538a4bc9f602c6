package cv

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"voice-cv/internal/gazetteer"
	"voice-cv/internal/ner"
)

// ErrMalformedEntities is returned when an entity does not fit the text it
// claims to come from. Such input is rejected rather than mapped partially.
var ErrMalformedEntities = errors.New("malformed entities")

const (
	educationProximity          = 200
	dateProximity               = 150
	positionWindow              = 100
	fieldWindow                 = 80
	defaultExperienceConfidence = 0.7
	lowConfidence               = 0.7
	lowConfidenceShare          = 0.3
	maxSummarySentences         = 3
	minSentenceWords            = 3
)

var (
	linkedInRe = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[A-Za-z0-9_%-]+/?`)
	gitHubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	gpaRe      = regexp.MustCompile(`(?i)\b(?:c?gpa|percentage|grade|score)\b[^0-9\n]{0,15}` +
		`(\d{1,2}(?:\.\d{1,2})?(?:\s*%|\s*(?:/|out of)\s*\d{1,2}(?:\.\d{1,2})?)?)` +
		`|(\d{1,2}(?:\.\d{1,2})?\s*(?:%|percent\b|cgpa\b|gpa\b))`)

	certWord = `[A-Z][A-Za-z0-9+#-]*(?:\.[A-Za-z0-9]+)*`
	certRes  = []*regexp.Regexp{
		regexp.MustCompile(`((?:` + certWord + `\s+){0,2}(?i:certified)\s+` + certWord + `(?:\s+` + certWord + `){0,4})`),
		regexp.MustCompile(`((?:` + certWord + `\s+){1,5}(?i:certification|certificate))`),
		regexp.MustCompile(`(?i:\bcertifi(?:ed|cation|cate)\s+(?:in|on|for)\s+)(` + certWord + `(?:\s+` + certWord + `){0,4})`),
	}
)

// Mapper turns a resolved entity list and its source text into a Document.
// It holds no per-call state and is safe for concurrent use.
type Mapper struct {
	gazetteer *gazetteer.Gazetteer
	now       func() time.Time
}

// MapperOption configures a Mapper.
type MapperOption func(*Mapper)

// WithClock fixes the timestamp source, mostly for tests.
func WithClock(now func() time.Time) MapperOption {
	return func(m *Mapper) { m.now = now }
}

func NewMapper(g *gazetteer.Gazetteer, opts ...MapperOption) *Mapper {
	if g == nil {
		g = gazetteer.Builtin()
	}
	m := &Mapper{
		gazetteer: g,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// mapping is the state of one CreateCVStructure call.
type mapping struct {
	raw       string
	entities  []ner.Entity
	idx       runeIndex
	cues      *cues
	lex       *gazetteer.Lexicon
	words     keyedTokens
	sentences []sentence
}

// CreateCVStructure maps entities found in rawText to a Document. The result
// depends only on the arguments and the clock.
func (m *Mapper) CreateCVStructure(entities []ner.Entity, rawText, lang string) (*Document, error) {
	sorted := append([]ner.Entity(nil), entities...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	for _, e := range sorted {
		if e.Start < 0 || e.End > len(rawText) || e.Start >= e.End {
			return nil, errors.Wrapf(ErrMalformedEntities, "%s span [%d,%d) outside text of length %d",
				e.Type, e.Start, e.End, len(rawText))
		}
		if e.Confidence < 0 || e.Confidence > 1 {
			return nil, errors.Wrapf(ErrMalformedEntities, "%s confidence %v outside [0,1]", e.Type, e.Confidence)
		}
	}
	if lang == "" && len(sorted) > 0 {
		lang = sorted[0].Language
	}
	if lang == "" {
		lang = "en"
	}

	mp := &mapping{
		raw:       rawText,
		entities:  sorted,
		idx:       newRuneIndex(rawText),
		cues:      cuesFor(lang),
		lex:       m.gazetteer.Lexicon(lang),
		words:     newKeyedTokens(rawText),
		sentences: sentences(rawText),
	}

	doc := Empty(lang, m.now())
	doc.Contact = mp.contact()
	doc.Summary = mp.summary()
	companies := mp.companies()
	education := mp.educationAnchors()
	anchors := make([]span, 0, len(companies)+len(education))
	for _, c := range companies {
		anchors = append(anchors, span{c.start, c.end})
	}
	for _, e := range education {
		anchors = append(anchors, e.anchor)
	}
	dates := mp.shareDates(anchors)
	doc.Experience = mp.experience(companies, dates[:len(companies)])
	doc.Education = mp.education(education, dates[len(companies):])
	doc.Skills = mp.skills()
	doc.Certifications = mp.certifications()
	doc.Metadata.Confidence, doc.Metadata.NeedsReview = review(sorted)
	doc.Metadata.EntityCount = len(sorted)
	return doc, nil
}

func (mp *mapping) contact() Contact {
	var c Contact
	if e, ok := ner.Best(mp.entities, ner.Person, ner.SubtypeNone); ok {
		c.Name = e.Text
	} else {
		c.Name = mp.recoverName()
	}

	if e, ok := ner.Best(mp.entities, ner.Contact, ner.SubtypeEmail); ok {
		c.Email = e.Text
	} else {
		c.Email = ner.EmailPattern().FindString(mp.raw)
	}

	if e, ok := ner.Best(mp.entities, ner.Contact, ner.SubtypePhone); ok {
		c.Phone = e.Text
	} else if p := ner.IndianMobilePattern().FindString(mp.raw); p != "" {
		c.Phone = p
	} else {
		for _, p := range ner.InternationalPhonePattern().FindAllString(mp.raw, -1) {
			if ner.PlausiblePhone(p) {
				c.Phone = p
				break
			}
		}
	}

	if e, ok := ner.Best(mp.entities, ner.Location, ner.SubtypeNone); ok {
		c.Location = e.Text
	}
	c.LinkedIn = linkedInRe.FindString(mp.raw)
	c.GitHub = gitHubRe.FindString(mp.raw)
	return c
}

// recoverName looks for self-introductions ("my name is ...") when no PERSON
// entity survived. Candidates made of known non-name words are rejected.
func (mp *mapping) recoverName() string {
	for _, re := range mp.cues.names {
		for _, loc := range re.FindAllStringSubmatchIndex(mp.raw, -1) {
			name, _, _ := trimmed(mp.raw, loc[2], loc[3])
			if name == "" || !mp.plausibleName(name) {
				continue
			}
			return name
		}
	}
	return ""
}

func (mp *mapping) plausibleName(name string) bool {
	for _, w := range strings.Fields(name) {
		if mp.lex.HasAny(w, gazetteer.Skills, gazetteer.Cities, gazetteer.States,
			gazetteer.Companies, gazetteer.Organizations, gazetteer.Education,
			gazetteer.Months, gazetteer.DateWords) {
			return false
		}
		if _, ok := languageName(w); ok {
			return false
		}
	}
	return true
}

// summary prefers sentences with summary cues and falls back to the opening
// of the transcript.
func (mp *mapping) summary() string {
	var cueSpans []span
	for _, t := range mp.cues.summary {
		cueSpans = append(cueSpans, mp.words.find(t)...)
	}

	var picked []string
	for _, s := range mp.sentences {
		if overlapsAny(s.start, s.end, cueSpans) {
			picked = append(picked, s.text)
			if len(picked) == maxSummarySentences {
				break
			}
		}
	}
	if len(picked) > 0 {
		return strings.Join(picked, " ")
	}
	for _, s := range mp.sentences {
		if len(strings.Fields(s.text)) < minSentenceWords {
			continue
		}
		picked = append(picked, s.text)
		if len(picked) == 2 {
			break
		}
	}
	return strings.Join(picked, " ")
}

type placed struct {
	name       string
	start, end int
	confidence float64
}

func (mp *mapping) isInstitution(text string) bool {
	return textHasAny(text, mp.cues.institutions)
}

// near returns the entities of type t within radius characters of pos,
// in text order.
func (mp *mapping) near(pos int, t ner.EntityType, radius int) []ner.Entity {
	var out []ner.Entity
	for _, e := range mp.entities {
		if e.Type == t && mp.idx.distance(pos, e.Start) <= radius {
			out = append(out, e)
		}
	}
	return out
}

// nearest returns the closest of candidates to pos, if any lies within radius.
func (mp *mapping) nearest(pos int, candidates []placed, radius int) (placed, bool) {
	best, found := placed{}, false
	bestDist := radius + 1
	for _, c := range candidates {
		if d := mp.idx.distance(pos, c.start); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// spansOf returns the spans of every entity whose type is not in except.
func (mp *mapping) spansOf(except ...ner.EntityType) []span {
	var out []span
outer:
	for _, e := range mp.entities {
		for _, t := range except {
			if e.Type == t {
				continue outer
			}
		}
		out = append(out, span{e.Start, e.End})
	}
	return out
}

// companies lists employers: organization entities that are not
// places of study, plus names recovered from cues such as "worked at".
func (mp *mapping) companies() []placed {
	organizations := ner.Filter(mp.entities, ner.Organization)

	var companies []placed
	var taken []span
	seen := map[string]bool{}
	add := func(p placed) {
		key := gazetteer.Key(p.name)
		if key == "" || seen[key] || overlapsAny(p.start, p.end, taken) {
			return
		}
		seen[key] = true
		taken = append(taken, span{p.start, p.end})
		companies = append(companies, p)
	}

	for _, org := range organizations {
		if mp.isInstitution(org.Text) || len(mp.near(org.Start, ner.Education, educationProximity)) > 0 {
			continue
		}
		add(placed{org.Text, org.Start, org.End, org.Confidence})
	}

	// Explicit cues such as "worked at X" override the education proximity
	// filter; a bare corporate suffix does not. Spans already typed as
	// something else are left alone.
	blocked := mp.spansOf(ner.Organization)
	recoverFrom := func(re *regexp.Regexp, explicit bool) {
		for _, loc := range re.FindAllStringSubmatchIndex(mp.raw, -1) {
			name, start, end := trimmed(mp.raw, loc[2], loc[3])
			if name == "" || overlapsAny(start, end, blocked) {
				continue
			}
			p := placed{name, start, end, defaultExperienceConfidence}
			for _, org := range organizations {
				if org.Start < end && start < org.End {
					p = placed{org.Text, org.Start, org.End, org.Confidence}
					break
				}
			}
			if mp.isInstitution(p.name) {
				continue
			}
			if !explicit && len(mp.near(p.start, ner.Education, educationProximity)) > 0 {
				continue
			}
			add(p)
		}
	}
	for _, re := range mp.cues.companies {
		recoverFrom(re, true)
	}
	for _, re := range mp.cues.suffixes {
		recoverFrom(re, false)
	}
	return companies
}

// experience builds one entry per company. dates[i] holds the dates that
// belong to companies[i].
func (mp *mapping) experience(companies []placed, dates [][]ner.Entity) []Experience {
	out := make([]Experience, 0, len(companies))
	for i, c := range companies {
		exp := Experience{
			Company:    c.name,
			Position:   mp.position(c),
			Confidence: c.confidence,
		}
		if locs := mp.knownPlaces(mp.near(c.start, ner.Location, positionWindow)); len(locs) > 0 {
			exp.Location = closest(mp, c.start, locs).Text
		}
		exp.StartDate, exp.EndDate = dateRange(dates[i], false)
		if s, ok := sentenceAt(mp.sentences, c.start); ok {
			exp.Description = s.text
		}
		out = append(out, exp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out
}

// position finds the role keyword closest to the company within the
// surrounding window.
func (mp *mapping) position(c placed) string {
	if mp.cues.position == nil {
		return ""
	}
	from, to := mp.idx.window(c.start, c.end, positionWindow)
	best, bestDist := "", -1
	for _, loc := range mp.cues.position.FindAllStringIndex(mp.raw[from:to], -1) {
		start, end := from+loc[0], from+loc[1]
		if start < c.end && c.start < end {
			continue
		}
		d := mp.idx.distance(start, c.start)
		if bestDist < 0 || d < bestDist {
			text, _, _ := trimmed(mp.raw, start, end)
			best, bestDist = text, d
		}
	}
	return best
}

func closest(mp *mapping, pos int, entities []ner.Entity) ner.Entity {
	best := entities[0]
	for _, e := range entities[1:] {
		if mp.idx.distance(pos, e.Start) < mp.idx.distance(pos, best.Start) {
			best = e
		}
	}
	return best
}

// knownPlaces drops locations guessed from context alone ("B.Tech in
// Computer Science"), keeping cities and states from the lexicon.
func (mp *mapping) knownPlaces(locs []ner.Entity) []ner.Entity {
	var out []ner.Entity
	for _, l := range locs {
		words := strings.Fields(l.Text)
		if mp.lex.Has(gazetteer.Cities, words...) || mp.lex.Has(gazetteer.States, words...) {
			out = append(out, l)
		}
	}
	return out
}

// gap is the distance in characters between an anchor span and an entity,
// zero when they overlap.
func (mp *mapping) gap(a span, e ner.Entity) int {
	switch {
	case e.End <= a.start:
		return mp.idx.distance(e.End, a.start)
	case e.Start >= a.end:
		return mp.idx.distance(a.end, e.Start)
	}
	return 0
}

// shareDates gives every date to the closest anchor within dateProximity,
// so a graduation year is not also read as a job's start. Each anchor then
// keeps at most two dates, see rankDates.
func (mp *mapping) shareDates(anchors []span) [][]ner.Entity {
	owned := make([][]ner.Entity, len(anchors))
	for _, d := range ner.Filter(mp.entities, ner.Date) {
		best, bestGap := -1, dateProximity+1
		for i, a := range anchors {
			if g := mp.gap(a, d); g < bestGap {
				best, bestGap = i, g
			}
		}
		if best >= 0 {
			owned[best] = append(owned[best], d)
		}
	}
	for i, a := range anchors {
		owned[i] = mp.rankDates(a, owned[i])
	}
	return owned
}

// rankDates prefers dates in the anchor's own sentence, keeps the two
// closest and orders them start first.
func (mp *mapping) rankDates(a span, dates []ner.Entity) []ner.Entity {
	if s, ok := sentenceAt(mp.sentences, a.start); ok {
		var same []ner.Entity
		for _, d := range dates {
			if d.Start >= s.start && d.End <= s.end {
				same = append(same, d)
			}
		}
		if len(same) > 0 {
			dates = same
		}
	}
	sort.SliceStable(dates, func(i, j int) bool { return mp.gap(a, dates[i]) < mp.gap(a, dates[j]) })
	if len(dates) > 2 {
		dates = dates[:2]
	}
	if len(dates) == 2 && !chronological(dates[0], dates[1]) {
		dates[0], dates[1] = dates[1], dates[0]
	}
	return dates
}

var yearRe = regexp.MustCompile(`(?:19|20)\d{2}`)

// chronological reports whether a can open a range that b closes. Dates
// without a readable year keep their text order.
func chronological(a, b ner.Entity) bool {
	ya, yb := yearRe.FindString(a.Text), yearRe.FindString(b.Text)
	if ya == "" || yb == "" || ya == yb {
		return a.Start <= b.Start
	}
	return ya < yb
}

// dateRange reads a start and end date from at most two ordered dates. A
// single date is a start date for jobs and a completion date for studies.
func dateRange(dates []ner.Entity, singleIsEnd bool) (start, end string) {
	switch len(dates) {
	case 0:
		return "", ""
	case 1:
		if singleIsEnd {
			return "", dates[0].Text
		}
		return dates[0].Text, ""
	default:
		return dates[0].Text, dates[len(dates)-1].Text
	}
}

func (mp *mapping) institutions() []placed {
	var out []placed
	var taken []span
	for _, org := range ner.Filter(mp.entities, ner.Organization) {
		if mp.isInstitution(org.Text) {
			out = append(out, placed{org.Text, org.Start, org.End, org.Confidence})
			taken = append(taken, span{org.Start, org.End})
		}
	}
	for _, re := range mp.cues.institutionRes {
		for _, loc := range re.FindAllStringSubmatchIndex(mp.raw, -1) {
			name, start, end := trimmed(mp.raw, loc[2], loc[3])
			if name == "" || overlapsAny(start, end, taken) {
				continue
			}
			out = append(out, placed{name, start, end, defaultExperienceConfidence})
			taken = append(taken, span{start, end})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

// studied is an education entry before dates are read. anchor covers the
// degree and its institution.
type studied struct {
	entry  Education
	anchor span
}

// educationAnchors pairs every degree with the nearest institution, or lists
// institutions alone when no degree was found.
func (mp *mapping) educationAnchors() []studied {
	institutions := mp.institutions()
	degrees := ner.Filter(mp.entities, ner.Education)

	var out []studied
	if len(degrees) == 0 {
		for _, inst := range institutions {
			out = append(out, studied{Education{Institution: inst.name}, span{inst.start, inst.end}})
		}
		return out
	}

	for _, deg := range degrees {
		st := studied{Education{Degree: deg.Text}, span{deg.Start, deg.End}}
		if inst, ok := mp.nearest(deg.Start, institutions, educationProximity); ok {
			st.entry.Institution = inst.name
			st.anchor.start = min(st.anchor.start, inst.start)
			st.anchor.end = max(st.anchor.end, inst.end)
		}
		st.entry.Field = mp.field(deg)
		st.entry.GPA = mp.gpa(deg)
		out = append(out, st)
	}
	return out
}

func (mp *mapping) education(studies []studied, dates [][]ner.Entity) []Education {
	out := make([]Education, 0, len(studies))
	for i, st := range studies {
		e := st.entry
		e.StartDate, e.EndDate = dateRange(dates[i], true)
		out = append(out, e)
	}
	return out
}

// field looks for a subject name shortly after the degree ("B.Tech in
// Computer Science").
func (mp *mapping) field(deg ner.Entity) string {
	if mp.cues.field == nil {
		return ""
	}
	_, to := mp.idx.window(deg.End, deg.End, fieldWindow)
	return mp.cues.field.FindString(mp.raw[deg.End:to])
}

func (mp *mapping) gpa(deg ner.Entity) string {
	_, to := mp.idx.window(deg.End, deg.End, dateProximity)
	m := gpaRe.FindStringSubmatch(mp.raw[deg.Start:to])
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[2])
}

func (mp *mapping) skills() Skills {
	s := Skills{Technical: []string{}, Soft: []string{}, Languages: []string{}}
	technical, languages := newOrderedSet(), newOrderedSet()

	for _, e := range ner.Filter(mp.entities, ner.Skill) {
		if name, ok := languageName(e.Text); ok {
			languages.add(name)
			continue
		}
		technical.add(e.Text)
	}
	for _, p := range commonSkillPatterns {
		if p.re.MatchString(mp.raw) {
			technical.add(p.display)
		}
	}

	// "Tamil Nadu" is a place, not a language.
	places := mp.spansOf(ner.Person, ner.Skill, ner.Education, ner.Date, ner.Contact)
	for _, t := range languageNames {
		for _, sp := range mp.words.find(t) {
			if !overlapsAny(sp.start, sp.end, places) {
				languages.add(t.display)
				break
			}
		}
	}

	soft := newOrderedSet()
	for _, t := range softSkills {
		if len(mp.words.find(t)) > 0 {
			soft.add(t.display)
		}
	}

	s.Technical = technical.items
	s.Soft = soft.items
	s.Languages = languages.items
	return s
}

func (mp *mapping) certifications() []string {
	certs := newOrderedSet()
	var taken []span
	for _, re := range certRes {
		for _, loc := range re.FindAllStringSubmatchIndex(mp.raw, -1) {
			name, start, end := trimmed(mp.raw, loc[2], loc[3])
			if name == "" || overlapsAny(start, end, taken) {
				continue
			}
			taken = append(taken, span{start, end})
			certs.add(name)
		}
	}
	return certs.items
}

// review computes the mean confidence and whether a human should check the
// document before it is used.
func review(entities []ner.Entity) (mean float64, needsReview bool) {
	if len(entities) == 0 {
		return 0, true
	}
	var sum float64
	low := 0
	hasContact, hasPerson := false, false
	for _, e := range entities {
		sum += e.Confidence
		if e.Confidence < lowConfidence {
			low++
		}
		switch e.Type {
		case ner.Contact:
			hasContact = true
		case ner.Person:
			hasPerson = true
		}
	}
	mean = sum / float64(len(entities))
	needsReview = float64(low)/float64(len(entities)) > lowConfidenceShare || !hasContact || !hasPerson
	return mean, needsReview
}

// orderedSet keeps the first spelling of each case-insensitive value.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}, items: []string{}}
}

func (s *orderedSet) add(v string) {
	k := strings.ToLower(strings.TrimSpace(v))
	if k == "" || s.seen[k] {
		return
	}
	s.seen[k] = true
	s.items = append(s.items, strings.TrimSpace(v))
}
