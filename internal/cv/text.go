package cv

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"voice-cv/internal/gazetteer"
	"voice-cv/internal/ner"
	"voice-cv/internal/script"
)

// runeIndex converts byte offsets to character positions so that proximity
// windows mean the same thing in every script.
type runeIndex struct {
	pos    []int // byte offset -> rune position
	starts []int // rune position -> byte offset, plus len(text)
}

func newRuneIndex(text string) runeIndex {
	ri := runeIndex{pos: make([]int, len(text)+1)}
	n := 0
	for i := range text {
		ri.pos[i] = n
		ri.starts = append(ri.starts, i)
		n++
	}
	for i := 1; i < len(text); i++ {
		if !utf8.RuneStart(text[i]) {
			ri.pos[i] = ri.pos[i-1]
		}
	}
	ri.pos[len(text)] = n
	ri.starts = append(ri.starts, len(text))
	return ri
}

// distance is the number of characters between two byte offsets.
func (ri runeIndex) distance(a, b int) int {
	d := ri.pos[a] - ri.pos[b]
	if d < 0 {
		return -d
	}
	return d
}

// window widens [start,end) by radius characters on each side and returns
// byte offsets clamped to the text.
func (ri runeIndex) window(start, end, radius int) (int, int) {
	from := ri.pos[start] - radius
	if from < 0 {
		from = 0
	}
	to := ri.pos[end] + radius
	if last := len(ri.starts) - 1; to > last {
		to = last
	}
	return ri.starts[from], ri.starts[to]
}

type sentence struct {
	text       string
	start, end int
}

var sentenceEnd = regexp.MustCompile(`[.!?।॥۔]+(?:\s+|$)|\n+`)

// sentences splits on terminal punctuation followed by whitespace, so that
// abbreviations such as "B.Tech" and "Node.js" stay intact.
func sentences(text string) []sentence {
	var out []sentence
	from := 0
	add := func(start, end int) {
		ts, te := script.Trim(text[start:end])
		if ts == te {
			return
		}
		s := strings.TrimSpace(text[start:end])
		lead := strings.Index(text[start:end], s)
		out = append(out, sentence{text: s, start: start + lead, end: start + lead + len(s)})
	}
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		add(from, loc[1])
		from = loc[1]
	}
	if from < len(text) {
		add(from, len(text))
	}
	return out
}

// sentenceAt returns the sentence containing byte offset pos.
func sentenceAt(all []sentence, pos int) (sentence, bool) {
	for _, s := range all {
		if pos >= s.start && pos < s.end {
			return s, true
		}
	}
	return sentence{}, false
}

// keyedTokens pairs each token with its lookup key.
type keyedTokens struct {
	tokens []ner.Token
	keys   []string
}

func newKeyedTokens(text string) keyedTokens {
	tokens := ner.Tokenize(text)
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = gazetteer.Key(t.Text)
	}
	return keyedTokens{tokens: tokens, keys: keys}
}

// term is a display name plus the spoken forms that map to it.
type term struct {
	display string
	forms   [][]string // each form pre-split into word keys
}

func newTerm(display string, forms ...string) term {
	t := term{display: display}
	for _, f := range append([]string{display}, forms...) {
		var words []string
		for _, w := range strings.Fields(f) {
			if k := gazetteer.Key(w); k != "" {
				words = append(words, k)
			}
		}
		if len(words) > 0 {
			t.forms = append(t.forms, words)
		}
	}
	return t
}

// wordMatches compares a token key with a cue key. Non-Latin cues also match
// as prefixes, which absorbs case suffixes in agglutinative scripts.
func wordMatches(key, cue string) bool {
	if key == cue {
		return true
	}
	return !script.IsLatin(cue) && strings.HasPrefix(key, cue)
}

type span struct {
	start, end int
}

// find returns the byte spans at which any form of t occurs.
func (kt keyedTokens) find(t term) []span {
	var out []span
	for i := range kt.keys {
		for _, form := range t.forms {
			if i+len(form) > len(kt.keys) {
				continue
			}
			ok := true
			for k, w := range form {
				if !wordMatches(kt.keys[i+k], w) {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, span{kt.tokens[i].Start, kt.tokens[i+len(form)-1].End})
				break
			}
		}
	}
	return out
}

// containsAny reports whether the text of [start,end) contains a form of any
// of terms.
func (kt keyedTokens) containsAny(start, end int, terms []term) bool {
	for _, t := range terms {
		for _, sp := range kt.find(t) {
			if sp.start >= start && sp.end <= end {
				return true
			}
		}
	}
	return false
}

// textHasAny is containsAny for a standalone string such as an entity text.
func textHasAny(text string, terms []term) bool {
	return newKeyedTokens(text).containsAny(0, len(text), terms)
}

// compileTerms builds one alternation over words, longest first. Latin words
// get ASCII word boundaries; other scripts match anywhere because \b is
// ASCII-only.
func compileTerms(words []string, caseInsensitive bool) *regexp.Regexp {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	parts := make([]string, 0, len(sorted))
	for _, w := range sorted {
		q := regexp.QuoteMeta(w)
		if script.IsLatin(w) {
			q = `\b` + q + `\b`
		}
		parts = append(parts, q)
	}
	prefix := ""
	if caseInsensitive {
		prefix = "(?i)"
	}
	return regexp.MustCompile(prefix + "(?:" + strings.Join(parts, "|") + ")")
}

func overlapsAny(start, end int, spans []span) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// trimmed returns text[start:end] with unsupported runes stripped from both
// edges, and the adjusted offsets.
func trimmed(text string, start, end int) (string, int, int) {
	ts, te := script.Trim(text[start:end])
	return text[start+ts : start+te], start + ts, start + te
}
