package ner

import (
	"strings"
	"unicode/utf8"

	"voice-cv/internal/script"
)

// Token is one whitespace-delimited word of the input. Start and End are byte
// offsets of OriginalText in the source; Text keeps only supported-script
// characters and is what lexicon lookups see.
type Token struct {
	Text         string `json:"text"`
	OriginalText string `json:"originalText"`
	Start        int    `json:"startPos"`
	End          int    `json:"endPos"`
}

// Tokenize splits text on whitespace. Each word is located by searching
// forward from the end of the previous match, so repeated words get their own
// offsets. Words with no supported characters are dropped.
func Tokenize(text string) []Token {
	words := strings.Fields(text)
	tokens := make([]Token, 0, len(words))
	cursor := 0
	for _, w := range words {
		idx := strings.Index(text[cursor:], w)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		end := start + len(w)
		cursor = end

		filtered := script.Filter(w)
		if filtered == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:         filtered,
			OriginalText: w,
			Start:        start,
			End:          end,
		})
	}
	return tokens
}

// nameLike reports whether a token can be part of a proper name: at least two
// characters, starting with a letter of a supported script.
func nameLike(t Token) bool {
	return utf8.RuneCountInString(t.Text) >= 2 && script.StartsWithLetter(t.Text)
}
