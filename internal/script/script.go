// Package script knows which Unicode scripts the extraction pipeline accepts
// and how to reduce a raw word to the characters it can match on.
package script

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	zwnj = '\u200c'
	zwj  = '\u200d'
)

// tables lists every script a transcript may arrive in.
var tables = []*unicode.RangeTable{
	unicode.Latin,
	unicode.Devanagari,
	unicode.Tamil,
	unicode.Telugu,
	unicode.Kannada,
	unicode.Malayalam,
	unicode.Bengali,
	unicode.Gujarati,
	unicode.Gurmukhi,
	unicode.Arabic,
}

// Supported reports whether r belongs to one of the accepted scripts or is an
// ASCII digit. Joiners are kept because Indic spellings depend on them.
func Supported(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	if r == zwnj || r == zwj {
		return true
	}
	for _, t := range tables {
		if unicode.Is(t, r) {
			return true
		}
	}
	return false
}

// Filter drops every rune that is not Supported.
func Filter(s string) string {
	return strings.Map(func(r rune) rune {
		if Supported(r) {
			return r
		}
		return -1
	}, s)
}

// Trim returns the byte offsets of s with unsupported runes removed from
// both ends. start == end when nothing supported remains.
func Trim(s string) (start, end int) {
	start, end = 0, len(s)
	for start < end {
		r, size := utf8.DecodeRuneInString(s[start:])
		if Supported(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(s[start:end])
		if Supported(r) {
			break
		}
		end -= size
	}
	return start, end
}

// StartsWithLetter reports whether the first rune of s is a letter from a
// supported script.
func StartsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) && Supported(r)
}

// IsLatin reports whether the first rune of s is Latin.
func IsLatin(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.Is(unicode.Latin, r)
}

// StartsUpper reports whether s begins with an upper-case letter. Scripts
// without case never do.
func StartsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
