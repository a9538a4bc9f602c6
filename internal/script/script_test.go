package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin punctuation", "Kumar,", "Kumar"},
		{"email stripped", "a@b.com", "abcom"},
		{"devanagari kept", "दिल्ली।", "दिल्ली"},
		{"tamil kept", "சென்னை", "சென்னை"},
		{"digits kept", "+91-98765", "9198765"},
		{"urdu kept", "لاہور", "لاہور"},
		{"emoji dropped", "hi🙂", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.in))
		})
	}
}

func TestTrim(t *testing.T) {
	s := "(Kumar)."
	start, end := Trim(s)
	assert.Equal(t, "Kumar", s[start:end])

	start, end = Trim("...")
	assert.Equal(t, start, end)
}

func TestStartsWithLetter(t *testing.T) {
	assert.True(t, StartsWithLetter("Rajesh"))
	assert.True(t, StartsWithLetter("राजेश"))
	assert.False(t, StartsWithLetter("2020"))
	assert.False(t, StartsWithLetter(""))
}

func TestCaseHelpers(t *testing.T) {
	assert.True(t, IsLatin("Pune"))
	assert.False(t, IsLatin("पुणे"))
	assert.True(t, StartsUpper("Pune"))
	assert.False(t, StartsUpper("pune"))
	assert.False(t, StartsUpper("पुणे"))
}
