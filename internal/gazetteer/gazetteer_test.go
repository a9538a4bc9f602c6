package gazetteer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "btech", Key("B.Tech"))
	assert.Equal(t, Key("KUMAR"), Key("kumar"))
	assert.Equal(t, "दिल्ली", Key("दिल्ली,"))
}

func TestLexicon_Has(t *testing.T) {
	lex := New(map[string]Source{
		"en": {
			Titles:    []string{"Mr"},
			Companies: []string{"Tata Consultancy Services"},
			Skills:    []string{"Node.js"},
		},
	}).Lexicon("en")

	assert.True(t, lex.Has(Titles, "mr"))
	assert.True(t, lex.Has(Titles, "Mr."))
	assert.True(t, lex.Has(Skills, "nodejs"))
	assert.True(t, lex.Has(Companies, "Tata", "Consultancy", "Services"))
	assert.False(t, lex.Has(Companies, "Tata"))
	assert.Equal(t, 3, lex.MaxWords(Companies))
	assert.Equal(t, 1, lex.MaxWords(Cities))
	assert.False(t, lex.Has(Cities))
}

func TestLexicon_SkipsSingleCharacterKeys(t *testing.T) {
	lex := New(map[string]Source{
		"en": {Skills: []string{"C++", "C#", "Go", "R"}},
	}).Lexicon("en")

	assert.False(t, lex.Has(Skills, "C"))
	assert.False(t, lex.Has(Skills, "R"))
	assert.True(t, lex.Has(Skills, "Go"))
	assert.Equal(t, 1, lex.Size(Skills))
}

func TestGazetteer_LexiconResolution(t *testing.T) {
	g := New(map[string]Source{
		"en": {Cities: []string{"Pune"}},
		"hi": {Cities: []string{"पुणे"}},
	})

	tests := []struct {
		lang string
		want string
	}{
		{"hi", "hi"},
		{"hi-IN", "hi"},
		{"HI", "hi"},
		{"ta", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Lexicon(tt.lang).Language)
		})
	}
	assert.Equal(t, []string{"en", "hi"}, g.Languages())
}

func TestGazetteer_NilFallsBackToBuiltin(t *testing.T) {
	var g *Gazetteer
	lex := g.Lexicon("hi")
	require.NotNil(t, lex)
	assert.True(t, lex.Has(Cities, "दिल्ली"))
}

func TestBuiltin_CoversAllLanguages(t *testing.T) {
	langs := Builtin().Languages()
	assert.Len(t, langs, 13)
	for _, lang := range langs {
		lex := Builtin().Lexicon(lang)
		assert.NotZero(t, lex.Size(Titles), lang)
		assert.NotZero(t, lex.Size(Cities), lang)
		assert.NotZero(t, lex.Size(Skills), lang)
	}
}

func TestMonthNames_LongestFirst(t *testing.T) {
	months := Builtin().Lexicon("en").MonthNames()
	require.NotEmpty(t, months)
	for i := 1; i < len(months); i++ {
		assert.GreaterOrEqual(t, len(months[i-1]), len(months[i]))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazetteer.toml")
	content := `
[languages.en]
titles = ["Capt"]
cities = ["Shimla"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	g, err := Load(path)
	require.NoError(t, err)

	en := g.Lexicon("en")
	assert.True(t, en.Has(Titles, "Capt"))
	assert.True(t, en.Has(Cities, "Shimla"))
	assert.False(t, en.Has(Cities, "Pune"), "file languages replace the built-in list")

	// Languages absent from the file keep their built-in lexicon.
	assert.True(t, g.Lexicon("hi").Has(Cities, "दिल्ली"))
}

func TestLoad_Missing(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{name: "empty path"},
		{name: "no such file", path: filepath.Join(t.TempDir(), "absent.toml")},
		{name: "bad toml", path: filepath.Join(t.TempDir(), "bad.toml"), content: "languages = ["},
		{name: "no languages", path: filepath.Join(t.TempDir(), "empty.toml"), content: "# nothing\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.content != "" {
				require.NoError(t, os.WriteFile(tt.path, []byte(tt.content), 0o600))
			}
			_, err := Load(tt.path)
			assert.True(t, errors.Is(err, ErrMissing))
		})
	}
}

func TestLoadOrBuiltin(t *testing.T) {
	logger, hook := test.NewNullLogger()

	g := LoadOrBuiltin(filepath.Join(t.TempDir(), "absent.toml"), logger)
	assert.Same(t, Builtin(), g)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "built-in")
}
