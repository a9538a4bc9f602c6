package gazetteer

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrMissing indicates that no usable gazetteer file could be read. It is
// never fatal: callers fall back to the built-in lexicons.
var ErrMissing = errors.New("gazetteer missing")

// file is the on-disk layout:
//
//	[languages.hi]
//	titles = ["श्री", "श्रीमती"]
//	cities = ["दिल्ली", "मुंबई"]
type file struct {
	Languages map[string]Source `toml:"languages"`
}

// Load reads a TOML gazetteer file. Languages the file does not define are
// filled in from the built-in lexicons.
func Load(path string) (*Gazetteer, error) {
	if path == "" {
		return nil, errors.Wrap(ErrMissing, "no gazetteer path configured")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrMissing, "read %s: %v", path, err)
	}

	var f file
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(ErrMissing, "parse %s: %v", path, err)
	}
	if len(f.Languages) == 0 {
		return nil, errors.Wrapf(ErrMissing, "%s defines no languages", path)
	}

	sources := builtinSources()
	for lang, src := range f.Languages {
		sources[normalizeLanguage(lang)] = src
	}
	return New(sources), nil
}

// LoadOrBuiltin loads path and degrades to the built-in gazetteer, with a
// warning, when the file is absent or unreadable.
func LoadOrBuiltin(path string, logger logrus.FieldLogger) *Gazetteer {
	g, err := Load(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).
			Warn("gazetteer unavailable, using built-in lexicons")
		return Builtin()
	}
	logger.WithField("languages", g.Languages()).Info("gazetteer loaded")
	return g
}

// Builtin returns the minimal lexicons compiled into the binary.
func Builtin() *Gazetteer {
	return builtin
}
