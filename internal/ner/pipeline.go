// Package ner is the local, rule-based entity extraction pipeline: it
// tokenizes a transcript, runs seven category extractors in fixed priority
// order against a per-language lexicon, and resolves their candidates into a
// non-overlapping, position-sorted entity list.
package ner

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voice-cv/internal/gazetteer"
)

type extractor interface {
	name() string
	extract(s *scope) ([]Entity, error)
}

// Pipeline is safe for concurrent use: all per-call state lives in a scope
// created by Extract, and the gazetteer is read-only.
type Pipeline struct {
	gazetteer  *gazetteer.Gazetteer
	confidence Confidence
	logger     logrus.FieldLogger
	extractors []extractor
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConfidence replaces the default calibration.
func WithConfidence(c Confidence) Option {
	return func(p *Pipeline) { p.confidence = c }
}

// WithLogger sets the logger used for extractor failures and timings.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline builds a pipeline over g. A nil gazetteer means the built-in
// lexicons.
func NewPipeline(g *gazetteer.Gazetteer, opts ...Option) *Pipeline {
	if g == nil {
		g = gazetteer.Builtin()
	}
	p := &Pipeline{
		gazetteer:  g,
		confidence: DefaultConfidence(),
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.extractors = []extractor{
		contactExtractor{},
		personExtractor{},
		organizationExtractor{},
		locationExtractor{},
		skillExtractor{},
		educationExtractor{},
		dateExtractor{monthRes: &sync.Map{}},
	}
	return p
}

// Extract returns the resolved entities of text. The result depends only on
// text, lang and the gazetteer.
func (p *Pipeline) Extract(text, lang string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	began := time.Now()

	lex := p.gazetteer.Lexicon(lang)
	if lang = strings.ToLower(strings.TrimSpace(lang)); lang == "" {
		lang = lex.Language
	}
	s := &scope{
		text:    text,
		lang:    lang,
		lex:     lex,
		conf:    p.confidence,
		claimed: &claimedRanges{},
	}
	s.tokens = p.tokenize(text)

	var candidates []Entity
	for _, ex := range p.extractors {
		found, err := p.run(ex, s)
		if err != nil {
			p.logger.WithError(err).WithField("language", lang).Warn("extractor skipped")
			continue
		}
		candidates = append(candidates, found...)
	}

	entities := Resolve(text, candidates)
	p.logger.WithFields(logrus.Fields{
		"language": lang,
		"tokens":   len(s.tokens),
		"entities": len(entities),
		"took":     time.Since(began),
	}).Debug("local extraction finished")
	return entities, nil
}

// tokenize isolates tokenizer panics: the regex-based extractors still run
// over the raw text when tokens are unavailable.
func (p *Pipeline) tokenize(text string) (tokens []Token) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WithField("panic", r).Warn("tokenizer failed, continuing without tokens")
			tokens = nil
		}
	}()
	return Tokenize(text)
}

// run executes one extractor. On error or panic its claims are rolled back
// and it contributes nothing.
func (p *Pipeline) run(ex extractor, s *scope) (found []Entity, err error) {
	saved := s.claimed.clone()
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractorFailure{Category: ex.name(), Err: errors.Errorf("panic: %v", r)}
		}
		if err != nil {
			s.claimed = saved
			found = nil
		}
	}()
	found, err = ex.extract(s)
	if err != nil {
		return nil, &ExtractorFailure{Category: ex.name(), Err: err}
	}
	return found, nil
}
