package extraction

import (
	"context"

	"voice-cv/internal/cv"
	"voice-cv/internal/ner"
)

// Strategy turns a transcript into a CV document.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text, lang string) (*cv.Document, error)
}

// availability is implemented by strategies that can be switched off by
// configuration, such as a remote model without credentials.
type availability interface {
	Available() bool
}

// LocalStrategy runs the rule-based entity pipeline and maps the entities
// onto a document.
type LocalStrategy struct {
	pipeline *ner.Pipeline
	mapper   *cv.Mapper
}

func NewLocalStrategy(p *ner.Pipeline, m *cv.Mapper) *LocalStrategy {
	return &LocalStrategy{pipeline: p, mapper: m}
}

func (l *LocalStrategy) Name() string {
	return cv.MethodLocal
}

// Extract ignores ctx: the pipeline is synchronous and bounded by the input.
func (l *LocalStrategy) Extract(_ context.Context, text, lang string) (*cv.Document, error) {
	entities, err := l.pipeline.Extract(text, lang)
	if err != nil {
		return nil, err
	}
	doc, err := l.mapper.CreateCVStructure(entities, text, lang)
	if err != nil {
		return nil, err
	}
	doc.Metadata.EntityCount = len(entities)
	return doc, nil
}
