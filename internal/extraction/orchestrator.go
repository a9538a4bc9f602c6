package extraction

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voice-cv/internal/cv"
	"voice-cv/internal/ner"
)

const (
	DefaultAITimeout = 30 * time.Second
	DefaultDebounce  = 500 * time.Millisecond
)

// Config toggles the two strategies independently.
type Config struct {
	AIEnabled   bool
	NERFallback bool
	AITimeout   time.Duration
	Debounce    time.Duration
}

// Stats is a snapshot of the orchestrator counters.
type Stats struct {
	Attempts     int64 `json:"attempts"`
	AISuccesses  int64 `json:"aiSuccesses"`
	NERFallbacks int64 `json:"nerFallbacks"`
	Failures     int64 `json:"failures"`
	AIAvailable  bool  `json:"aiAvailable"`
	NERAvailable bool  `json:"nerAvailable"`
}

// Result is a document together with how it was produced.
type Result struct {
	Document *cv.Document
	Method   string
	Took     time.Duration
	// AIError is the reason the AI strategy was skipped over, if the
	// document came from the fallback after an AI failure.
	AIError error
}

type Orchestrator struct {
	ai     Strategy
	local  Strategy
	cfg    Config
	logger logrus.FieldLogger

	mu    sync.Mutex
	stats Stats
}

// New builds an orchestrator. Either strategy may be nil.
func New(ai, local Strategy, cfg Config, logger logrus.FieldLogger) *Orchestrator {
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = DefaultAITimeout
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Orchestrator{ai: ai, local: local, cfg: cfg, logger: logger}
}

func (o *Orchestrator) aiAvailable() bool {
	if !o.cfg.AIEnabled || o.ai == nil {
		return false
	}
	if a, ok := o.ai.(availability); ok {
		return a.Available()
	}
	return true
}

func (o *Orchestrator) nerAvailable() bool {
	return o.cfg.NERFallback && o.local != nil
}

// ExtractCV prefers the AI strategy and falls back to the local pipeline
// when the AI call fails and fallback is enabled.
func (o *Orchestrator) ExtractCV(ctx context.Context, text, lang string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ner.ErrEmptyInput
	}
	useAI, useNER := o.aiAvailable(), o.nerAvailable()
	if !useAI && !useNER {
		return nil, ErrConfiguration
	}

	o.count(func(s *Stats) { s.Attempts++ })
	began := time.Now()
	log := o.logger.WithField("language", lang)

	var aiErr error
	if useAI {
		doc, err := o.callAI(ctx, text, lang)
		if err == nil {
			o.count(func(s *Stats) { s.AISuccesses++ })
			return o.finish(doc, cv.MethodAI, began, nil), nil
		}
		aiErr = err
		log.WithError(err).WithField("strategy", o.ai.Name()).Warn("ai extraction failed")
	}

	if !useNER || ctx.Err() != nil {
		o.count(func(s *Stats) { s.Failures++ })
		if aiErr == nil {
			aiErr = ctx.Err()
		}
		return nil, &ExtractionError{AI: aiErr}
	}

	doc, err := o.local.Extract(ctx, text, lang)
	if err != nil {
		o.count(func(s *Stats) { s.Failures++ })
		log.WithError(err).WithField("strategy", o.local.Name()).Error("local extraction failed")
		return nil, &ExtractionError{AI: aiErr, Local: err}
	}
	o.count(func(s *Stats) { s.NERFallbacks++ })
	res := o.finish(doc, cv.MethodLocal, began, aiErr)
	log.WithFields(logrus.Fields{
		"strategy": o.local.Name(),
		"entities": doc.Metadata.EntityCount,
		"took":     res.Took,
	}).Info("cv extracted by fallback")
	return res, nil
}

// callAI bounds the remote call with the configured timeout.
func (o *Orchestrator) callAI(ctx context.Context, text, lang string) (*cv.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.AITimeout)
	defer cancel()

	doc, err := o.ai.Extract(ctx, text, lang)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.Wrapf(ErrTimeout, "after %s", o.cfg.AITimeout)
		}
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("AI strategy returned no document")
	}
	return doc, nil
}

func (o *Orchestrator) finish(doc *cv.Document, method string, began time.Time, aiErr error) *Result {
	took := time.Since(began)
	doc.Metadata.Method = method
	doc.Metadata.ProcessingTimeMS = took.Milliseconds()
	return &Result{Document: doc, Method: method, Took: took, AIError: aiErr}
}

func (o *Orchestrator) count(f func(*Stats)) {
	o.mu.Lock()
	f(&o.stats)
	o.mu.Unlock()
}

func (o *Orchestrator) Stats() Stats {
	o.mu.Lock()
	s := o.stats
	o.mu.Unlock()
	s.AIAvailable = o.aiAvailable()
	s.NERAvailable = o.nerAvailable()
	return s
}

// Debounce is the quiet period used by streams.
func (o *Orchestrator) Debounce() time.Duration {
	return o.cfg.Debounce
}
