package extraction

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Stream reprocesses a growing transcript with the local pipeline. Updates
// are debounced on the trailing edge: only the text present when the last
// armed timer fires is extracted, and runs never overlap.
type Stream struct {
	o        *Orchestrator
	lang     string
	delay    time.Duration
	onResult func(*Result, error)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	text    string
	closed  bool
	last    *Result
	lastErr error
	runs    int

	run sync.Mutex
}

// NewStream opens a streaming session. onResult, if set, is called after
// every completed run, from the timer goroutine.
func (o *Orchestrator) NewStream(lang string, onResult func(*Result, error)) (*Stream, error) {
	if o.local == nil {
		return nil, ErrConfiguration
	}
	return &Stream{o: o, lang: lang, delay: o.cfg.Debounce, onResult: onResult}, nil
}

// Update replaces the pending transcript and restarts the quiet period.
func (s *Stream) Update(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	s.text = text
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() { s.fire(gen) })
	return nil
}

// fire runs only if no later update superseded gen.
func (s *Stream) fire(gen uint64) {
	s.run.Lock()
	defer s.run.Unlock()

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	text := s.text
	s.timer = nil
	s.mu.Unlock()

	s.process(text)
}

// Flush cancels the pending timer and extracts the current text now.
func (s *Stream) Flush() (*Result, error) {
	s.run.Lock()
	defer s.run.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStreamClosed
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	text := s.text
	s.mu.Unlock()

	return s.process(text)
}

func (s *Stream) process(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	began := time.Now()
	doc, err := s.o.local.Extract(context.Background(), text, s.lang)

	var res *Result
	if err == nil {
		res = s.o.finish(doc, s.o.local.Name(), began, nil)
	} else {
		s.o.logger.WithError(err).WithField("language", s.lang).Warn("stream extraction failed")
	}

	s.mu.Lock()
	s.runs++
	s.last, s.lastErr = res, err
	s.mu.Unlock()

	if s.onResult != nil {
		s.onResult(res, err)
	}
	return res, err
}

// Snapshot is the state of a stream as seen by a poller.
type Snapshot struct {
	Text    string
	Result  *Result
	Err     error
	Runs    int
	Pending bool
}

func (s *Stream) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Text:    s.text,
		Result:  s.last,
		Err:     s.lastErr,
		Runs:    s.runs,
		Pending: s.timer != nil,
	}
}

// Close cancels any pending run. A run already in progress completes.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
