package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"voice-cv/internal/cv"
	"voice-cv/internal/extraction"
)

var errNoStream = errors.New("stream not found")

type streamSession struct {
	id     uuid.UUID
	lang   string
	stream *extraction.Stream

	lastSeen time.Time // guarded by the registry
}

type streamRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*streamSession
	now      func() time.Time
}

func newStreamRegistry() *streamRegistry {
	return &streamRegistry{
		sessions: make(map[uuid.UUID]*streamSession),
		now:      time.Now,
	}
}

func (r *streamRegistry) add(s *streamSession) {
	r.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[s.id] = s
	r.mu.Unlock()
}

func (r *streamRegistry) get(id uuid.UUID) (*streamSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errNoStream, "%s", id)
	}
	s.lastSeen = r.now()
	return s, nil
}

// expire removes the sessions nobody has touched for ttl and returns them
// for closing.
func (r *streamRegistry) expire(ttl time.Duration) []*streamSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*streamSession
	cutoff := r.now().Add(-ttl)
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			out = append(out, s)
		}
	}
	return out
}

func (r *streamRegistry) remove(id uuid.UUID) (*streamSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errNoStream, "%s", id)
	}
	delete(r.sessions, id)
	return s, nil
}

func (r *streamRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *streamRegistry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.stream.Close()
		delete(r.sessions, id)
	}
}

type StreamRequest struct {
	Language string `json:"language" example:"hi"`
}

type StreamResponse struct {
	ID         string `json:"id"`
	Language   string `json:"language"`
	DebounceMS int64  `json:"debounceMs"`
}

type TranscriptRequest struct {
	// Text is the full transcript so far, not a delta.
	Text string `json:"text"`
	// Final flushes the pending run and returns its result.
	Final bool `json:"final"`
}

type StreamState struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Pending bool         `json:"pending"`
	Runs    int          `json:"runs"`
	CV      *cv.Document `json:"cv,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func (s *streamSession) state() StreamState {
	snap := s.stream.Snapshot()
	st := StreamState{
		ID:      s.id.String(),
		Text:    snap.Text,
		Pending: snap.Pending,
		Runs:    snap.Runs,
	}
	if snap.Result != nil {
		st.CV = snap.Result.Document
	}
	if snap.Err != nil {
		st.Error = snap.Err.Error()
	}
	return st
}

// CreateStreamHandler opens a live transcription session
// @Summary Open streaming session
// @Description Transcript updates sent to the session are re-extracted with the local pipeline after a quiet period
// @Tags stream
// @Accept json
// @Produce json
// @Param request body StreamRequest false "Language code"
// @Success 201 {object} StreamResponse
// @Failure 503 {object} errorResponse
// @Router /api/stream [post]
func (a *API) CreateStreamHandler(w http.ResponseWriter, r *http.Request) {
	var req StreamRequest
	if r.ContentLength != 0 {
		if err := decode(w, r, &req); err != nil {
			a.writeError(w, r, err)
			return
		}
	}

	id := uuid.New()
	lang := language(req.Language)
	log := a.logger.WithField("stream", id)
	stream, err := a.orchestrator.NewStream(lang, func(res *extraction.Result, err error) {
		if err != nil {
			return
		}
		log.WithField("took", res.Took).Debug("stream preview updated")
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.streams.add(&streamSession{id: id, lang: lang, stream: stream})
	log.WithField("language", lang).Info("stream opened")

	writeJSON(w, http.StatusCreated, StreamResponse{
		ID:         id.String(),
		Language:   lang,
		DebounceMS: a.orchestrator.Debounce().Milliseconds(),
	})
}

// StreamTranscriptHandler submits the current transcript of a session
// @Summary Update streaming transcript
// @Tags stream
// @Accept json
// @Produce json
// @Param id path string true "Stream id"
// @Param request body TranscriptRequest true "Transcript so far"
// @Success 200 {object} StreamState "final update"
// @Success 202 {object} StreamState "update scheduled"
// @Failure 404 {object} errorResponse
// @Router /api/stream/{id}/transcript [post]
func (a *API) StreamTranscriptHandler(w http.ResponseWriter, r *http.Request) {
	session, err := a.session(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	var req TranscriptRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := session.stream.Update(req.Text); err != nil {
		a.writeError(w, r, err)
		return
	}
	if !req.Final {
		writeJSON(w, http.StatusAccepted, session.state())
		return
	}

	res, err := session.stream.Flush()
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if res != nil {
		a.respond(res, req.Text, session.lang, nil)
	}
	writeJSON(w, http.StatusOK, session.state())
}

// GetStreamHandler returns the latest preview of a session
// @Summary Get streaming session state
// @Tags stream
// @Produce json
// @Param id path string true "Stream id"
// @Success 200 {object} StreamState
// @Failure 404 {object} errorResponse
// @Router /api/stream/{id} [get]
func (a *API) GetStreamHandler(w http.ResponseWriter, r *http.Request) {
	session, err := a.session(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session.state())
}

// CloseStreamHandler cancels any pending run and forgets the session
// @Summary Close streaming session
// @Tags stream
// @Param id path string true "Stream id"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /api/stream/{id} [delete]
func (a *API) CloseStreamHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	session, err := a.streams.remove(id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	session.stream.Close()
	a.logger.WithField("stream", id).Info("stream closed")
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) session(r *http.Request) (*streamSession, error) {
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	return a.streams.get(id)
}
