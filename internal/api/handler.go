package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voice-cv/internal/cv"
	"voice-cv/internal/extraction"
	"voice-cv/internal/ner"
	"voice-cv/internal/storage"
)

// Store is the persistence the API needs. *storage.DB implements it.
type Store interface {
	SaveRecord(ctx context.Context, rec *storage.Record) error
	GetRecord(ctx context.Context, id uuid.UUID) (*storage.Record, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, doc *cv.Document, method string) error
	SaveEntities(ctx context.Context, recordID uuid.UUID, entities []ner.Entity) error
	GetEntities(ctx context.Context, recordID uuid.UUID) ([]ner.Entity, error)
	SaveFile(ctx context.Context, recordID uuid.UUID, upload *cv.Upload) (int64, error)
}

var errNoDatabase = errors.New("database not configured")

// Deps are the collaborators of the API. Store may be nil, in which case
// results are returned but never persisted.
type Deps struct {
	Orchestrator *extraction.Orchestrator
	Pipeline     *ner.Pipeline
	Mapper       *cv.Mapper
	Parser       *cv.Parser
	Store        Store
	Logger       logrus.FieldLogger

	// StreamIdleTTL closes stream sessions that received no request for this
	// long. Zero means defaultStreamIdleTTL.
	StreamIdleTTL time.Duration
}

const defaultStreamIdleTTL = 10 * time.Minute

type API struct {
	orchestrator *extraction.Orchestrator
	pipeline     *ner.Pipeline
	mapper       *cv.Mapper
	parser       *cv.Parser
	store        Store
	logger       logrus.FieldLogger

	streams      *streamRegistry
	streamTTL    time.Duration
	stop         chan struct{}
	persistQueue chan persistJob // Background queue for saving extracted CVs
	persistMu    sync.RWMutex
	closed       bool
	workers      sync.WaitGroup
}

func NewAPI(deps Deps) *API {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if deps.StreamIdleTTL <= 0 {
		deps.StreamIdleTTL = defaultStreamIdleTTL
	}
	a := &API{
		orchestrator: deps.Orchestrator,
		pipeline:     deps.Pipeline,
		mapper:       deps.Mapper,
		parser:       deps.Parser,
		store:        deps.Store,
		logger:       logger,
		streams:      newStreamRegistry(),
		streamTTL:    deps.StreamIdleTTL,
		stop:         make(chan struct{}),
		persistQueue: make(chan persistJob, 50), // Buffer for 50 pending saves
	}

	// Start background workers
	a.StartBackgroundWorkers()

	return a
}

// Shutdown stops accepting persistence jobs, drains the queue and closes
// every open stream.
func (a *API) Shutdown(ctx context.Context) error {
	a.persistMu.Lock()
	if !a.closed {
		a.closed = true
		close(a.persistQueue)
		close(a.stop)
		a.streams.closeAll()
	}
	a.persistMu.Unlock()

	done := make(chan struct{})
	go func() {
		a.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	entry := a.logger.WithError(err).WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// errorStatus maps the error taxonomy onto HTTP status codes.
func errorStatus(err error) int {
	var extErr *extraction.ExtractionError
	switch {
	case errors.Is(err, ner.ErrEmptyInput), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, cv.ErrUnsupportedFile):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, cv.ErrMalformedEntities):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, errNoStream):
		return http.StatusNotFound
	case errors.Is(err, extraction.ErrStreamClosed):
		return http.StatusGone
	case errors.Is(err, extraction.ErrConfiguration), errors.Is(err, errNoDatabase):
		return http.StatusServiceUnavailable
	case errors.Is(err, extraction.ErrTimeout), errors.As(err, &extErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

const maxJSONBody = 1 << 20

// decode reads a JSON body of at most maxJSONBody bytes into v.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrapf(errBadRequest, "invalid JSON: %v", err)
	}
	return nil
}

// HealthHandler reports liveness and which optional parts are configured.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := a.orchestrator.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"ai":       stats.AIAvailable,
		"ner":      stats.NERAvailable,
		"database": a.store != nil,
	})
}

type statsResponse struct {
	extraction.Stats
	ActiveStreams int `json:"activeStreams"`
	PendingSaves  int `json:"pendingSaves"`
}

// StatsHandler returns the extraction counters.
// @Summary Extraction statistics
// @Tags system
// @Produce json
// @Success 200 {object} statsResponse
// @Router /api/stats [get]
func (a *API) StatsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:         a.orchestrator.Stats(),
		ActiveStreams: a.streams.len(),
		PendingSaves:  len(a.persistQueue),
	})
}
