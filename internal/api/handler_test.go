package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-cv/internal/cv"
	"voice-cv/internal/extraction"
	"voice-cv/internal/gazetteer"
	"voice-cv/internal/ner"
	"voice-cv/internal/storage"
)

const transcript = "My name is Test User. Email: test@example.com. Phone: 9876543210."

type fakeStore struct {
	mu       sync.Mutex
	records  map[uuid.UUID]*storage.Record
	entities map[uuid.UUID][]ner.Entity
	files    []*cv.Upload
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:  make(map[uuid.UUID]*storage.Record),
		entities: make(map[uuid.UUID][]ner.Entity),
	}
}

func (s *fakeStore) SaveRecord(_ context.Context, rec *storage.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.CreatedAt, rec.UpdatedAt = time.Now(), time.Now()
	s.records[rec.ID] = rec
	return nil
}

func (s *fakeStore) GetRecord(_ context.Context, id uuid.UUID) (*storage.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rec, nil
}

func (s *fakeStore) UpdateDocument(_ context.Context, id uuid.UUID, doc *cv.Document, method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return storage.ErrNotFound
	}
	rec.Document, rec.Method = doc, method
	return nil
}

func (s *fakeStore) SaveEntities(_ context.Context, id uuid.UUID, entities []ner.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[id] = entities
	return nil
}

func (s *fakeStore) GetEntities(_ context.Context, id uuid.UUID) ([]ner.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entities[id], nil
}

func (s *fakeStore) SaveFile(_ context.Context, _ uuid.UUID, upload *cv.Upload) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, upload)
	return int64(len(s.files)), nil
}

type failingAI struct{ err error }

func (f failingAI) Name() string { return "ai" }

func (f failingAI) Extract(context.Context, string, string) (*cv.Document, error) {
	return nil, f.err
}

type setup struct {
	store     Store
	ai        extraction.Strategy
	noLocal   bool
	streamTTL time.Duration
}

func newTestAPI(t *testing.T, s setup) (*API, http.Handler) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	g := gazetteer.Builtin()
	pipeline := ner.NewPipeline(g, ner.WithLogger(logger))
	mapper := cv.NewMapper(g, cv.WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}))

	var local extraction.Strategy
	if !s.noLocal {
		local = extraction.NewLocalStrategy(pipeline, mapper)
	}
	orch := extraction.New(s.ai, local, extraction.Config{
		AIEnabled:   s.ai != nil,
		NERFallback: true,
		Debounce:    time.Second,
	}, logger)

	a := NewAPI(Deps{
		Orchestrator: orch,
		Pipeline:     pipeline,
		Mapper:       mapper,
		Parser:       cv.NewParser(t.TempDir()),
		Store:        s.store,
		Logger:       logger,

		StreamIdleTTL: s.streamTTL,
	})
	t.Cleanup(func() { a.Shutdown(context.Background()) })
	return a, NewRouter(a)
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	_, h := newTestAPI(t, setup{})
	rr := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	decodeBody(t, rr, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["ai"])
	assert.Equal(t, true, body["ner"])
	assert.Equal(t, false, body["database"])
}

func TestExtractHandler(t *testing.T) {
	_, h := newTestAPI(t, setup{})

	rr := do(t, h, http.MethodPost, "/api/cv/extract", ExtractRequest{Text: transcript})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp ExtractResponse
	decodeBody(t, rr, &resp)
	assert.Empty(t, resp.ID, "nothing is saved without a database")
	assert.Equal(t, cv.MethodLocal, resp.Method)
	assert.Equal(t, "test@example.com", resp.CV.Contact.Email)
	assert.Equal(t, "9876543210", resp.CV.Contact.Phone)
	assert.Equal(t, "en", resp.CV.Metadata.Language)

	rr = do(t, h, http.MethodGet, "/api/stats", nil)
	var stats statsResponse
	decodeBody(t, rr, &stats)
	assert.Equal(t, int64(1), stats.Attempts)
	assert.Equal(t, int64(1), stats.NERFallbacks)
}

func TestExtractHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  setup
		body   interface{}
		status int
	}{
		{"empty text", setup{}, ExtractRequest{Text: "   "}, http.StatusBadRequest},
		{"invalid json", setup{}, "{", http.StatusBadRequest},
		{"no strategy", setup{noLocal: true}, ExtractRequest{Text: transcript}, http.StatusServiceUnavailable},
		{
			"ai failed without fallback",
			setup{noLocal: true, ai: failingAI{err: errors.New("upstream 500")}},
			ExtractRequest{Text: transcript},
			http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestAPI(t, tt.setup)
			rr := do(t, h, http.MethodPost, "/api/cv/extract", tt.body)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())

			var body errorResponse
			decodeBody(t, rr, &body)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestExtractHandler_FallbackReason(t *testing.T) {
	_, h := newTestAPI(t, setup{ai: failingAI{err: errors.New("quota exceeded")}})

	rr := do(t, h, http.MethodPost, "/api/cv/extract", ExtractRequest{Text: transcript})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp ExtractResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, cv.MethodLocal, resp.Method)
	assert.Equal(t, "quota exceeded", resp.FallbackReason)
}

func TestExtractHandler_Persists(t *testing.T) {
	store := newFakeStore()
	a, h := newTestAPI(t, setup{store: store})

	rr := do(t, h, http.MethodPost, "/api/cv/extract", ExtractRequest{Text: transcript, Language: "en"})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp ExtractResponse
	decodeBody(t, rr, &resp)
	require.NotEmpty(t, resp.ID)

	require.NoError(t, a.Shutdown(context.Background()))
	id := uuid.MustParse(resp.ID)
	rec, err := store.GetRecord(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, transcript, rec.Transcript)
	assert.Equal(t, cv.MethodLocal, rec.Method)
	assert.NotEmpty(t, store.entities[id])

	// Closed APIs accept requests but no longer queue saves.
	rr = do(t, h, http.MethodPost, "/api/cv/extract", ExtractRequest{Text: transcript})
	require.Equal(t, http.StatusOK, rr.Code)
	var again ExtractResponse
	decodeBody(t, rr, &again)
	assert.Empty(t, again.ID)
}

func TestEntitiesHandler(t *testing.T) {
	_, h := newTestAPI(t, setup{})

	rr := do(t, h, http.MethodPost, "/api/cv/entities", ExtractRequest{Text: transcript})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp EntitiesResponse
	decodeBody(t, rr, &resp)

	email, ok := ner.Best(resp.Entities, ner.Contact, ner.SubtypeEmail)
	require.True(t, ok)
	assert.Equal(t, "test@example.com", email.Text)
	assert.Equal(t, transcript[email.Start:email.End], email.Text)

	rr = do(t, h, http.MethodPost, "/api/cv/entities", ExtractRequest{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegenerateHandler(t *testing.T) {
	store := newFakeStore()
	_, h := newTestAPI(t, setup{store: store})

	rr := do(t, h, http.MethodPost, "/api/cv/entities", ExtractRequest{Text: transcript})
	var ents EntitiesResponse
	decodeBody(t, rr, &ents)

	// Drop everything but the email, as a reviewer rejecting the rest would.
	email, _ := ner.Best(ents.Entities, ner.Contact, ner.SubtypeEmail)
	edited := []ner.Entity{email}

	t.Run("without id", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/api/cv/regenerate",
			RegenerateRequest{Text: transcript, Entities: edited})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp ExtractResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, cv.MethodEdited, resp.Method)
		assert.Equal(t, "test@example.com", resp.CV.Contact.Email)
		assert.Equal(t, 1, resp.CV.Metadata.EntityCount)
	})

	t.Run("stored record", func(t *testing.T) {
		id := uuid.New()
		require.NoError(t, store.SaveRecord(context.Background(), &storage.Record{
			ID: id, Transcript: transcript, Language: "en", Method: cv.MethodAI, Document: cv.Empty("en", time.Now()),
		}))

		rr := do(t, h, http.MethodPost, "/api/cv/regenerate",
			RegenerateRequest{ID: id.String(), Entities: edited})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rec, _ := store.GetRecord(context.Background(), id)
		assert.Equal(t, cv.MethodEdited, rec.Method)
		assert.Equal(t, "test@example.com", rec.Document.Contact.Email)
		assert.Equal(t, edited, store.entities[id])
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name   string
			req    RegenerateRequest
			status int
		}{
			{"malformed span", RegenerateRequest{Text: "short", Entities: []ner.Entity{
				{Text: "x", Type: ner.Skill, Start: 0, End: 99, Confidence: 0.8},
			}}, http.StatusUnprocessableEntity},
			{"bad confidence", RegenerateRequest{Text: "Go", Entities: []ner.Entity{
				{Text: "Go", Type: ner.Skill, Start: 0, End: 2, Confidence: 1.5},
			}}, http.StatusUnprocessableEntity},
			{"no text", RegenerateRequest{}, http.StatusBadRequest},
			{"bad id", RegenerateRequest{ID: "nope"}, http.StatusBadRequest},
			{"unknown id", RegenerateRequest{ID: uuid.NewString()}, http.StatusNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rr := do(t, h, http.MethodPost, "/api/cv/regenerate", tt.req)
				assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			})
		}
	})
}

func TestRegenerateHandler_IDWithoutDatabase(t *testing.T) {
	_, h := newTestAPI(t, setup{})
	rr := do(t, h, http.MethodPost, "/api/cv/regenerate",
		RegenerateRequest{ID: uuid.NewString(), Text: transcript})
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetCVHandler(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		_, h := newTestAPI(t, setup{})
		rr := do(t, h, http.MethodGet, "/api/cv/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	store := newFakeStore()
	_, h := newTestAPI(t, setup{store: store})
	id := uuid.New()
	require.NoError(t, store.SaveRecord(context.Background(), &storage.Record{
		ID: id, Transcript: transcript, Language: "en", Method: cv.MethodLocal, Document: cv.Empty("en", time.Now()),
	}))
	store.entities[id] = []ner.Entity{{Text: "Go", Type: ner.Skill, Start: 0, End: 2, Confidence: 0.8}}

	rr := do(t, h, http.MethodGet, "/api/cv/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp RecordResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, id, resp.ID)
	assert.Len(t, resp.Entities, 1)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/cv/"+uuid.NewString(), nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/cv/not-a-uuid", nil).Code)
}

func upload(t *testing.T, h http.Handler, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("language", "en"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCVUploadHandler(t *testing.T) {
	store := newFakeStore()
	a, h := newTestAPI(t, setup{store: store})

	rr := upload(t, h, "interview.txt", transcript)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp ExtractResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "interview.txt", resp.Filename)
	assert.Equal(t, "test@example.com", resp.CV.Contact.Email)

	require.NoError(t, a.Shutdown(context.Background()))
	require.Len(t, store.files, 1)
	assert.Equal(t, ".txt", store.files[0].FileType)

	_, h = newTestAPI(t, setup{})
	assert.Equal(t, http.StatusUnsupportedMediaType, upload(t, h, "virus.exe", "MZ").Code)
	assert.Equal(t, http.StatusBadRequest, upload(t, h, "blank.txt", "  \n").Code)
}

func TestStreamHandlers(t *testing.T) {
	_, h := newTestAPI(t, setup{})

	rr := do(t, h, http.MethodPost, "/api/stream", StreamRequest{Language: "en"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created StreamResponse
	decodeBody(t, rr, &created)
	assert.Equal(t, int64(1000), created.DebounceMS)
	base := "/api/stream/" + created.ID

	rr = do(t, h, http.MethodPost, base+"/transcript", TranscriptRequest{Text: "My name is Test User."})
	require.Equal(t, http.StatusAccepted, rr.Code)
	var state StreamState
	decodeBody(t, rr, &state)
	assert.True(t, state.Pending)

	rr = do(t, h, http.MethodPost, base+"/transcript", TranscriptRequest{Text: transcript, Final: true})
	require.Equal(t, http.StatusOK, rr.Code)
	decodeBody(t, rr, &state)
	assert.False(t, state.Pending)
	assert.Equal(t, 1, state.Runs)
	require.NotNil(t, state.CV)
	assert.Equal(t, "test@example.com", state.CV.Contact.Email)

	rr = do(t, h, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeBody(t, rr, &state)
	assert.Equal(t, transcript, state.Text)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, base, nil).Code)
}

func TestStreamRegistry_Expire(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := newStreamRegistry()
	r.now = func() time.Time { return now }

	idle := &streamSession{id: uuid.New()}
	busy := &streamSession{id: uuid.New()}
	r.add(idle)
	r.add(busy)

	now = now.Add(8 * time.Minute)
	_, err := r.get(busy.id)
	require.NoError(t, err)
	assert.Empty(t, r.expire(10*time.Minute))

	now = now.Add(3 * time.Minute)
	expired := r.expire(10 * time.Minute)
	require.Len(t, expired, 1)
	assert.Equal(t, idle.id, expired[0].id)
	assert.Equal(t, 1, r.len())

	_, err = r.get(idle.id)
	assert.ErrorIs(t, err, errNoStream)
}

func TestStreamHandlers_IdleSessionIsClosed(t *testing.T) {
	a, h := newTestAPI(t, setup{streamTTL: 40 * time.Millisecond})

	rr := do(t, h, http.MethodPost, "/api/stream", StreamRequest{Language: "en"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created StreamResponse
	decodeBody(t, rr, &created)

	assert.Eventually(t, func() bool { return a.streams.len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/stream/"+created.ID, nil).Code)
}

func TestCreateStreamHandler_NoLocalPipeline(t *testing.T) {
	_, h := newTestAPI(t, setup{noLocal: true})
	rr := do(t, h, http.MethodPost, "/api/stream", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ner.ErrEmptyInput, http.StatusBadRequest},
		{errors.Wrap(cv.ErrUnsupportedFile, "x"), http.StatusUnsupportedMediaType},
		{cv.ErrMalformedEntities, http.StatusUnprocessableEntity},
		{&extraction.ExtractionError{Local: cv.ErrMalformedEntities}, http.StatusUnprocessableEntity},
		{storage.ErrNotFound, http.StatusNotFound},
		{extraction.ErrStreamClosed, http.StatusGone},
		{extraction.ErrConfiguration, http.StatusServiceUnavailable},
		{&extraction.ExtractionError{AI: extraction.ErrTimeout}, http.StatusBadGateway},
		{&extraction.ExtractionError{AI: errors.New("boom")}, http.StatusBadGateway},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.err))
		})
	}
}
