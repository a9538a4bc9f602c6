package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voice-cv/internal/cv"
	"voice-cv/internal/extraction"
	"voice-cv/internal/ner"
	"voice-cv/internal/storage"
)

const maxUploadSize = 10 << 20

type ExtractRequest struct {
	Text     string `json:"text" example:"My name is Priya Sharma. I worked at Infosys in Pune."`
	Language string `json:"language" example:"en"`
}

type ExtractResponse struct {
	// ID is set when the CV was queued for saving.
	ID               string       `json:"id,omitempty"`
	CV               *cv.Document `json:"cv"`
	Method           string       `json:"method"`
	ProcessingTimeMS int64        `json:"processingTimeMs"`
	FallbackReason   string       `json:"fallbackReason,omitempty"`
	Filename         string       `json:"filename,omitempty"`
}

type EntitiesResponse struct {
	Language string       `json:"language"`
	Entities []ner.Entity `json:"entities"`
}

type RegenerateRequest struct {
	// ID of a stored CV to update. Optional.
	ID       string       `json:"id,omitempty"`
	Text     string       `json:"text"`
	Language string       `json:"language"`
	Entities []ner.Entity `json:"entities"`
}

type RecordResponse struct {
	*storage.Record
	Entities []ner.Entity `json:"entities"`
}

func language(lang string) string {
	if lang = strings.TrimSpace(lang); lang == "" {
		return "en"
	}
	return lang
}

// ExtractHandler builds a CV from a transcript
// @Summary Extract CV from transcript
// @Description Runs the AI strategy, falling back to the local entity pipeline when configured
// @Tags cv
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Transcript and language code"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/cv/extract [post]
func (a *API) ExtractHandler(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	lang := language(req.Language)

	res, err := a.orchestrator.ExtractCV(r.Context(), req.Text, lang)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a.respond(res, req.Text, lang, nil))
}

// CVUploadHandler handles transcript or CV file uploads and extraction
// @Summary Upload a transcript or CV file
// @Description Upload a TXT, PDF, DOC(X), RTF or ODT file and extract a CV from its text
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Transcript or CV file"
// @Param language formData string false "Language code (default en)"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} errorResponse
// @Failure 415 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/cv/upload [post]
func (a *API) CVUploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		a.writeError(w, r, errors.Wrap(errBadRequest, "file too large or invalid (max 10MB)"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, r, errors.Wrap(errBadRequest, "no file uploaded"))
		return
	}
	defer file.Close()

	upload, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	lang := language(r.FormValue("language"))
	a.logger.WithFields(logrus.Fields{
		"file":     upload.Filename,
		"chars":    len(upload.Text),
		"language": lang,
	}).Info("upload parsed")

	res, err := a.orchestrator.ExtractCV(r.Context(), upload.Text, lang)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	resp := a.respond(res, upload.Text, lang, upload)
	resp.Filename = upload.Filename
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) respond(res *extraction.Result, text, lang string, upload *cv.Upload) ExtractResponse {
	resp := ExtractResponse{
		CV:               res.Document,
		Method:           res.Method,
		ProcessingTimeMS: res.Document.Metadata.ProcessingTimeMS,
	}
	if res.AIError != nil {
		resp.FallbackReason = res.AIError.Error()
	}

	rec := &storage.Record{
		ID:         uuid.New(),
		Transcript: text,
		Language:   lang,
		Method:     res.Method,
		Document:   res.Document,
	}
	if upload != nil {
		rec.SourceFile = upload.Filename
	}
	if a.queuePersist(rec, upload) {
		resp.ID = rec.ID.String()
	}
	return resp
}

// EntitiesHandler returns the raw entity list for the validation UI
// @Summary Extract entities
// @Description Runs only the local rule-based pipeline and returns positioned entities
// @Tags cv
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Transcript and language code"
// @Success 200 {object} EntitiesResponse
// @Failure 400 {object} errorResponse
// @Router /api/cv/entities [post]
func (a *API) EntitiesHandler(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	lang := language(req.Language)

	entities, err := a.pipeline.Extract(req.Text, lang)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if entities == nil {
		entities = []ner.Entity{}
	}
	writeJSON(w, http.StatusOK, EntitiesResponse{Language: lang, Entities: entities})
}

// RegenerateHandler maps a user-edited entity list back onto a CV
// @Summary Regenerate CV from edited entities
// @Description Feeds corrected entities through the field mapper; updates the stored CV when id is given
// @Tags cv
// @Accept json
// @Produce json
// @Param request body RegenerateRequest true "Transcript, language and entities"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /api/cv/regenerate [post]
func (a *API) RegenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req RegenerateRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}

	var id uuid.UUID
	if req.ID != "" {
		var err error
		if id, err = parseID(req.ID); err != nil {
			a.writeError(w, r, err)
			return
		}
		if a.store == nil {
			a.writeError(w, r, errNoDatabase)
			return
		}
	}

	text, lang := req.Text, language(req.Language)
	if text == "" && id != uuid.Nil {
		rec, err := a.store.GetRecord(r.Context(), id)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		text = rec.Transcript
		if req.Language == "" {
			lang = rec.Language
		}
	}
	if strings.TrimSpace(text) == "" {
		a.writeError(w, r, ner.ErrEmptyInput)
		return
	}

	doc, err := a.mapper.CreateCVStructure(req.Entities, text, lang)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	doc.Metadata.Method = cv.MethodEdited
	doc.Metadata.EntityCount = len(req.Entities)

	resp := ExtractResponse{CV: doc, Method: cv.MethodEdited}
	if id != uuid.Nil {
		if err := a.store.UpdateDocument(r.Context(), id, doc, cv.MethodEdited); err != nil {
			a.writeError(w, r, err)
			return
		}
		if err := a.store.SaveEntities(r.Context(), id, req.Entities); err != nil {
			a.writeError(w, r, err)
			return
		}
		resp.ID = id.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCVHandler returns a stored CV with its entities
// @Summary Get stored CV
// @Tags cv
// @Produce json
// @Param id path string true "CV id"
// @Success 200 {object} RecordResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /api/cv/{id} [get]
func (a *API) GetCVHandler(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		a.writeError(w, r, errNoDatabase)
		return
	}
	id, err := parseID(r.PathValue("id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	rec, err := a.store.GetRecord(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	entities, err := a.store.GetEntities(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RecordResponse{Record: rec, Entities: entities})
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(errBadRequest, "invalid id %q", raw)
	}
	return id, nil
}
