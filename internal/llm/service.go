package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voice-cv/internal/cv"
	httpclient "voice-cv/pkg/http"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGroq   Provider = "groq"
	ProviderNone   Provider = "none"
)

var defaultURLs = map[Provider]string{
	ProviderOpenAI: "https://api.openai.com/v1/chat/completions",
	ProviderGroq:   "https://api.groq.com/openai/v1/chat/completions",
	ProviderOllama: "http://localhost:11434/api/generate",
}

var (
	// ErrNotConfigured means no provider, or a hosted provider without a key.
	ErrNotConfigured = errors.New("LLM provider not configured")
	ErrEmptyResponse = errors.New("empty response from LLM")
)

// reviewThreshold is the model-reported confidence below which a document
// is flagged for human review.
const reviewThreshold = 0.7

// Service is the remote extraction strategy. It asks a chat model to fill
// the CV document structure directly from the transcript.
type Service struct {
	provider Provider
	apiKey   string
	model    string
	url      string
	client   *httpclient.Client
	logger   logrus.FieldLogger
	now      func() time.Time
}

type Option func(*Service)

// WithURL overrides the provider endpoint, e.g. a self-hosted Ollama.
func WithURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.url = url
		}
	}
}

func WithHTTPClient(c *httpclient.Client) Option {
	return func(s *Service) { s.client = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(provider, apiKey, model string, opts ...Option) *Service {
	p := Provider(strings.ToLower(strings.TrimSpace(provider)))
	if p == "" {
		p = ProviderNone
	}
	s := &Service{
		provider: p,
		apiKey:   apiKey,
		model:    model,
		url:      defaultURLs[p],
		// Backstop only; callers bound each extraction with their context.
		client: httpclient.NewClient(10 * time.Minute),
		logger: logrus.StandardLogger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Name() string {
	return "ai"
}

// Available reports whether the service can make calls at all.
func (s *Service) Available() bool {
	switch s.provider {
	case ProviderOllama:
		return s.url != ""
	case ProviderOpenAI, ProviderGroq:
		return s.apiKey != "" && s.url != ""
	default:
		return false
	}
}

func (s *Service) Provider() Provider {
	return s.provider
}

// Extract sends the transcript to the model and decodes the CV it returns.
// The call is bounded by ctx.
func (s *Service) Extract(ctx context.Context, text, lang string) (*cv.Document, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	began := time.Now()
	content, err := s.complete(ctx, s.buildPrompt(text, lang))
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"provider": s.provider,
		"model":    s.model,
		"took":     time.Since(began),
		"chars":    len(content),
	}).Debug("llm extraction returned")

	var doc cv.Document
	if err := json.Unmarshal([]byte(stripFences(content)), &doc); err != nil {
		return nil, errors.Wrap(err, "parse LLM response")
	}
	doc.Normalize()
	doc.Metadata.Language = lang
	if doc.Metadata.Timestamp.IsZero() {
		doc.Metadata.Timestamp = s.now()
	}
	if doc.Metadata.Confidence <= 0 || doc.Metadata.Confidence > 1 {
		doc.Metadata.Confidence = reviewThreshold
	}
	doc.Metadata.NeedsReview = doc.Metadata.NeedsReview ||
		doc.Metadata.Confidence < reviewThreshold ||
		doc.Contact.Name == "" ||
		(doc.Contact.Email == "" && doc.Contact.Phone == "")
	return &doc, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	switch s.provider {
	case ProviderOpenAI, ProviderGroq:
		return s.callChat(ctx, prompt)
	case ProviderOllama:
		return s.callOllama(ctx, prompt)
	default:
		return "", errors.Errorf("unknown provider: %s", s.provider)
	}
}

func (s *Service) buildPrompt(text, lang string) string {
	return fmt.Sprintf(`You are an expert résumé writer. The text below is a spoken, voice-transcribed
self-introduction in language %q. It may mix English with an Indian language.

Transcript:
"""
%s
"""

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "contact": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": ""},
  "summary": "Two or three sentences in the speaker's own words",
  "experience": [
    {"company": "", "position": "", "location": "", "startDate": "", "endDate": "", "description": "", "confidence": 0.9}
  ],
  "education": [
    {"degree": "", "institution": "", "field": "", "startDate": "", "endDate": "", "gpa": ""}
  ],
  "skills": {"technical": [], "soft": [], "languages": []},
  "certifications": [],
  "metadata": {"confidence": 0.9, "needsReview": false}
}

Important:
- Keep names, companies and places in the script they were spoken in
- Phone numbers and emails must appear exactly as in the transcript
- Use empty strings and empty arrays for anything not mentioned; never invent data
- Set metadata.needsReview to true when the transcript is ambiguous or incomplete`, lang, text)
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// callChat talks to the OpenAI-compatible chat completions API that both
// OpenAI and Groq expose.
func (s *Service) callChat(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a CV parser. Return only valid JSON.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"temperature": 0.1,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	var result chatResponse
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}
	if err := s.client.PostJSON(ctx, s.url, headers, reqBody, &result); err != nil {
		return "", errors.Wrapf(err, "%s API error", s.provider)
	}
	if result.Error.Message != "" {
		return "", errors.Errorf("%s error: %s", s.provider, result.Error.Message)
	}
	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", errors.Wrapf(ErrEmptyResponse, "%s", s.provider)
	}
	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := s.client.PostJSON(ctx, s.url, nil, reqBody, &result); err != nil {
		return "", errors.Wrap(err, "ollama request failed (is Ollama running?)")
	}
	if result.Error != "" {
		return "", errors.Errorf("ollama error: %s", result.Error)
	}
	if strings.TrimSpace(result.Response) == "" {
		return "", errors.Wrap(ErrEmptyResponse, "ollama")
	}
	return result.Response, nil
}

// stripFences removes a ```json fence some models add despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
