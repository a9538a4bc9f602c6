package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "voice-cv/pkg/http"
)

const extracted = `{
  "contact": {"name": "Priya Sharma", "email": "priya@example.com", "phone": "9876543210", "location": "Pune"},
  "summary": "Backend engineer.",
  "experience": [{"company": "Infosys", "position": "Engineer", "confidence": 0.9}],
  "skills": {"technical": ["Go"]},
  "metadata": {"confidence": 0.85}
}`

func newTestService(t *testing.T, provider, key string, h http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	logger, _ := test.NewNullLogger()
	return NewService(provider, key, "test-model",
		WithURL(srv.URL),
		WithLogger(logger),
		WithHTTPClient(httpclient.NewClient(5*time.Second)),
	)
}

func TestService_Available(t *testing.T) {
	tests := []struct {
		provider string
		key      string
		want     bool
	}{
		{"openai", "sk-test", true},
		{"openai", "", false},
		{"GROQ", "gsk", true},
		{"ollama", "", true},
		{"none", "key", false},
		{"", "key", false},
		{"anthropomorphic", "key", false},
	}
	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, NewService(tt.provider, tt.key, "m").Available())
		})
	}
}

func TestService_ExtractNotConfigured(t *testing.T) {
	_, err := NewService("openai", "", "gpt").Extract(context.Background(), "text", "en")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestService_ExtractChat(t *testing.T) {
	var got map[string]interface{}
	s := newTestService(t, "groq", "gsk-secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gsk-secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "```json\n" + extracted + "\n```"}},
			},
		})
	})

	doc, err := s.Extract(context.Background(), "मेरा नाम प्रिया है", "hi")
	require.NoError(t, err)

	assert.Equal(t, "test-model", got["model"])
	assert.Equal(t, "Priya Sharma", doc.Contact.Name)
	assert.Equal(t, "Infosys", doc.Experience[0].Company)
	assert.Equal(t, []string{"Go"}, doc.Skills.Technical)
	assert.NotNil(t, doc.Skills.Soft)
	assert.NotNil(t, doc.Education)
	assert.Equal(t, "hi", doc.Metadata.Language)
	assert.InDelta(t, 0.85, doc.Metadata.Confidence, 1e-9)
	assert.False(t, doc.Metadata.NeedsReview)
	assert.False(t, doc.Metadata.Timestamp.IsZero())
}

func TestService_ExtractOllama(t *testing.T) {
	s := newTestService(t, "ollama", "", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, false, body["stream"])
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"response": `{"contact": {"name": "Ravi"}, "metadata": {"confidence": 0.5}}`,
		})
	})

	doc, err := s.Extract(context.Background(), "I am Ravi", "en")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", doc.Contact.Name)
	assert.True(t, doc.Metadata.NeedsReview, "low confidence and no contact details")
}

func TestService_ExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		handler  http.HandlerFunc
		want     string
	}{
		{
			name:     "status",
			provider: "openai",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
			want: "Too Many Requests",
		},
		{
			name:     "api error body",
			provider: "openai",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": {"message": "model not found"}}`))
			},
			want: "model not found",
		},
		{
			name:     "no choices",
			provider: "groq",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices": []}`))
			},
			want: "empty response",
		},
		{
			name:     "not json",
			provider: "ollama",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"response": "Sure! Here is the CV"}`))
			},
			want: "parse LLM response",
		},
		{
			name:     "ollama error",
			provider: "ollama",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": "model 'x' not found"}`))
			},
			want: "ollama error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t, tt.provider, "key", tt.handler)
			_, err := s.Extract(context.Background(), "text", "en")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestService_ExtractHonoursContext(t *testing.T) {
	s := newTestService(t, "openai", "key", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := s.Extract(ctx, "text", "en")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripFences(`  {"a":1} `))
}
