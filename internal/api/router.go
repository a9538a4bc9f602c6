package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("GET /health", a.HealthHandler)
	mux.HandleFunc("GET /api/stats", a.StatsHandler)

	// CV endpoints
	mux.HandleFunc("POST /api/cv/extract", a.ExtractHandler)
	mux.HandleFunc("POST /api/cv/upload", a.CVUploadHandler)
	mux.HandleFunc("POST /api/cv/entities", a.EntitiesHandler)
	mux.HandleFunc("POST /api/cv/regenerate", a.RegenerateHandler)
	mux.HandleFunc("GET /api/cv/{id}", a.GetCVHandler)

	// Streaming transcript sessions
	mux.HandleFunc("POST /api/stream", a.CreateStreamHandler)
	mux.HandleFunc("POST /api/stream/{id}/transcript", a.StreamTranscriptHandler)
	mux.HandleFunc("GET /api/stream/{id}", a.GetStreamHandler)
	mux.HandleFunc("DELETE /api/stream/{id}", a.CloseStreamHandler)

	return logRequests(a.logger, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": rec.status,
			"took":   time.Since(began),
		}).Debug("request served")
	})
}
