package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	_ "voice-cv/docs" // Swagger docs
	"voice-cv/internal/api"
	"voice-cv/internal/config"
	"voice-cv/internal/cv"
	"voice-cv/internal/extraction"
	"voice-cv/internal/gazetteer"
	"voice-cv/internal/llm"
	"voice-cv/internal/ner"
	"voice-cv/internal/storage"
)

// @title Voice CV API
// @version 1.0
// @description Builds structured CVs from voice-transcribed self-introductions in 13 Indian languages and English
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := cfg.Logger()
	if cfg.EnvFile == "" {
		logger.Warn(".env file not found, using environment variables")
	}

	g := gazetteer.LoadOrBuiltin(cfg.GazetteerPath, logger)
	confidence := ner.DefaultConfidence()
	if cfg.ConfidenceFile != "" {
		if confidence, err = ner.LoadConfidence(cfg.ConfidenceFile, confidence); err != nil {
			logger.WithError(err).Fatal("confidence file")
		}
	}
	pipeline := ner.NewPipeline(g, ner.WithConfidence(confidence), ner.WithLogger(logger))
	mapper := cv.NewMapper(g)

	// A nil AI strategy leaves the local pipeline as the only one.
	var ai extraction.Strategy
	llmSvc := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel,
		llm.WithURL(cfg.LLMURL), llm.WithLogger(logger))
	if llmSvc.Available() {
		ai = llmSvc
		logger.WithFields(logrus.Fields{
			"provider": cfg.LLMProvider,
			"model":    cfg.LLMModel,
		}).Info("ai extraction configured")
	} else if cfg.LLMProvider != string(llm.ProviderNone) {
		logger.WithField("provider", cfg.LLMProvider).Warn("llm provider set but not usable (missing API key?)")
	}

	orchestrator := extraction.New(ai, extraction.NewLocalStrategy(pipeline, mapper), extraction.Config{
		AIEnabled:   cfg.AIEnabled,
		NERFallback: cfg.NERFallback,
		AITimeout:   cfg.AITimeout,
		Debounce:    cfg.StreamDebounce,
	}, logger)
	if stats := orchestrator.Stats(); !stats.AIAvailable && !stats.NERAvailable {
		logger.Warn("no extraction strategy enabled; extraction requests will fail")
	}

	var store api.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		db, err := storage.NewDB(ctx, cfg.DatabaseURL)
		if err == nil {
			err = db.Migrate(ctx)
		}
		cancel()
		if err != nil {
			logger.WithError(err).Fatal("database")
		}
		defer db.Close()
		store = db
		logger.Info("database connected")
	} else {
		logger.Warn("DATABASE_URL not set, extracted CVs will not be saved")
	}

	apiSrv := api.NewAPI(api.Deps{
		Orchestrator: orchestrator,
		Pipeline:     pipeline,
		Mapper:       mapper,
		Parser:       cv.NewParser(cfg.UploadsDir),
		Store:        store,
		Logger:       logger,

		StreamIdleTTL: cfg.StreamIdleTTL,
	})

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     api.NewRouter(apiSrv),
		ReadTimeout: 30 * time.Second, // uploads
		// AI extraction is bounded by AI_TIMEOUT; leave room for the fallback.
		WriteTimeout: cfg.AITimeout + time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("server shutdown")
		}
		if err := apiSrv.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("background workers did not drain")
		}
		close(idleConnsClosed)
	}()

	logger.WithField("port", cfg.Port).Info("API server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server")
	}

	<-idleConnsClosed
}
