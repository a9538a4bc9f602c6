package api

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"voice-cv/internal/cv"
	"voice-cv/internal/storage"
)

// persistJob is an extracted CV waiting to be written to the database.
type persistJob struct {
	record    *storage.Record
	upload    *cv.Upload
	Timestamp time.Time
}

// saveTimeout bounds one job; the worker has no request context.
const saveTimeout = 30 * time.Second

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	a.workers.Add(2)
	go a.persistWorker()
	go a.streamJanitor()

	a.logger.WithFields(logrus.Fields{
		"database":        a.store != nil,
		"stream_idle_ttl": a.streamTTL,
	}).Info("background workers started")
}

// streamJanitor closes abandoned stream sessions until shutdown.
func (a *API) streamJanitor() {
	defer a.workers.Done()

	interval := a.streamTTL / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			for _, s := range a.streams.expire(a.streamTTL) {
				s.stream.Close()
				a.logger.WithField("stream", s.id).Info("idle stream closed")
			}
		}
	}
}

// persistWorker saves queued records until the queue is closed.
func (a *API) persistWorker() {
	defer a.workers.Done()

	for job := range a.persistQueue {
		log := a.logger.WithField("record", job.record.ID)
		if err := a.persist(job); err != nil {
			log.WithError(err).Error("failed to persist cv")
			continue
		}
		log.WithFields(logrus.Fields{
			"method": job.record.Method,
			"took":   time.Since(job.Timestamp),
		}).Debug("cv persisted")
	}
}

func (a *API) persist(job persistJob) error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	rec := job.record
	if err := a.store.SaveRecord(ctx, rec); err != nil {
		return err
	}

	// The entity list backs the validation UI whichever strategy produced
	// the document, so it always comes from the local pipeline.
	entities, err := a.pipeline.Extract(rec.Transcript, rec.Language)
	if err != nil {
		a.logger.WithError(err).WithField("record", rec.ID).Warn("no entities stored")
	} else if err := a.store.SaveEntities(ctx, rec.ID, entities); err != nil {
		return err
	}

	if job.upload != nil {
		if _, err := a.store.SaveFile(ctx, rec.ID, job.upload); err != nil {
			return err
		}
	}
	return nil
}

// queuePersist hands rec to the worker without blocking the request. It
// reports false when nothing will be saved.
func (a *API) queuePersist(rec *storage.Record, upload *cv.Upload) bool {
	if a.store == nil {
		return false
	}

	a.persistMu.RLock()
	defer a.persistMu.RUnlock()
	if a.closed {
		return false
	}

	job := persistJob{
		record:    rec,
		upload:    upload,
		Timestamp: time.Now(),
	}

	// Non-blocking send
	select {
	case a.persistQueue <- job:
		return true
	default:
		a.logger.WithField("record", rec.ID).Warn("persist queue full, dropping cv")
		return false
	}
}
