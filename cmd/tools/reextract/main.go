// Command reextract re-runs the local entity pipeline over stored
// transcripts, e.g. after the gazetteer or confidence table changed.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"voice-cv/internal/config"
	"voice-cv/internal/cv"
	"voice-cv/internal/gazetteer"
	"voice-cv/internal/ner"
	"voice-cv/internal/storage"
)

type store interface {
	ListRecords(ctx context.Context, criteria *storage.Criteria) ([]*storage.Record, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, doc *cv.Document, method string) error
	SaveEntities(ctx context.Context, recordID uuid.UUID, entities []ner.Entity) error
}

type options struct {
	dryRun   bool
	limit    int
	language string
	method   string
}

type summary struct {
	scanned, changed, failed int
}

func main() {
	var opts options
	flag.BoolVar(&opts.dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.IntVar(&opts.limit, "limit", 200, "Max number of records to process in one run")
	flag.StringVar(&opts.language, "language", "", "Only records in this language")
	flag.StringVar(&opts.method, "method", cv.MethodLocal, "Only records produced by this method (ai|ner|edited, empty for all)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := cfg.Logger()
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	db, err := storage.NewDB(connectCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to db")
	}
	defer db.Close()

	g := gazetteer.LoadOrBuiltin(cfg.GazetteerPath, logger)
	confidence := ner.DefaultConfidence()
	if cfg.ConfidenceFile != "" {
		if confidence, err = ner.LoadConfidence(cfg.ConfidenceFile, confidence); err != nil {
			logger.WithError(err).Fatal("confidence file")
		}
	}
	pipeline := ner.NewPipeline(g, ner.WithConfidence(confidence), ner.WithLogger(logger))

	sum, err := run(ctx, opts, db, pipeline, cv.NewMapper(g), logger)
	if err != nil {
		logger.WithError(err).Fatal("reextract")
	}
	logger.WithFields(logrus.Fields{
		"scanned": sum.scanned,
		"changed": sum.changed,
		"failed":  sum.failed,
		"dry_run": opts.dryRun,
	}).Info("done")
}

func run(ctx context.Context, opts options, db store, pipeline *ner.Pipeline, mapper *cv.Mapper, logger logrus.FieldLogger) (summary, error) {
	var sum summary
	records, err := db.ListRecords(ctx, &storage.Criteria{
		Language: opts.language,
		Method:   opts.method,
		Limit:    opts.limit,
	})
	if err != nil {
		return sum, err
	}

	for _, rec := range records {
		sum.scanned++
		log := logger.WithField("record", rec.ID)

		entities, err := pipeline.Extract(rec.Transcript, rec.Language)
		if err != nil {
			sum.failed++
			log.WithError(err).Warn("extraction failed")
			continue
		}
		doc, err := mapper.CreateCVStructure(entities, rec.Transcript, rec.Language)
		if err != nil {
			sum.failed++
			log.WithError(err).Warn("mapping failed")
			continue
		}
		doc.Metadata.Method = cv.MethodLocal
		doc.Metadata.EntityCount = len(entities)

		changes := diff(rec.Document, doc)
		if len(changes) == 0 {
			continue
		}
		sum.changed++
		log.WithFields(changes).Info("document changed")

		if opts.dryRun {
			continue
		}
		if err := db.UpdateDocument(ctx, rec.ID, doc, cv.MethodLocal); err != nil {
			sum.failed++
			log.WithError(err).Error("update failed")
			continue
		}
		if err := db.SaveEntities(ctx, rec.ID, entities); err != nil {
			sum.failed++
			log.WithError(err).Error("saving entities failed")
		}
	}
	return sum, nil
}

// diff lists the top-level fields that differ, old -> new.
func diff(before, after *cv.Document) logrus.Fields {
	if before == nil {
		before = cv.Empty("", time.Time{})
	}
	changes := logrus.Fields{}
	note := func(field string, was, now interface{}) {
		if was != now {
			changes[field] = []interface{}{was, now}
		}
	}
	note("name", before.Contact.Name, after.Contact.Name)
	note("email", before.Contact.Email, after.Contact.Email)
	note("phone", before.Contact.Phone, after.Contact.Phone)
	note("location", before.Contact.Location, after.Contact.Location)
	note("summary", before.Summary, after.Summary)
	note("experience", len(before.Experience), len(after.Experience))
	note("education", len(before.Education), len(after.Education))
	note("technical_skills", len(before.Skills.Technical), len(after.Skills.Technical))
	note("needs_review", before.Metadata.NeedsReview, after.Metadata.NeedsReview)
	return changes
}
