package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pkg/errors"

	"voice-cv/internal/cv"
	"voice-cv/internal/ner"
)

var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS cv_records (
    id          UUID PRIMARY KEY,
    transcript  TEXT NOT NULL,
    language    TEXT NOT NULL,
    method      TEXT NOT NULL,
    document    JSONB NOT NULL,
    source_file TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS cv_records_language_idx ON cv_records (language);

CREATE TABLE IF NOT EXISTS cv_entities (
    id          BIGSERIAL PRIMARY KEY,
    record_id   UUID NOT NULL REFERENCES cv_records(id) ON DELETE CASCADE,
    entity_type TEXT NOT NULL,
    subtype     TEXT NOT NULL DEFAULT '',
    text        TEXT NOT NULL,
    start_pos   INT NOT NULL,
    end_pos     INT NOT NULL,
    confidence  DOUBLE PRECISION NOT NULL,
    language    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cv_files (
    id          BIGSERIAL PRIMARY KEY,
    record_id   UUID REFERENCES cv_records(id) ON DELETE SET NULL,
    filename    TEXT NOT NULL,
    file_path   TEXT NOT NULL,
    file_type   TEXT NOT NULL,
    file_size   BIGINT NOT NULL,
    uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

type DB struct {
	connection *sql.DB
}

func NewDB(ctx context.Context, dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() error {
	return db.connection.Close()
}

// Migrate creates the tables if they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.connection.ExecContext(ctx, schema)
	return errors.Wrap(err, "migrate")
}

// SaveRecord inserts the record, or replaces the document of an existing
// record with the same id.
func (db *DB) SaveRecord(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	doc, err := json.Marshal(rec.Document)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	query := `INSERT INTO cv_records (id, transcript, language, method, document, source_file)
              VALUES ($1, $2, $3, $4, $5, $6)
              ON CONFLICT (id) DO UPDATE
                SET transcript = EXCLUDED.transcript,
                    language = EXCLUDED.language,
                    method = EXCLUDED.method,
                    document = EXCLUDED.document,
                    source_file = EXCLUDED.source_file,
                    updated_at = NOW()
              RETURNING created_at, updated_at`
	err = db.connection.QueryRowContext(ctx, query,
		rec.ID, rec.Transcript, rec.Language, rec.Method, doc, rec.SourceFile,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	return errors.Wrapf(err, "save record %s", rec.ID)
}

func (db *DB) GetRecord(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM cv_records WHERE id = $1`
	rec, err := scanRecord(db.connection.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "%s", id)
	}
	return rec, err
}

// UpdateDocument stores a regenerated or hand-edited document.
func (db *DB) UpdateDocument(ctx context.Context, id uuid.UUID, doc *cv.Document, method string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}
	res, err := db.connection.ExecContext(ctx,
		`UPDATE cv_records SET document = $2, method = $3, updated_at = NOW() WHERE id = $1`,
		id, raw, method)
	if err != nil {
		return errors.Wrapf(err, "update record %s", id)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.Wrapf(ErrNotFound, "%s", id)
	}
	return nil
}

// ListRecords returns records matching the criteria, newest first.
func (db *DB) ListRecords(ctx context.Context, criteria *Criteria) ([]*Record, error) {
	query, args := listQuery(criteria)
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	defer rows.Close()

	var res []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func listQuery(criteria *Criteria) (string, []interface{}) {
	base := `SELECT ` + recordColumns + ` FROM cv_records`
	var where []string
	var args []interface{}
	i := 1

	if criteria == nil {
		criteria = &Criteria{}
	}

	if criteria.Language != "" {
		where = append(where, fmt.Sprintf("language = $%d", i))
		args = append(args, criteria.Language)
		i++
	}
	if criteria.Method != "" {
		where = append(where, fmt.Sprintf("method = $%d", i))
		args = append(args, criteria.Method)
		i++
	}
	if criteria.NeedsReview != nil {
		where = append(where, fmt.Sprintf("(document->'metadata'->>'needsReview')::boolean = $%d", i))
		args = append(args, *criteria.NeedsReview)
		i++
	}

	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}
	base += " ORDER BY created_at DESC"
	if criteria.Limit > 0 {
		base += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, criteria.Limit)
	}
	return base, args
}

const recordColumns = `id, transcript, language, method, document, source_file, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*Record, error) {
	rec := &Record{}
	var doc []byte
	err := row.Scan(&rec.ID, &rec.Transcript, &rec.Language, &rec.Method, &doc,
		&rec.SourceFile, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Document = &cv.Document{}
	if err := json.Unmarshal(doc, rec.Document); err != nil {
		return nil, errors.Wrapf(err, "decode document of %s", rec.ID)
	}
	rec.Document.Normalize()
	return rec, nil
}

// SaveEntities replaces the entity list stored for a record.
func (db *DB) SaveEntities(ctx context.Context, recordID uuid.UUID, entities []ner.Entity) (err error) {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM cv_entities WHERE record_id = $1`, recordID); err != nil {
		return errors.Wrap(err, "clear entities")
	}
	query := `
        INSERT INTO cv_entities (record_id, entity_type, subtype, text, start_pos, end_pos, confidence, language)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	for _, e := range entities {
		_, err = tx.ExecContext(ctx, query, recordID, string(e.Type), string(e.Subtype),
			e.Text, e.Start, e.End, e.Confidence, e.Language)
		if err != nil {
			return errors.Wrapf(err, "save entity %s", e)
		}
	}
	return errors.Wrap(tx.Commit(), "commit")
}

func (db *DB) GetEntities(ctx context.Context, recordID uuid.UUID) ([]ner.Entity, error) {
	rows, err := db.connection.QueryContext(ctx, `
        SELECT entity_type, subtype, text, start_pos, end_pos, confidence, language
        FROM cv_entities WHERE record_id = $1 ORDER BY start_pos`, recordID)
	if err != nil {
		return nil, errors.Wrap(err, "get entities")
	}
	defer rows.Close()

	entities := []ner.Entity{}
	for rows.Next() {
		var e ner.Entity
		var typ, sub string
		if err := rows.Scan(&typ, &sub, &e.Text, &e.Start, &e.End, &e.Confidence, &e.Language); err != nil {
			return nil, err
		}
		e.Type, e.Subtype = ner.EntityType(typ), ner.Subtype(sub)
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// SaveFile saves uploaded file metadata
func (db *DB) SaveFile(ctx context.Context, recordID uuid.UUID, upload *cv.Upload) (int64, error) {
	var id int64
	query := `
        INSERT INTO cv_files (record_id, filename, file_path, file_type, file_size, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id
    `
	err := db.connection.QueryRowContext(ctx, query,
		recordID, upload.Filename, upload.Path, upload.FileType, upload.FileSize,
	).Scan(&id)
	return id, errors.Wrap(err, "save file")
}

