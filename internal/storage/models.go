package storage

import (
	"time"

	"github.com/google/uuid"

	"voice-cv/internal/cv"
)

// Record is one transcript together with the CV extracted from it.
type Record struct {
	ID         uuid.UUID    `json:"id"`
	Transcript string       `json:"transcript"`
	Language   string       `json:"language"`
	Method     string       `json:"method"`
	Document   *cv.Document `json:"document"`
	SourceFile string       `json:"sourceFile,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Criteria filters ListRecords. Zero values match everything.
type Criteria struct {
	Language    string `json:"language"`
	Method      string `json:"method"`
	NeedsReview *bool  `json:"needsReview"`
	Limit       int    `json:"limit"`
}

// FileInfo represents metadata about an uploaded transcript or CV file
type FileInfo struct {
	ID         int64
	RecordID   uuid.UUID
	Filename   string
	FilePath   string
	FileType   string
	FileSize   int64
	UploadedAt time.Time
}
