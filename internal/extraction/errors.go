package extraction

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is returned when neither the AI strategy nor the
	// local fallback can run.
	ErrConfiguration = errors.New("no extraction strategy available")

	// ErrTimeout marks an AI call that exceeded its time budget.
	ErrTimeout = errors.New("AI extraction timed out")

	ErrStreamClosed = errors.New("stream closed")
)

// ExtractionError reports that every attempted strategy failed. AI or Local
// is nil when that strategy was not attempted.
type ExtractionError struct {
	AI    error
	Local error
}

func (e *ExtractionError) Error() string {
	var parts []string
	if e.AI != nil {
		parts = append(parts, "ai: "+e.AI.Error())
	}
	if e.Local != nil {
		parts = append(parts, "ner: "+e.Local.Error())
	}
	return "extraction failed: " + strings.Join(parts, "; ")
}

func (e *ExtractionError) Unwrap() []error {
	var errs []error
	if e.AI != nil {
		errs = append(errs, e.AI)
	}
	if e.Local != nil {
		errs = append(errs, e.Local)
	}
	return errs
}
