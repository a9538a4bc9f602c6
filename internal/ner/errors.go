package ner

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned for blank or whitespace-only text. Nothing is
// tokenized in that case.
var ErrEmptyInput = errors.New("empty input text")

// ExtractorFailure records a category extractor that errored or panicked.
// The pipeline logs it and carries on without that category.
type ExtractorFailure struct {
	Category string
	Err      error
}

func (f *ExtractorFailure) Error() string {
	return fmt.Sprintf("%s extractor failed: %v", f.Category, f.Err)
}

func (f *ExtractorFailure) Unwrap() error {
	return f.Err
}
