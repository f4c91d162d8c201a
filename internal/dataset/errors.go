package dataset

import (
	"errors"
	"fmt"
)

// LoadErrorCode categorizes dataset load failures.
type LoadErrorCode string

const (
	// LoadCodeMissingFile indicates an input CSV could not be opened.
	LoadCodeMissingFile LoadErrorCode = "MISSING_INPUT_FILE"

	// LoadCodeBadHeader indicates a required column is absent from the
	// CSV header.
	LoadCodeBadHeader LoadErrorCode = "BAD_HEADER"

	// LoadCodeBadRow indicates a row could not be parsed.
	LoadCodeBadRow LoadErrorCode = "BAD_ROW"
)

// LoadError describes a failure to load one of the input CSV files.
type LoadError struct {
	Code   LoadErrorCode
	Path   string
	Column string // set for LoadCodeBadHeader
	Line   int    // set for LoadCodeBadRow
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch e.Code {
	case LoadCodeMissingFile:
		return fmt.Sprintf("%s: input file %q: %v", e.Code, e.Path, e.Err)
	case LoadCodeBadHeader:
		return fmt.Sprintf("%s: input file %q has no %q column", e.Code, e.Path, e.Column)
	case LoadCodeBadRow:
		return fmt.Sprintf("%s: input file %q line %d: %v", e.Code, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: input file %q: %v", e.Code, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsMissingInputFile reports whether err is a LoadError for a file that
// could not be opened. Uses errors.As to handle wrapped errors.
func IsMissingInputFile(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == LoadCodeMissingFile
	}
	return false
}

func missingFileError(path string, err error) *LoadError {
	return &LoadError{Code: LoadCodeMissingFile, Path: path, Err: err}
}

func badHeaderError(path, column string) *LoadError {
	return &LoadError{Code: LoadCodeBadHeader, Path: path, Column: column}
}

func badRowError(path string, line int, err error) *LoadError {
	return &LoadError{Code: LoadCodeBadRow, Path: path, Line: line, Err: err}
}
