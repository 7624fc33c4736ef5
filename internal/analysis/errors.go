package analysis

import "errors"

var (
	// ErrTooLarge means the upload exceeds the size cap.
	ErrTooLarge = errors.New("file too large")
	// ErrInvalidFormat means the payload is not a parseable PDF.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrNoTextFound means extraction produced only whitespace.
	ErrNoTextFound = errors.New("no text found")
	// ErrAnalysisFailed wraps any model-client failure.
	ErrAnalysisFailed = errors.New("analysis failed")
	// ErrPersistenceFailed wraps any record-store failure.
	ErrPersistenceFailed = errors.New("persistence failed")
	// ErrNotFound means no matching record exists for the owner.
	ErrNotFound = errors.New("not found")
)
