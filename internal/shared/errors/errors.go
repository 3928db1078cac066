package errors

import "errors"

// Domain errors
var (
	// Report errors
	ErrReportNotFound   = errors.New("report not found")
	ErrEmptyHost        = errors.New("host cannot be empty")
	ErrEmptyReport      = errors.New("report cannot be empty")
	ErrInvalidReportURL = errors.New("report URL cannot be empty")

	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidTarget = errors.New("target is not a valid URL")

	// Analyzer errors
	ErrAnalyzerUnavailable = errors.New("AI analyzer is not configured")
	ErrMissingAPIKey       = errors.New("AI API key is not set")

	// Repository errors
	ErrRepositoryOperation   = errors.New("repository operation failed")
	ErrSerializationFailed   = errors.New("serialization failed")
	ErrDeserializationFailed = errors.New("deserialization failed")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
