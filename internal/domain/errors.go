package domain

import "errors"

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrUnsupportedAdapter  = errors.New("unsupported adapter")
	ErrNormalizationFailed = errors.New("document normalization failed")
	ErrSchemaMismatch      = errors.New("row does not match output schema")
	ErrInvalidArchive      = errors.New("invalid zip archive")
	ErrMissingFile         = errors.New("file field is required")
)
