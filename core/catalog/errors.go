package catalog

import "errors"

var (
	// ErrTruncated indicates the blob ended before a declared field.
	ErrTruncated = errors.New("catalog data truncated")

	// ErrTrailingData indicates bytes remain after the plural section.
	ErrTrailingData = errors.New("unexpected trailing data after catalog")

	// ErrInvalidKey indicates an empty or non UTF-8 key.
	ErrInvalidKey = errors.New("invalid catalog key")

	// ErrInvalidID indicates an id outside [0, MaxID].
	ErrInvalidID = errors.New("invalid catalog entry id")

	// ErrDuplicateID indicates an id that appears twice in the same section.
	ErrDuplicateID = errors.New("duplicate catalog entry id")

	// ErrUnknownCompression indicates an unsupported compression name.
	ErrUnknownCompression = errors.New("unknown catalog compression")

	// ErrTooLarge indicates a compressed catalog that inflates past its limit.
	ErrTooLarge = errors.New("catalog too large")

	// ErrNoLoader indicates a Registry was created without a loader.
	ErrNoLoader = errors.New("catalog loader is not provided")
)
