package i18n

import "errors"

var (
	// ErrNilComponent indicates a required language component was not provided.
	ErrNilComponent = errors.New("language component cannot be nil")

	// ErrUnknownID indicates an accessor id that the catalog index does not define.
	ErrUnknownID = errors.New("unknown string id")
)
