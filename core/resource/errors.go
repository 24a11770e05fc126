package resource

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat indicates a resource file whose extension has no parser.
	ErrUnsupportedFormat = errors.New("unsupported resource format")

	// ErrNoLanguage indicates a resource path that does not name a language.
	ErrNoLanguage = errors.New("cannot derive language from resource path")

	// ErrUnknownLanguage indicates a language the bundle has no component for.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("resource syntax error")
)

// SyntaxError reports malformed .strings input.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
