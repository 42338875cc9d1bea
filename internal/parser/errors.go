package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError
	ErrFormat = errors.New("malformed configuration value")

	// ErrMissingKey matches every *MissingKeyError
	ErrMissingKey = errors.New("missing configuration key")
)

// FormatError reports a value that could not be parsed: a position literal,
// a list literal, a unit entry or an integer.
type FormatError struct {
	Key  string // configuration key the value belongs to
	Text string // offending text
	Err  error  // underlying cause, may be nil
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed %s value %q", e.Key, e.Text)
	}
	return fmt.Sprintf("malformed %s value %q: %v", e.Key, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// MissingKeyError reports a scalar key absent from the file. Only returned
// when the parser runs with WithStrictKeys.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing configuration key %s", e.Key)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

func formatErr(key, text string, err error) error {
	return &FormatError{Key: key, Text: text, Err: err}
}
