package resizer

import (
	"fmt"

	"github.com/pkg/errors"
)

type argumentError struct {
	message string
}

// NewArgumentError creates an error for malformed command line arguments
// from the given format string.
func NewArgumentError(msg string, v ...interface{}) error {
	return argumentError{fmt.Sprintf(msg, v...)}
}

func (a argumentError) Error() string {
	return a.message
}

// IsArgumentError checks if the given error is caused by malformed arguments.
func IsArgumentError(err error) bool {
	var a argumentError
	return errors.As(err, &a)
}

// decodeError is returned when an input file cannot be read or decoded.
type decodeError struct {
	path  string
	cause error
}

func newDecodeError(path string, cause error) error {
	return decodeError{path: path, cause: cause}
}

func (d decodeError) Error() string {
	return fmt.Sprintf("failed to decode %q: %v", d.path, d.cause)
}

// Cause returns the underlying error, see github.com/pkg/errors.
func (d decodeError) Cause() error {
	return d.cause
}

func (d decodeError) Unwrap() error {
	return d.cause
}

// IsDecodeError checks if the given error is a "decode" error.
func IsDecodeError(err error) bool {
	var d decodeError
	return errors.As(err, &d)
}

// encodeError is returned when a resized image cannot be written.
type encodeError struct {
	path  string
	cause error
}

func newEncodeError(path string, cause error) error {
	return encodeError{path: path, cause: cause}
}

func (e encodeError) Error() string {
	return fmt.Sprintf("failed to save %q: %v", e.path, e.cause)
}

// Cause returns the underlying error, see github.com/pkg/errors.
func (e encodeError) Cause() error {
	return e.cause
}

func (e encodeError) Unwrap() error {
	return e.cause
}

// IsEncodeError checks if the given error is an "encode" error.
func IsEncodeError(err error) bool {
	var e encodeError
	return errors.As(err, &e)
}
