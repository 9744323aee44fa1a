package devkit

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed conversion.
type ErrorKind string

const (
	// KindInvalidEncoding covers malformed Base64, malformed percent escapes
	// and text that cannot be represented in the target encoding.
	KindInvalidEncoding ErrorKind = "invalid_encoding"

	// KindInvalidPattern covers regular expressions that fail to compile or run.
	KindInvalidPattern ErrorKind = "invalid_pattern"

	// KindInvalidColorInput covers color input outside the accepted grammar.
	KindInvalidColorInput ErrorKind = "invalid_color_input"

	// KindInvalidFormat covers malformed data URLs, documents and unknown
	// format, algorithm or charset requests.
	KindInvalidFormat ErrorKind = "invalid_format"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidEncoding indicates input could not be encoded or decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidPattern indicates a regular expression could not be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidColorInput indicates color input did not match its grammar.
	ErrInvalidColorInput = errors.New("invalid color input")

	// ErrInvalidFormat indicates a malformed data URL, document or format request.
	ErrInvalidFormat = errors.New("invalid format")
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidEncoding:   ErrInvalidEncoding,
	KindInvalidPattern:    ErrInvalidPattern,
	KindInvalidColorInput: ErrInvalidColorInput,
	KindInvalidFormat:     ErrInvalidFormat,
}

// ConversionError represents a failed transformation.
// It wraps a sentinel error with the operation that failed and the underlying cause.
type ConversionError struct {
	Err   error  // Underlying sentinel error (ErrInvalidEncoding, etc.)
	Op    string // Operation that failed (base64.decode, regex.compile, ...)
	Cause error  // Original error from the underlying primitive, if any
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Kind returns the ErrorKind matching the wrapped sentinel.
func (e *ConversionError) Kind() ErrorKind {
	for kind, sentinel := range kindSentinels {
		if e.Err == sentinel {
			return kind
		}
	}
	return ""
}

// newConversionError creates a ConversionError for a failed operation.
func newConversionError(sentinel error, op string, cause error) error {
	return &ConversionError{
		Err:   sentinel,
		Op:    op,
		Cause: cause,
	}
}

// KindOf reports the ErrorKind of err, or "" when err is nil or foreign.
func KindOf(err error) ErrorKind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind()
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return ""
}

// Result carries either a value or a classified failure.
// It exists for callers that render a single value per tool invocation;
// every operation in this package also returns a plain (value, error) pair.
type Result[T any] struct {
	Value   T
	Kind    ErrorKind
	Message string
}

// OK reports whether the result holds a value.
func (r Result[T]) OK() bool {
	return r.Kind == "" && r.Message == ""
}

// Capture folds a (value, error) pair into a Result.
func Capture[T any](v T, err error) Result[T] {
	if err == nil {
		return Result[T]{Value: v}
	}
	kind := KindOf(err)
	if kind == "" {
		kind = KindInvalidFormat
	}
	var zero T
	return Result[T]{Value: zero, Kind: kind, Message: err.Error()}
}
