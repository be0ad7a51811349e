package recode

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnsupportedEncoding indicates an encoding label outside the known set.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrInvalidInput indicates input that does not follow the grammar of
	// its encoding.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// EncodingError represents a failure inside a codec or dispatcher.
// It wraps a sentinel error with the encoding and input position involved.
type EncodingError struct {
	Err      error    // Underlying sentinel error (ErrInvalidInput, ErrUnsupportedEncoding)
	Encoding Encoding // Encoding being decoded or encoded
	Offset   int      // Position in the input where decoding stopped, -1 if unknown
	Cause    error    // Original error from the underlying decoder, if any
}

func (e *EncodingError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Err.Error(), e.Encoding)
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// FieldError represents a failure converting a tagged struct field.
type FieldError struct {
	Err      error  // Underlying sentinel error (ErrInvalidTag, ErrInvalidInput, ...)
	Field    string // Field name that failed
	Encoding string // Tag value or conversion involved
	Cause    error  // Original error from the conversion
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("field %s (%s): %v", e.Field, e.Encoding, e.Cause)
	}
	if e.Encoding != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Encoding, e.Field)
	}
	return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newEncodingError creates an EncodingError for codec failures.
func newEncodingError(sentinel error, enc Encoding, offset int, cause error) error {
	return &EncodingError{
		Err:      sentinel,
		Encoding: enc,
		Offset:   offset,
		Cause:    cause,
	}
}

// invalidInput is shorthand for the common ErrInvalidInput case.
func invalidInput(enc Encoding, offset int, cause error) error {
	return newEncodingError(ErrInvalidInput, enc, offset, cause)
}

// newFieldError creates a FieldError for field conversion failures.
func newFieldError(sentinel error, field, encoding string, cause error) error {
	return &FieldError{
		Err:      sentinel,
		Field:    field,
		Encoding: encoding,
		Cause:    cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
