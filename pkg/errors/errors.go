// Package errors provides structured, chainable errors for the container
// format engine. A bare "read failed" message is rarely enough to debug a
// lazily-parsed archive: callers need to know which source, which byte
// offset, and which invariant was violated.
//
// Every specialized error type embeds baseError, so all of them support the
// same fluent WithDetail/WithMessage chain while adding their own
// domain-specific context: ContainerError carries offset/expected/
// obtained/encoding for the four container-format error kinds (not a
// container, corrupt, unexpected EOF, unsupported encoding); SourceError,
// which carries the IO kind, records which registered source and logical offset an I/O
// failure happened at; ValidationError carries which configuration field
// failed and why.
package errors

import (
	stdErrors "errors"
)

// IsValidationError checks if the given error is a ValidationError or contains one in its error chain.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return stdErrors.As(err, &ve)
}

// IsSourceError determines if an error originated from reading or seeking
// on a caller-supplied Source, as opposed to the container format itself.
func IsSourceError(err error) bool {
	var se *SourceError
	return stdErrors.As(err, &se)
}

// IsContainerError determines if an error originated from the container
// format itself: bad magic, corrupt structure, a short read, or an
// unsupported entry encoding.
func IsContainerError(err error) bool {
	var ce *ContainerError
	return stdErrors.As(err, &ce)
}

// AsValidationError safely extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stdErrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsSourceError safely extracts a SourceError from an error chain.
func AsSourceError(err error) (*SourceError, bool) {
	var se *SourceError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsContainerError safely extracts a ContainerError from an error chain.
func AsContainerError(err error) (*ContainerError, bool) {
	var ce *ContainerError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from any error that supports it, or
// returns ErrorCodeInternal for errors that don't carry a specific code.
func GetErrorCode(err error) ErrorCode {
	if ve, ok := AsValidationError(err); ok {
		return ve.Code()
	}
	if se, ok := AsSourceError(err); ok {
		return se.Code()
	}
	if ce, ok := AsContainerError(err); ok {
		return ce.Code()
	}
	return ErrorCodeInternal
}

// GetErrorDetails extracts structured details from any error that supports
// them, returning an empty map for errors without details.
func GetErrorDetails(err error) map[string]any {
	if ve, ok := AsValidationError(err); ok {
		if details := ve.Details(); details != nil {
			return details
		}
	}
	if se, ok := AsSourceError(err); ok {
		if details := se.Details(); details != nil {
			return details
		}
	}
	if ce, ok := AsContainerError(err); ok {
		if details := ce.Details(); details != nil {
			return details
		}
	}
	return make(map[string]any)
}
