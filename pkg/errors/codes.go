package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary: reading or seeking on the caller-supplied Source.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents client-side errors where the provided
	// data doesn't meet the system's requirements or constraints, e.g. a nil
	// Source or malformed Options.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected system failures that don't fit
	// into other categories.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Container-format error codes are the Go rendering of the error kind table:
// every failure that can occur while parsing or streaming a Tomo archive
// fits exactly one of these.
const (
	// ErrorCodeNotAContainer indicates a magic mismatch at a claimed
	// container-start position.
	ErrorCodeNotAContainer ErrorCode = "NOT_A_CONTAINER"

	// ErrorCodeCorruptContainer indicates an internal inconsistency: a bad
	// enum tag, a violated invariant, non-monotonic lookup offsets, or entry
	// bounds outside the entries region.
	ErrorCodeCorruptContainer ErrorCode = "CORRUPT_CONTAINER"

	// ErrorCodeUnexpectedEOF indicates read_exact could not obtain the
	// requested byte count before the source ran dry.
	ErrorCodeUnexpectedEOF ErrorCode = "UNEXPECTED_EOF"

	// ErrorCodeUnsupportedEncoding indicates an entry's encoding is not
	// handled by the core and no decoder was registered for it.
	ErrorCodeUnsupportedEncoding ErrorCode = "UNSUPPORTED_ENCODING"
)
