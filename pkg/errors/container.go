package errors

// ContainerError is a specialized error type for failures in the on-disk
// container format itself: a bad magic, a violated invariant, a short
// read, or an entry encoding the core doesn't know how to decode. It embeds
// baseError to inherit chaining and structured details.
type ContainerError struct {
	*baseError
	offset   int64 // NotAContainer: the position the magic was expected at.
	expected int   // UnexpectedEOF: bytes requested.
	obtained int   // UnexpectedEOF: bytes actually read.
	encoding uint8 // UnsupportedEncoding: the raw encoding tag byte.
}

// NewContainerError creates a new container-format error.
func NewContainerError(err error, code ErrorCode, msg string) *ContainerError {
	return &ContainerError{baseError: NewBaseError(err, code, msg)}
}

// WithOffset records the stream position a container was expected at.
func (ce *ContainerError) WithOffset(offset int64) *ContainerError {
	ce.offset = offset
	return ce
}

// WithExpected records how many bytes a read_exact call requested.
func (ce *ContainerError) WithExpected(n int) *ContainerError {
	ce.expected = n
	return ce
}

// WithObtained records how many bytes a read_exact call actually got.
func (ce *ContainerError) WithObtained(n int) *ContainerError {
	ce.obtained = n
	return ce
}

// WithEncoding records the unsupported encoding tag.
func (ce *ContainerError) WithEncoding(encoding uint8) *ContainerError {
	ce.encoding = encoding
	return ce
}

// Offset returns the stream position a container was expected at.
func (ce *ContainerError) Offset() int64 { return ce.offset }

// Expected returns the byte count a read_exact call requested.
func (ce *ContainerError) Expected() int { return ce.expected }

// Obtained returns the byte count a read_exact call actually got.
func (ce *ContainerError) Obtained() int { return ce.obtained }

// Encoding returns the unsupported encoding tag.
func (ce *ContainerError) Encoding() uint8 { return ce.encoding }

// NewNotAContainerError builds the error for a magic mismatch at a claimed
// container-start position.
func NewNotAContainerError(offset int64) *ContainerError {
	ce := NewContainerError(nil, ErrorCodeNotAContainer, "magic mismatch at container start").
		WithOffset(offset)
	ce.WithDetail("offset", offset)
	return ce
}

// NewCorruptContainerError builds the error for an internal inconsistency:
// a bad enum tag, a violated invariant, non-monotonic lookup offsets, or
// entry bounds outside the entries region.
func NewCorruptContainerError(reason string) *ContainerError {
	return NewContainerError(nil, ErrorCodeCorruptContainer, reason)
}

// NewUnexpectedEOFError builds the error for a read_exact call that could
// not obtain the requested byte count.
func NewUnexpectedEOFError(expected, obtained int) *ContainerError {
	ce := NewContainerError(nil, ErrorCodeUnexpectedEOF, "unexpected end of source").
		WithExpected(expected).
		WithObtained(obtained)
	ce.WithDetail("expected", expected)
	ce.WithDetail("obtained", obtained)
	return ce
}

// NewUnsupportedEncodingError builds the error for an entry whose encoding
// the core cannot decode and for which no decoder was registered.
func NewUnsupportedEncodingError(encoding uint8) *ContainerError {
	ce := NewContainerError(nil, ErrorCodeUnsupportedEncoding, "unsupported entry encoding").
		WithEncoding(encoding)
	ce.WithDetail("encoding", encoding)
	return ce
}
