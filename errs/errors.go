// Package errs defines the sentinel errors shared across the mummy codec.
//
// Decode failures never advance the buffer cursor; encode failures never
// leave partial output behind. Callers match these with errors.Is.
package errs

import "errors"

var (
	// ErrShortBuffer indicates the decoder saw fewer bytes than the current
	// tag requires. The cursor is left where it was.
	ErrShortBuffer = errors.New("buffer too short for encoded value")

	// ErrBadTag indicates the tag at the cursor is not valid for the
	// requested read operation.
	ErrBadTag = errors.New("tag does not match requested read")

	// ErrTruncated indicates a copying read was given a destination smaller
	// than the encoded value. The true length is reported alongside so the
	// caller can retry with a larger destination; the cursor does not move.
	ErrTruncated = errors.New("destination smaller than encoded value")

	// ErrInvalidDigit indicates a decimal digit outside [0, 9] was passed to
	// the encoder.
	ErrInvalidDigit = errors.New("decimal digit out of range 0-9")

	// ErrTooManyDigits indicates a decimal digit count that does not fit the
	// 2-byte wire field.
	ErrTooManyDigits = errors.New("decimal digit count exceeds 65535")

	// ErrTooLarge indicates a string, huge or container whose length does
	// not fit the 4-byte wire length field.
	ErrTooLarge = errors.New("length exceeds 4-byte wire field")

	// ErrMicrosecondsRange indicates a microsecond value that does not fit
	// the 3-byte wire field.
	ErrMicrosecondsRange = errors.New("microseconds exceed 3-byte wire field")

	// ErrNegativeCount indicates a negative container element count.
	ErrNegativeCount = errors.New("negative container element count")

	// ErrReadOnlyBuffer indicates a feed operation on a wrapped buffer.
	// Wrapped buffers borrow caller bytes and never grow.
	ErrReadOnlyBuffer = errors.New("cannot write to wrapped buffer")

	// ErrCompressedCorrupt indicates the LZF body of a compressed payload is
	// malformed or disagrees with the recorded uncompressed length.
	ErrCompressedCorrupt = errors.New("corrupt compressed payload")
)
