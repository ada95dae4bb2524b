package compress

// NoOpCodec passes bytes through unchanged.
//
// Useful for measuring envelope overhead without compression and for tests
// that want the Codec plumbing with deterministic output.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-operation codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// CompressBlock copies src into dst verbatim.
func (c NoOpCodec) CompressBlock(src, dst []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, ErrShortDestination
	}

	return copy(dst, src), nil
}

// DecompressBlock copies src into dst verbatim.
func (c NoOpCodec) DecompressBlock(src, dst []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, ErrShortDestination
	}

	return copy(dst, src), nil
}
