package compress

import (
	"errors"
	"fmt"

	"github.com/teepark/mummy/format"
)

// ErrShortDestination is returned by CompressBlock and DecompressBlock when
// the destination slice cannot hold the produced output. For CompressBlock
// this is the envelope's "not worth compressing" signal, not a failure of the
// input.
var ErrShortDestination = errors.New("destination too small for output")

// ErrCorruptInput is returned by DecompressBlock when the compressed stream
// is malformed: a truncated control sequence or a back-reference pointing
// before the start of the output.
var ErrCorruptInput = errors.New("corrupt compressed input")

// Codec is a bounded block compressor/decompressor.
//
// Both directions write into a caller-supplied destination and report the
// number of bytes produced. Neither allocates proportionally to the input;
// internal scratch state may be pooled.
type Codec interface {
	// CompressBlock compresses src into dst and returns the compressed size.
	// Returns ErrShortDestination if the output would exceed len(dst).
	CompressBlock(src, dst []byte) (int, error)

	// DecompressBlock decompresses src into dst and returns the produced
	// size. Returns ErrShortDestination if the output would exceed len(dst)
	// and ErrCorruptInput if src is malformed.
	DecompressBlock(src, dst []byte) (int, error)
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
//
// Parameters:
//   - compressionType: Type of compression (None or LZF)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionLZF:
		return NewLZFCodec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionLZF:  NewLZFCodec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
