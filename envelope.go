package mummy

import (
	"errors"
	"fmt"

	"github.com/teepark/mummy/compress"
	"github.com/teepark/mummy/errs"
	"github.com/teepark/mummy/format"
	"github.com/teepark/mummy/internal/pool"
)

// envelopeHeader is the fixed overhead of a compressed payload: the flagged
// tag byte plus the 4-byte big-endian uncompressed length of the post-tag
// region. The compressed body must be at least envelopeHeader bytes shorter
// than the post-tag region, which leaves the envelope at least one byte
// smaller than the payload, or the payload stays as-is.
const envelopeHeader = 5

// wireCodec resolves the single algorithm the envelope speaks.
func wireCodec() (compress.Codec, error) {
	return compress.GetCodec(format.CompressionLZF)
}

// Compress replaces the written payload with its LZF envelope: first byte
// with the high bit set, 4-byte big-endian uncompressed length, then the
// compressed post-tag bytes.
//
// Compress is a no-op when the payload is already compressed, when it is at
// most 6 bytes, or when the LZF body is not at least 5 bytes shorter than
// the post-tag bytes. Payloads are
// only compressed whole; individual containers never are.
func (b *Buffer) Compress() error {
	d := b.data()
	if len(d) <= envelopeHeader+1 {
		return nil
	}
	if d[0]&format.CompressedFlag != 0 {
		return nil
	}

	codec, err := wireCodec()
	if err != nil {
		return err
	}

	scratch := pool.GetPayloadBuffer()
	scratch.ExtendOrGrow(len(d) - 1)

	// The body must land in len(d)-1-envelopeHeader bytes to save anything.
	n, cerr := codec.CompressBlock(d[1:], scratch.B[envelopeHeader:])
	if cerr != nil {
		pool.PutPayloadBuffer(scratch)
		if errors.Is(cerr, compress.ErrShortDestination) {
			// Not worth compressing; keep the payload as-is.
			return nil
		}

		return cerr
	}

	scratch.B[0] = d[0] | format.CompressedFlag
	b.engine.PutUint32(scratch.B[1:envelopeHeader], uint32(len(d)-1))
	scratch.SetLength(envelopeHeader + n)

	b.replace(scratch)

	return nil
}

// Decompress undoes the LZF envelope, restoring the original payload bytes.
// It reports whether decompression happened: payloads without the high bit
// in their first byte pass through untouched.
//
// The restored payload replaces the Buffer's contents; a wrapped Buffer's
// borrow is released in the process and the result is owned. The cursor
// rewinds to the start either way.
func (b *Buffer) Decompress() (bool, error) {
	d := b.data()
	if len(d) == 0 {
		return false, errs.ErrShortBuffer
	}
	if d[0]&format.CompressedFlag == 0 {
		return false, nil
	}
	if len(d) < envelopeHeader {
		return false, errs.ErrShortBuffer
	}

	codec, err := wireCodec()
	if err != nil {
		return false, err
	}

	uncompressed := int(b.engine.Uint32(d[1:envelopeHeader]))

	out := pool.GetPayloadBuffer()
	out.ExtendOrGrow(uncompressed + 1)
	out.B[0] = d[0] &^ format.CompressedFlag

	n, cerr := codec.DecompressBlock(d[envelopeHeader:], out.B[1:uncompressed+1])
	if cerr != nil {
		pool.PutPayloadBuffer(out)

		return false, fmt.Errorf("%w: %w", errs.ErrCompressedCorrupt, cerr)
	}
	if n != uncompressed {
		pool.PutPayloadBuffer(out)

		return false, fmt.Errorf("%w: produced %d bytes, header says %d",
			errs.ErrCompressedCorrupt, n, uncompressed)
	}

	b.replace(out)

	return true, nil
}
