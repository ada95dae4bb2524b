package mummy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teepark/mummy/errs"
	"github.com/teepark/mummy/format"
)

// compressiblePayload encodes a 300-byte run of 'A', which LZF collapses to
// a handful of bytes.
func compressiblePayload(t *testing.T) *Buffer {
	t.Helper()

	buf := NewBuffer(0)
	require.NoError(t, buf.FeedString(bytes.Repeat([]byte{0x41}, 300)))

	return buf
}

func TestCompress_SetsEnvelope(t *testing.T) {
	buf := compressiblePayload(t)
	defer buf.Release()

	original := append([]byte(nil), buf.Bytes()...)
	require.NoError(t, buf.Compress())

	got := buf.Bytes()
	require.Less(t, len(got), len(original))
	require.Equal(t, original[0]|format.CompressedFlag, got[0])

	// 4-byte big-endian uncompressed length of the post-tag region.
	wantLen := uint32(len(original) - 1)
	gotLen := uint32(got[1])<<24 | uint32(got[2])<<16 | uint32(got[3])<<8 | uint32(got[4])
	require.Equal(t, wantLen, gotLen)
}

func TestCompress_RoundTrip(t *testing.T) {
	buf := compressiblePayload(t)
	defer buf.Release()

	original := append([]byte(nil), buf.Bytes()...)

	require.NoError(t, buf.Compress())
	did, err := buf.Decompress()
	require.NoError(t, err)
	require.True(t, did)
	require.Equal(t, original, buf.Bytes())

	v, err := buf.PointToString()
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0x41}, 300), v)
}

func TestCompress_TinyPayloadNoOp(t *testing.T) {
	buf := NewBuffer(0)
	defer buf.Release()

	require.NoError(t, buf.FeedInt(42))
	before := append([]byte(nil), buf.Bytes()...)

	require.NoError(t, buf.Compress())
	require.Equal(t, before, buf.Bytes())
}

func TestCompress_IncompressiblePayloadNoOp(t *testing.T) {
	// A short all-distinct payload cannot save the 5-byte envelope header.
	buf := NewBuffer(0)
	defer buf.Release()

	require.NoError(t, buf.FeedString([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	before := append([]byte(nil), buf.Bytes()...)

	require.NoError(t, buf.Compress())
	require.Equal(t, before, buf.Bytes())
}

func TestCompress_Idempotent(t *testing.T) {
	buf := compressiblePayload(t)
	defer buf.Release()

	require.NoError(t, buf.Compress())
	once := append([]byte(nil), buf.Bytes()...)

	require.NoError(t, buf.Compress())
	require.Equal(t, once, buf.Bytes(), "compressing a compressed payload must be a no-op")
}

func TestDecompress_UncompressedNoOp(t *testing.T) {
	buf := NewBuffer(0)
	defer buf.Release()

	require.NoError(t, buf.FeedInt(42))
	before := append([]byte(nil), buf.Bytes()...)

	did, err := buf.Decompress()
	require.NoError(t, err)
	require.False(t, did)
	require.Equal(t, before, buf.Bytes())
}

func TestDecompress_OnWrappedBuffer(t *testing.T) {
	src := compressiblePayload(t)
	defer src.Release()

	original := append([]byte(nil), src.Bytes()...)
	require.NoError(t, src.Compress())

	wire := append([]byte(nil), src.Bytes()...)
	buf := Wrap(wire)
	defer buf.Release()

	did, err := buf.Decompress()
	require.NoError(t, err)
	require.True(t, did)
	require.False(t, buf.Wrapped(), "decompression replaces the borrow with owned bytes")
	require.Equal(t, original, buf.Bytes())
}

func TestDecompress_LengthMismatch(t *testing.T) {
	buf := compressiblePayload(t)
	defer buf.Release()

	require.NoError(t, buf.Compress())
	wire := append([]byte(nil), buf.Bytes()...)

	// Inflate the recorded uncompressed length.
	wire[4]++
	corrupt := Wrap(wire)

	_, err := corrupt.Decompress()
	require.ErrorIs(t, err, errs.ErrCompressedCorrupt)
}

func TestDecompress_CorruptBody(t *testing.T) {
	buf := compressiblePayload(t)
	defer buf.Release()

	require.NoError(t, buf.Compress())
	wire := append([]byte(nil), buf.Bytes()...)

	// Truncate the compressed body mid-stream.
	corrupt := Wrap(wire[:len(wire)-1])

	_, err := corrupt.Decompress()
	require.ErrorIs(t, err, errs.ErrCompressedCorrupt)
}

func TestDecompress_EmptyBuffer(t *testing.T) {
	buf := Wrap(nil)

	_, err := buf.Decompress()
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestEnvelope_TagStillReadableWhenCompressed(t *testing.T) {
	buf := compressiblePayload(t)
	defer buf.Release()

	require.NoError(t, buf.Compress())

	tag, err := buf.Tag()
	require.NoError(t, err)
	require.Equal(t, format.TagMedStr, tag, "Tag masks the compressed flag")
}
