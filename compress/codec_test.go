package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teepark/mummy/format"
)

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionNone, "payload")
	require.NoError(t, err)
	require.IsType(t, NoOpCodec{}, codec)

	codec, err = CreateCodec(format.CompressionLZF, "payload")
	require.NoError(t, err)
	require.IsType(t, LZFCodec{}, codec)

	_, err = CreateCodec(format.CompressionType(0xFF), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionLZF)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestNoOpCodec_RoundTrip(t *testing.T) {
	codec := NewNoOpCodec()
	src := []byte("pass through unchanged")

	dst := make([]byte, len(src))
	n, err := codec.CompressBlock(src, dst)
	require.NoError(t, err)
	require.Equal(t, src, dst[:n])

	out := make([]byte, len(src))
	m, err := codec.DecompressBlock(dst[:n], out)
	require.NoError(t, err)
	require.Equal(t, src, out[:m])
}

func TestNoOpCodec_ShortDestination(t *testing.T) {
	codec := NewNoOpCodec()

	_, err := codec.CompressBlock([]byte("abc"), make([]byte, 2))
	require.ErrorIs(t, err, ErrShortDestination)

	_, err = codec.DecompressBlock([]byte("abc"), make([]byte, 2))
	require.ErrorIs(t, err, ErrShortDestination)
}
