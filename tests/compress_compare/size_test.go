package compresscompare

import (
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

// TestEnvelopeSizes measures the LZF envelope against general-purpose block
// compressors on representative mummy payloads. The envelope trades ratio
// for a tiny dependency-free decoder on every binding; this table keeps the
// cost of that trade visible.
func TestEnvelopeSizes(t *testing.T) {
	t.Log("")
	t.Log("┌───────────────┬──────────┬──────────┬──────────┬──────────┬──────────┐")
	t.Log("│ Payload       │ Raw      │ LZF env  │ LZ4      │ S2       │ Zstd     │")
	t.Log("├───────────────┼──────────┼──────────┼──────────┼──────────┼──────────┤")

	for _, cfg := range DefaultPayloads() {
		buf, err := GenerateBuffer(cfg)
		require.NoError(t, err)

		raw := make([]byte, buf.Len())
		copy(raw, buf.Bytes())

		require.NoError(t, buf.Compress())
		envelope := buf.Len()
		buf.Release()

		lz4Size := lz4BlockSize(t, raw)
		s2Size := len(s2.Encode(nil, raw))
		zstdSize := zstdBlockSize(t, raw)

		t.Logf("│ %-13s │ %8d │ %8d │ %8d │ %8d │ %8d │",
			cfg.Name, len(raw), envelope, lz4Size, s2Size, zstdSize)

		// The envelope never exceeds the raw payload: compression is
		// dropped unless it saves space.
		require.LessOrEqual(t, envelope, len(raw))
	}

	t.Log("└───────────────┴──────────┴──────────┴──────────┴──────────┴──────────┘")
}

// TestEnvelopeRoundTripAllPayloads guards the comparison corpus itself:
// every payload shape survives the envelope bit-for-bit.
func TestEnvelopeRoundTripAllPayloads(t *testing.T) {
	for _, cfg := range DefaultPayloads() {
		t.Run(cfg.Name, func(t *testing.T) {
			buf, err := GenerateBuffer(cfg)
			require.NoError(t, err)
			defer buf.Release()

			raw := make([]byte, buf.Len())
			copy(raw, buf.Bytes())

			require.NoError(t, buf.Compress())
			did, err := buf.Decompress()
			require.NoError(t, err)
			if did {
				require.Equal(t, raw, buf.Bytes())
			} else {
				require.Equal(t, raw, buf.Bytes(), "incompressible payloads stay untouched")
			}
		})
	}
}

func lz4BlockSize(t *testing.T, raw []byte) int {
	t.Helper()

	dst := make([]byte, lz4.CompressBlockBound(len(raw)))
	var c lz4.Compressor
	n, err := c.CompressBlock(raw, dst)
	require.NoError(t, err)
	if n == 0 {
		// Incompressible; LZ4 stores such blocks raw.
		return len(raw)
	}

	return n
}

func zstdBlockSize(t *testing.T, raw []byte) int {
	t.Helper()

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	require.NoError(t, err)
	defer enc.Close()

	return len(enc.EncodeAll(raw, nil))
}
