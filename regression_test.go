package mummy

import (
	"bytes"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

// encodeCorpus feeds a fixed mixed-type corpus, the same bytes every run.
func encodeCorpus(t *testing.T) *Buffer {
	t.Helper()

	buf := NewBuffer(0)

	require.NoError(t, buf.OpenHash(3))
	require.NoError(t, buf.FeedUTF8("name"))
	require.NoError(t, buf.FeedUTF8("mummy"))
	require.NoError(t, buf.FeedUTF8("values"))
	require.NoError(t, buf.OpenList(6))
	require.NoError(t, buf.FeedInt(0))
	require.NoError(t, buf.FeedInt(-129))
	require.NoError(t, buf.FeedFloat(2.5))
	require.NoError(t, buf.FeedDecimal(true, -2, []byte{1, 2, 3, 4}))
	require.NoError(t, buf.FeedInfinity(true))
	require.NoError(t, buf.FeedHuge([]byte{0x01, 0x00, 0x00}))
	require.NoError(t, buf.FeedUTF8("blob"))
	require.NoError(t, buf.FeedString(bytes.Repeat([]byte{0xAB, 0xCD}, 128)))

	return buf
}

func TestRegression_EncodingIsDeterministic(t *testing.T) {
	first := encodeCorpus(t)
	defer first.Release()
	second := encodeCorpus(t)
	defer second.Release()

	require.Equal(t, xxhash.Sum64(first.Bytes()), xxhash.Sum64(second.Bytes()))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestRegression_EnvelopePreservesFingerprint(t *testing.T) {
	buf := encodeCorpus(t)
	defer buf.Release()

	before := xxhash.Sum64(buf.Bytes())

	require.NoError(t, buf.Compress())
	compressed := xxhash.Sum64(buf.Bytes())
	require.NotEqual(t, before, compressed, "corpus is compressible")

	did, err := buf.Decompress()
	require.NoError(t, err)
	require.True(t, did)
	require.Equal(t, before, xxhash.Sum64(buf.Bytes()))
}

func TestRegression_DistinctCorporaDiffer(t *testing.T) {
	a := NewBuffer(0)
	defer a.Release()
	b := NewBuffer(0)
	defer b.Release()

	require.NoError(t, a.FeedInt(1))
	require.NoError(t, b.FeedInt(2))

	require.NotEqual(t, xxhash.Sum64(a.Bytes()), xxhash.Sum64(b.Bytes()))
}
