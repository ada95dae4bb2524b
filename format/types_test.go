package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTag_IsContainer(t *testing.T) {
	containers := []Tag{
		TagShortList, TagMedList, TagLongList,
		TagShortTuple, TagMedTuple, TagLongTuple,
		TagShortSet, TagMedSet, TagLongSet,
		TagShortHash, TagMedHash, TagLongHash,
	}
	for _, tag := range containers {
		require.True(t, tag.IsContainer(), "tag %#02x", uint8(tag))
	}

	others := []Tag{
		TagNull, TagBool, TagChar, TagShort, TagInt, TagLong, TagHuge,
		TagFloat, TagShortStr, TagMedStr, TagLongStr, TagShortUTF8,
		TagMedUTF8, TagLongUTF8, TagDate, TagTime, TagDateTime,
		TagTimeDelta, TagDecimal, TagSpecialNum,
	}
	for _, tag := range others {
		require.False(t, tag.IsContainer(), "tag %#02x", uint8(tag))
	}
}

func TestTag_IsHash(t *testing.T) {
	require.True(t, TagShortHash.IsHash())
	require.True(t, TagMedHash.IsHash())
	require.True(t, TagLongHash.IsHash())
	require.False(t, TagShortList.IsHash())
}

func TestTag_StringAndUTF8(t *testing.T) {
	require.True(t, TagShortStr.IsString())
	require.True(t, TagMedStr.IsString())
	require.True(t, TagLongStr.IsString())
	require.False(t, TagShortUTF8.IsString())

	require.True(t, TagShortUTF8.IsUTF8())
	require.True(t, TagMedUTF8.IsUTF8())
	require.True(t, TagLongUTF8.IsUTF8())
	require.False(t, TagShortStr.IsUTF8())
}

func TestTag_IsInteger(t *testing.T) {
	require.True(t, TagChar.IsInteger())
	require.True(t, TagLong.IsInteger())
	require.False(t, TagHuge.IsInteger())
	require.False(t, TagBool.IsInteger())
}

func TestTag_PrefixSize(t *testing.T) {
	require.Equal(t, 1, TagShortStr.PrefixSize())
	require.Equal(t, 2, TagMedList.PrefixSize())
	require.Equal(t, 4, TagLongHash.PrefixSize())
	require.Equal(t, 4, TagHuge.PrefixSize())
	require.Equal(t, 0, TagBool.PrefixSize())
}

func TestTag_String(t *testing.T) {
	require.Equal(t, "Null", TagNull.String())
	require.Equal(t, "String", TagMedStr.String())
	require.Equal(t, "Hash", TagLongHash.String())
	require.Equal(t, "SpecialNum", TagSpecialNum.String())
	require.Equal(t, "Unknown", Tag(0x7F).String())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "LZF", CompressionLZF.String())
	require.Equal(t, "Unknown", CompressionType(0xFF).String())
}
