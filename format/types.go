package format

// Tag is the single-byte type identifier at the front of every encoded value.
//
// The high bit (CompressedFlag) of a payload's first byte is not part of the
// tag itself: it signals that the whole payload is LZF-compressed. Decoders
// mask it off before dispatching on the tag.
type Tag uint8

const (
	TagNull  Tag = 0x00 // no payload
	TagBool  Tag = 0x01 // 1 byte, 0 or 1
	TagChar  Tag = 0x02 // 1-byte signed integer
	TagShort Tag = 0x03 // 2-byte signed integer, big-endian
	TagInt   Tag = 0x04 // 4-byte signed integer, big-endian
	TagLong  Tag = 0x05 // 8-byte signed integer, big-endian
	TagHuge  Tag = 0x06 // 4-byte length, then big-endian two's-complement bytes
	TagFloat Tag = 0x07 // 8-byte IEEE-754 double, big-endian

	TagShortStr  Tag = 0x08 // 1-byte length, then opaque bytes
	TagLongStr   Tag = 0x09 // 4-byte length, then opaque bytes
	TagShortUTF8 Tag = 0x0A // 1-byte length, then UTF-8 text
	TagLongUTF8  Tag = 0x0B // 4-byte length, then UTF-8 text

	TagLongList  Tag = 0x0C // 4-byte element count
	TagLongTuple Tag = 0x0D
	TagLongSet   Tag = 0x0E
	TagLongHash  Tag = 0x0F // 4-byte pair count

	TagShortList  Tag = 0x10 // 1-byte element count
	TagShortTuple Tag = 0x11
	TagShortSet   Tag = 0x12
	TagShortHash  Tag = 0x13

	TagMedList  Tag = 0x14 // 2-byte element count
	TagMedTuple Tag = 0x15
	TagMedSet   Tag = 0x16
	TagMedHash  Tag = 0x17

	TagMedStr  Tag = 0x18 // 2-byte length, then opaque bytes
	TagMedUTF8 Tag = 0x19 // 2-byte length, then UTF-8 text

	TagDate       Tag = 0x1A // 2-byte year, 1-byte month, 1-byte day
	TagTime       Tag = 0x1B // hour, minute, second, 3-byte microseconds
	TagDateTime   Tag = 0x1C // date fields then time fields
	TagTimeDelta  Tag = 0x1D // 4-byte days, seconds, microseconds, all signed
	TagDecimal    Tag = 0x1E // sign, exponent, digit count, packed digits
	TagSpecialNum Tag = 0x1F // 1-byte flags
)

// CompressedFlag marks the first byte of an LZF-compressed payload.
const CompressedFlag uint8 = 0x80

// SPECIALNUM flag byte layout. The high nibble selects the kind, the low bit
// carries the sign (infinity) or the signaling property (NaN).
const (
	SpecialInfinity uint8 = 0x10
	SpecialNaN      uint8 = 0x20
	SpecialLowBit   uint8 = 0x01
)

// Size-class thresholds for strings, UTF-8 text and containers.
// Lengths below ShortLimit use the SHORT class, below MedLimit the MED class,
// and anything larger the LONG class.
const (
	ShortLimit = 1 << 8
	MedLimit   = 1 << 16
)

// CompressionType identifies the post-pass compression applied to a payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionLZF  CompressionType = 0x2 // CompressionLZF represents LZF block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZF:
		return "LZF"
	default:
		return "Unknown"
	}
}

// IsContainer reports whether t opens a list, tuple, set or hash.
func (t Tag) IsContainer() bool {
	return (t >= TagLongList && t <= TagLongHash) || (t >= TagShortList && t <= TagMedHash)
}

// IsHash reports whether t opens a hash container. Hash containers hold
// key/value pairs, so their declared count must be doubled when walking
// children.
func (t Tag) IsHash() bool {
	return t == TagShortHash || t == TagMedHash || t == TagLongHash
}

// IsString reports whether t is an opaque byte string of any size class.
func (t Tag) IsString() bool {
	return t == TagShortStr || t == TagMedStr || t == TagLongStr
}

// IsUTF8 reports whether t is a UTF-8 text string of any size class.
func (t Tag) IsUTF8() bool {
	return t == TagShortUTF8 || t == TagMedUTF8 || t == TagLongUTF8
}

// IsInteger reports whether t is a fixed-width signed integer class.
func (t Tag) IsInteger() bool {
	return t >= TagChar && t <= TagLong
}

// PrefixSize returns the width in bytes of the length or count prefix that
// follows t on the wire: 1 for SHORT classes, 2 for MED, 4 for LONG and
// HUGE, 0 for everything else.
func (t Tag) PrefixSize() int {
	switch t {
	case TagShortStr, TagShortUTF8, TagShortList, TagShortTuple, TagShortSet, TagShortHash:
		return 1
	case TagMedStr, TagMedUTF8, TagMedList, TagMedTuple, TagMedSet, TagMedHash:
		return 2
	case TagLongStr, TagLongUTF8, TagLongList, TagLongTuple, TagLongSet, TagLongHash, TagHuge:
		return 4
	default:
		return 0
	}
}

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "Null"
	case TagBool:
		return "Bool"
	case TagChar:
		return "Char"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagHuge:
		return "Huge"
	case TagFloat:
		return "Float"
	case TagShortStr, TagMedStr, TagLongStr:
		return "String"
	case TagShortUTF8, TagMedUTF8, TagLongUTF8:
		return "UTF8"
	case TagShortList, TagMedList, TagLongList:
		return "List"
	case TagShortTuple, TagMedTuple, TagLongTuple:
		return "Tuple"
	case TagShortSet, TagMedSet, TagLongSet:
		return "Set"
	case TagShortHash, TagMedHash, TagLongHash:
		return "Hash"
	case TagDate:
		return "Date"
	case TagTime:
		return "Time"
	case TagDateTime:
		return "DateTime"
	case TagTimeDelta:
		return "TimeDelta"
	case TagDecimal:
		return "Decimal"
	case TagSpecialNum:
		return "SpecialNum"
	default:
		return "Unknown"
	}
}
