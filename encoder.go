package mummy

import (
	"math"

	"github.com/teepark/mummy/errs"
	"github.com/teepark/mummy/format"
)

// Feed operations append one tagged value each. They validate their input
// before touching the store, so a failed feed leaves the written contents
// byte-identical.

// FeedNull appends a NULL value.
func (b *Buffer) FeedNull() error {
	bb, err := b.writable(1)
	if err != nil {
		return err
	}
	bb.B = append(bb.B, byte(format.TagNull))

	return nil
}

// FeedBool appends a BOOL value.
func (b *Buffer) FeedBool(v bool) error {
	bb, err := b.writable(2)
	if err != nil {
		return err
	}

	payload := byte(0)
	if v {
		payload = 1
	}
	bb.B = append(bb.B, byte(format.TagBool), payload)

	return nil
}

// FeedInt appends v in the narrowest signed class that holds it: CHAR,
// SHORT, INT or LONG.
func (b *Buffer) FeedInt(v int64) error {
	bb, err := b.writable(9)
	if err != nil {
		return err
	}

	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		bb.B = append(bb.B, byte(format.TagChar), byte(int8(v)))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		bb.B = append(bb.B, byte(format.TagShort))
		bb.B = b.engine.AppendUint16(bb.B, uint16(int16(v)))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		bb.B = append(bb.B, byte(format.TagInt))
		bb.B = b.engine.AppendUint32(bb.B, uint32(int32(v)))
	default:
		bb.B = append(bb.B, byte(format.TagLong))
		bb.B = b.engine.AppendUint64(bb.B, uint64(v))
	}

	return nil
}

// FeedHuge appends an arbitrary-precision integer supplied as big-endian
// two's-complement bytes. The bytes go onto the wire verbatim behind a
// 4-byte length.
func (b *Buffer) FeedHuge(v []byte) error {
	if int64(len(v)) > math.MaxUint32 {
		return errs.ErrTooLarge
	}

	bb, err := b.writable(5 + len(v))
	if err != nil {
		return err
	}

	bb.B = append(bb.B, byte(format.TagHuge))
	bb.B = b.engine.AppendUint32(bb.B, uint32(len(v)))
	bb.B = append(bb.B, v...)

	return nil
}

// FeedFloat appends an 8-byte IEEE-754 double.
func (b *Buffer) FeedFloat(v float64) error {
	bb, err := b.writable(9)
	if err != nil {
		return err
	}

	bb.B = append(bb.B, byte(format.TagFloat))
	bb.B = b.engine.AppendUint64(bb.B, math.Float64bits(v))

	return nil
}

// FeedString appends an opaque byte string, selecting the SHORT, MED or LONG
// class by length.
func (b *Buffer) FeedString(v []byte) error {
	return b.feedSized(format.TagShortStr, format.TagMedStr, format.TagLongStr, v)
}

// FeedUTF8 appends a UTF-8 text string, selecting the SHORT, MED or LONG
// class by byte length. The codec does not re-validate the encoding; that is
// the caller's contract.
func (b *Buffer) FeedUTF8(v string) error {
	return b.feedSized(format.TagShortUTF8, format.TagMedUTF8, format.TagLongUTF8, []byte(v))
}

func (b *Buffer) feedSized(short, med, long format.Tag, v []byte) error {
	n := len(v)
	if int64(n) > math.MaxUint32 {
		return errs.ErrTooLarge
	}

	bb, err := b.writable(5 + n)
	if err != nil {
		return err
	}

	switch {
	case n < format.ShortLimit:
		bb.B = append(bb.B, byte(short), byte(n))
	case n < format.MedLimit:
		bb.B = append(bb.B, byte(med))
		bb.B = b.engine.AppendUint16(bb.B, uint16(n))
	default:
		bb.B = append(bb.B, byte(long))
		bb.B = b.engine.AppendUint32(bb.B, uint32(n))
	}
	bb.B = append(bb.B, v...)

	return nil
}

// FeedDecimal appends an arbitrary-precision decimal: sign, base-10
// exponent, and the significand digits most-significant first, one digit per
// byte. Digits pack two per wire byte, even index in the low nibble.
//
// Any digit outside [0, 9] fails with errs.ErrInvalidDigit before anything
// is written.
func (b *Buffer) FeedDecimal(negative bool, exponent int16, digits []byte) error {
	if len(digits) > math.MaxUint16 {
		return errs.ErrTooManyDigits
	}
	for _, d := range digits {
		if d > 9 {
			return errs.ErrInvalidDigit
		}
	}

	packed := (len(digits) + 1) / 2
	bb, err := b.writable(6 + packed)
	if err != nil {
		return err
	}

	sign := byte(0)
	if negative {
		sign = 1
	}
	bb.B = append(bb.B, byte(format.TagDecimal), sign)
	bb.B = b.engine.AppendUint16(bb.B, uint16(exponent))
	bb.B = b.engine.AppendUint16(bb.B, uint16(len(digits)))

	for i := 0; i < len(digits); i += 2 {
		v := digits[i]
		if i+1 < len(digits) {
			v |= digits[i+1] << 4
		}
		bb.B = append(bb.B, v)
	}

	return nil
}

// FeedInfinity appends a SPECIALNUM carrying a signed infinity.
func (b *Buffer) FeedInfinity(negative bool) error {
	flags := format.SpecialInfinity
	if negative {
		flags |= format.SpecialLowBit
	}

	return b.feedSpecial(flags)
}

// FeedNaN appends a SPECIALNUM carrying a NaN. The low flag bit selects a
// signaling NaN; NaN has no wire sign.
func (b *Buffer) FeedNaN(signaling bool) error {
	flags := format.SpecialNaN
	if signaling {
		flags |= format.SpecialLowBit
	}

	return b.feedSpecial(flags)
}

func (b *Buffer) feedSpecial(flags uint8) error {
	bb, err := b.writable(2)
	if err != nil {
		return err
	}
	bb.B = append(bb.B, byte(format.TagSpecialNum), flags)

	return nil
}

// FeedDate appends a calendar date.
func (b *Buffer) FeedDate(year uint16, month, day uint8) error {
	bb, err := b.writable(5)
	if err != nil {
		return err
	}

	bb.B = append(bb.B, byte(format.TagDate))
	bb.B = b.engine.AppendUint16(bb.B, year)
	bb.B = append(bb.B, month, day)

	return nil
}

// FeedTime appends a wall-clock time. Microseconds occupy three wire bytes,
// so values at or above 1<<24 fail with errs.ErrMicrosecondsRange.
func (b *Buffer) FeedTime(hour, minute, second uint8, microsecond uint32) error {
	if microsecond >= 1<<24 {
		return errs.ErrMicrosecondsRange
	}

	bb, err := b.writable(7)
	if err != nil {
		return err
	}

	bb.B = append(bb.B, byte(format.TagTime), hour, minute, second)
	bb.B = appendUint24(bb.B, microsecond)

	return nil
}

// FeedDateTime appends a combined date and time.
func (b *Buffer) FeedDateTime(year uint16, month, day, hour, minute, second uint8, microsecond uint32) error {
	if microsecond >= 1<<24 {
		return errs.ErrMicrosecondsRange
	}

	bb, err := b.writable(11)
	if err != nil {
		return err
	}

	bb.B = append(bb.B, byte(format.TagDateTime))
	bb.B = b.engine.AppendUint16(bb.B, year)
	bb.B = append(bb.B, month, day, hour, minute, second)
	bb.B = appendUint24(bb.B, microsecond)

	return nil
}

// FeedTimeDelta appends a signed duration as independent day, second and
// microsecond fields.
func (b *Buffer) FeedTimeDelta(days, seconds, microseconds int32) error {
	bb, err := b.writable(13)
	if err != nil {
		return err
	}

	bb.B = append(bb.B, byte(format.TagTimeDelta))
	bb.B = b.engine.AppendUint32(bb.B, uint32(days))
	bb.B = b.engine.AppendUint32(bb.B, uint32(seconds))
	bb.B = b.engine.AppendUint32(bb.B, uint32(microseconds))

	return nil
}

// appendUint24 appends the low 3 bytes of v big-endian. On the wire this is
// the high 3 bytes of a 4-byte word holding v<<8; readers widen it back.
func appendUint24(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>16), byte(v>>8), byte(v))
}

// OpenList writes a list header declaring count elements. The caller must
// feed exactly count children afterwards; no terminator is written and the
// wire cannot detect a shortfall on its own.
func (b *Buffer) OpenList(count int) error {
	return b.openContainer(format.TagShortList, format.TagMedList, format.TagLongList, count)
}

// OpenTuple writes a tuple header declaring count elements.
func (b *Buffer) OpenTuple(count int) error {
	return b.openContainer(format.TagShortTuple, format.TagMedTuple, format.TagLongTuple, count)
}

// OpenSet writes a set header declaring count elements.
func (b *Buffer) OpenSet(count int) error {
	return b.openContainer(format.TagShortSet, format.TagMedSet, format.TagLongSet, count)
}

// OpenHash writes a hash header declaring count key/value pairs. The caller
// must feed 2*count children, keys and values alternating.
func (b *Buffer) OpenHash(count int) error {
	return b.openContainer(format.TagShortHash, format.TagMedHash, format.TagLongHash, count)
}

func (b *Buffer) openContainer(short, med, long format.Tag, count int) error {
	if count < 0 {
		return errs.ErrNegativeCount
	}
	if int64(count) > math.MaxUint32 {
		return errs.ErrTooLarge
	}

	bb, err := b.writable(5)
	if err != nil {
		return err
	}

	switch {
	case count < format.ShortLimit:
		bb.B = append(bb.B, byte(short), byte(count))
	case count < format.MedLimit:
		bb.B = append(bb.B, byte(med))
		bb.B = b.engine.AppendUint16(bb.B, uint16(count))
	default:
		bb.B = append(bb.B, byte(long))
		bb.B = b.engine.AppendUint32(bb.B, uint32(count))
	}

	return nil
}
