package mummy

import (
	"math"

	"github.com/teepark/mummy/errs"
	"github.com/teepark/mummy/format"
)

// Read operations consume one tagged value each. Every reader verifies the
// tag and the full payload extent before advancing, so a failed read leaves
// the cursor exactly where it was.

// Tag peeks at the tag byte under the cursor without consuming it. The
// compressed-payload flag is masked off, so the result is always a plain
// format.Tag.
func (b *Buffer) Tag() (format.Tag, error) {
	d := b.data()
	if b.off >= len(d) {
		return 0, errs.ErrShortBuffer
	}

	return format.Tag(d[b.off] &^ format.CompressedFlag), nil
}

// ReadNull consumes a NULL value.
func (b *Buffer) ReadNull() error {
	d := b.data()
	if err := b.need(1); err != nil {
		return err
	}
	if format.Tag(d[b.off]) != format.TagNull {
		return errs.ErrBadTag
	}
	b.off++

	return nil
}

// ReadBool consumes a BOOL value.
func (b *Buffer) ReadBool() (bool, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return false, err
	}
	if format.Tag(d[b.off]) != format.TagBool {
		return false, errs.ErrBadTag
	}
	if err := b.need(2); err != nil {
		return false, err
	}

	v := d[b.off+1] != 0
	b.off += 2

	return v, nil
}

// ReadInt consumes any fixed-width integer class (CHAR, SHORT, INT or LONG)
// and widens it to int64.
func (b *Buffer) ReadInt() (int64, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return 0, err
	}

	var v int64
	var width int
	switch format.Tag(d[b.off]) {
	case format.TagChar:
		width = 1
	case format.TagShort:
		width = 2
	case format.TagInt:
		width = 4
	case format.TagLong:
		width = 8
	default:
		return 0, errs.ErrBadTag
	}

	if err := b.need(1 + width); err != nil {
		return 0, err
	}

	p := d[b.off+1:]
	switch width {
	case 1:
		v = int64(int8(p[0]))
	case 2:
		v = int64(int16(b.engine.Uint16(p[:2])))
	case 4:
		v = int64(int32(b.engine.Uint32(p[:4])))
	case 8:
		v = int64(b.engine.Uint64(p[:8]))
	}
	b.off += 1 + width

	return v, nil
}

// ReadFloat consumes a FLOAT value.
func (b *Buffer) ReadFloat() (float64, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return 0, err
	}
	if format.Tag(d[b.off]) != format.TagFloat {
		return 0, errs.ErrBadTag
	}
	if err := b.need(9); err != nil {
		return 0, err
	}

	v := math.Float64frombits(b.engine.Uint64(d[b.off+1 : b.off+9]))
	b.off += 9

	return v, nil
}

// sizedHeader parses the tag and length prefix of a size-classed value
// (string, UTF-8 or container) without advancing the cursor. It returns the
// payload length or element count and the header size in bytes.
func (b *Buffer) sizedHeader(short, med, long format.Tag) (int, int, error) {
	d := b.data()
	if b.off >= len(d) {
		return 0, 0, errs.ErrShortBuffer
	}

	var prefix int
	switch format.Tag(d[b.off]) {
	case short:
		prefix = 1
	case med:
		prefix = 2
	case long:
		prefix = 4
	default:
		return 0, 0, errs.ErrBadTag
	}

	if len(d)-b.off < 1+prefix {
		return 0, 0, errs.ErrShortBuffer
	}

	var n int64
	p := d[b.off+1:]
	switch prefix {
	case 1:
		n = int64(p[0])
	case 2:
		n = int64(b.engine.Uint16(p[:2]))
	case 4:
		n = int64(b.engine.Uint32(p[:4]))
	}

	return int(n), 1 + prefix, nil
}

// pointSized returns a borrow of the payload behind a size-classed value and
// advances past it.
func (b *Buffer) pointSized(short, med, long format.Tag) ([]byte, error) {
	n, header, err := b.sizedHeader(short, med, long)
	if err != nil {
		return nil, err
	}

	d := b.data()
	if len(d)-b.off-header < n {
		return nil, errs.ErrShortBuffer
	}

	start := b.off + header
	v := d[start : start+n : start+n]
	b.off += header + n

	return v, nil
}

// readSized copies the payload behind a size-classed value into dst and
// advances past it. If dst is too small it reports the true length with
// errs.ErrTruncated and does not advance, so the caller can retry.
func (b *Buffer) readSized(short, med, long format.Tag, dst []byte) (int, error) {
	n, header, err := b.sizedHeader(short, med, long)
	if err != nil {
		return 0, err
	}

	d := b.data()
	if len(d)-b.off-header < n {
		return 0, errs.ErrShortBuffer
	}
	if n > len(dst) {
		return n, errs.ErrTruncated
	}

	start := b.off + header
	copy(dst, d[start:start+n])
	b.off += header + n

	return n, nil
}

// PointToString returns a borrow of a STRING payload. The slice stays valid
// while the source bytes live and are not mutated.
func (b *Buffer) PointToString() ([]byte, error) {
	return b.pointSized(format.TagShortStr, format.TagMedStr, format.TagLongStr)
}

// ReadString copies a STRING payload into dst and returns its true length.
func (b *Buffer) ReadString(dst []byte) (int, error) {
	return b.readSized(format.TagShortStr, format.TagMedStr, format.TagLongStr, dst)
}

// PointToUTF8 returns a borrow of a UTF8 payload.
func (b *Buffer) PointToUTF8() ([]byte, error) {
	return b.pointSized(format.TagShortUTF8, format.TagMedUTF8, format.TagLongUTF8)
}

// ReadUTF8 copies a UTF8 payload into dst and returns its true length.
func (b *Buffer) ReadUTF8(dst []byte) (int, error) {
	return b.readSized(format.TagShortUTF8, format.TagMedUTF8, format.TagLongUTF8, dst)
}

// hugeHeader parses the HUGE tag and its 4-byte length without advancing.
func (b *Buffer) hugeHeader() (int, error) {
	d := b.data()
	if b.off >= len(d) {
		return 0, errs.ErrShortBuffer
	}
	if format.Tag(d[b.off]) != format.TagHuge {
		return 0, errs.ErrBadTag
	}
	if len(d)-b.off < 5 {
		return 0, errs.ErrShortBuffer
	}

	return int(int64(b.engine.Uint32(d[b.off+1 : b.off+5]))), nil
}

// PointToHuge returns a borrow of a HUGE payload: big-endian
// two's-complement bytes exactly as fed.
func (b *Buffer) PointToHuge() ([]byte, error) {
	n, err := b.hugeHeader()
	if err != nil {
		return nil, err
	}

	d := b.data()
	if len(d)-b.off-5 < n {
		return nil, errs.ErrShortBuffer
	}

	start := b.off + 5
	v := d[start : start+n : start+n]
	b.off += 5 + n

	return v, nil
}

// ReadHuge copies a HUGE payload into dst and returns its true length. A
// too-small dst reports the length with errs.ErrTruncated without advancing.
func (b *Buffer) ReadHuge(dst []byte) (int, error) {
	n, err := b.hugeHeader()
	if err != nil {
		return 0, err
	}

	d := b.data()
	if len(d)-b.off-5 < n {
		return 0, errs.ErrShortBuffer
	}
	if n > len(dst) {
		return n, errs.ErrTruncated
	}

	start := b.off + 5
	copy(dst, d[start:start+n])
	b.off += 5 + n

	return n, nil
}

// ReadDecimal consumes a DECIMAL value, unpacking the nibble-packed
// significand into one digit per byte. The returned Digits slice is freshly
// allocated.
func (b *Buffer) ReadDecimal() (Decimal, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return Decimal{}, err
	}
	if format.Tag(d[b.off]) != format.TagDecimal {
		return Decimal{}, errs.ErrBadTag
	}
	if err := b.need(6); err != nil {
		return Decimal{}, err
	}

	sign := d[b.off+1]
	exponent := int16(b.engine.Uint16(d[b.off+2 : b.off+4]))
	count := int(b.engine.Uint16(d[b.off+4 : b.off+6]))
	packed := (count + 1) / 2

	if err := b.need(6 + packed); err != nil {
		return Decimal{}, err
	}

	digits := make([]byte, count)
	for i := range digits {
		v := d[b.off+6+i/2]
		if i%2 == 0 {
			digits[i] = v & 0x0F
		} else {
			digits[i] = v >> 4
		}
	}
	b.off += 6 + packed

	return Decimal{
		Negative: sign != 0,
		Exponent: exponent,
		Digits:   digits,
	}, nil
}

// ReadSpecialNum consumes a SPECIALNUM value. The sign bit of a NaN is
// undefined on the wire and never reported.
func (b *Buffer) ReadSpecialNum() (SpecialNum, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return SpecialNum{}, err
	}
	if format.Tag(d[b.off]) != format.TagSpecialNum {
		return SpecialNum{}, errs.ErrBadTag
	}
	if err := b.need(2); err != nil {
		return SpecialNum{}, err
	}

	flags := d[b.off+1]
	var v SpecialNum
	switch flags & 0xF0 {
	case format.SpecialInfinity:
		v = SpecialNum{Kind: KindInfinity, Negative: flags&format.SpecialLowBit != 0}
	case format.SpecialNaN:
		v = SpecialNum{Kind: KindNaN, Signaling: flags&format.SpecialLowBit != 0}
	default:
		return SpecialNum{}, errs.ErrBadTag
	}
	b.off += 2

	return v, nil
}

// ReadDate consumes a DATE value.
func (b *Buffer) ReadDate() (Date, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return Date{}, err
	}
	if format.Tag(d[b.off]) != format.TagDate {
		return Date{}, errs.ErrBadTag
	}
	if err := b.need(5); err != nil {
		return Date{}, err
	}

	v := Date{
		Year:  b.engine.Uint16(d[b.off+1 : b.off+3]),
		Month: d[b.off+3],
		Day:   d[b.off+4],
	}
	b.off += 5

	return v, nil
}

// ReadTime consumes a TIME value. The microsecond field occupies exactly
// three wire bytes and is widened here; nothing beyond the payload is read.
func (b *Buffer) ReadTime() (Time, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return Time{}, err
	}
	if format.Tag(d[b.off]) != format.TagTime {
		return Time{}, errs.ErrBadTag
	}
	if err := b.need(7); err != nil {
		return Time{}, err
	}

	v := Time{
		Hour:        d[b.off+1],
		Minute:      d[b.off+2],
		Second:      d[b.off+3],
		Microsecond: uint24(d[b.off+4 : b.off+7]),
	}
	b.off += 7

	return v, nil
}

// ReadDateTime consumes a DATETIME value.
func (b *Buffer) ReadDateTime() (DateTime, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return DateTime{}, err
	}
	if format.Tag(d[b.off]) != format.TagDateTime {
		return DateTime{}, errs.ErrBadTag
	}
	if err := b.need(11); err != nil {
		return DateTime{}, err
	}

	v := DateTime{
		Year:        b.engine.Uint16(d[b.off+1 : b.off+3]),
		Month:       d[b.off+3],
		Day:         d[b.off+4],
		Hour:        d[b.off+5],
		Minute:      d[b.off+6],
		Second:      d[b.off+7],
		Microsecond: uint24(d[b.off+8 : b.off+11]),
	}
	b.off += 11

	return v, nil
}

// ReadTimeDelta consumes a TIMEDELTA value.
func (b *Buffer) ReadTimeDelta() (TimeDelta, error) {
	d := b.data()
	if err := b.need(1); err != nil {
		return TimeDelta{}, err
	}
	if format.Tag(d[b.off]) != format.TagTimeDelta {
		return TimeDelta{}, errs.ErrBadTag
	}
	if err := b.need(13); err != nil {
		return TimeDelta{}, err
	}

	v := TimeDelta{
		Days:         int32(b.engine.Uint32(d[b.off+1 : b.off+5])),
		Seconds:      int32(b.engine.Uint32(d[b.off+5 : b.off+9])),
		Microseconds: int32(b.engine.Uint32(d[b.off+9 : b.off+13])),
	}
	b.off += 13

	return v, nil
}

// uint24 widens a 3-byte big-endian field.
func uint24(p []byte) uint32 {
	return uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// ContainerSize consumes the header of any container (list, tuple, set or
// hash) and returns its declared element count. The caller then decodes that
// many children in order, or twice that many for a hash. The count is
// trusted; the wire carries no terminator.
func (b *Buffer) ContainerSize() (int, error) {
	d := b.data()
	if b.off >= len(d) {
		return 0, errs.ErrShortBuffer
	}

	t := format.Tag(d[b.off])
	if !t.IsContainer() {
		return 0, errs.ErrBadTag
	}

	prefix := t.PrefixSize()
	if len(d)-b.off < 1+prefix {
		return 0, errs.ErrShortBuffer
	}

	var n int64
	p := d[b.off+1:]
	switch prefix {
	case 1:
		n = int64(p[0])
	case 2:
		n = int64(b.engine.Uint16(p[:2]))
	case 4:
		n = int64(b.engine.Uint32(p[:4]))
	}
	b.off += 1 + prefix

	return int(n), nil
}

// Skip advances the cursor past one complete value of any type, recursing
// through containers. Callers use it to ignore values they do not care
// about; the framing stays intact.
func (b *Buffer) Skip() error {
	t, err := b.Tag()
	if err != nil {
		return err
	}

	switch {
	case t == format.TagNull:
		b.off++

		return nil
	case t == format.TagBool || t == format.TagSpecialNum:
		return b.skipFixed(2)
	case t == format.TagChar:
		return b.skipFixed(2)
	case t == format.TagShort:
		return b.skipFixed(3)
	case t == format.TagInt:
		return b.skipFixed(5)
	case t == format.TagLong, t == format.TagFloat:
		return b.skipFixed(9)
	case t == format.TagDate:
		return b.skipFixed(5)
	case t == format.TagTime:
		return b.skipFixed(7)
	case t == format.TagDateTime:
		return b.skipFixed(11)
	case t == format.TagTimeDelta:
		return b.skipFixed(13)
	case t == format.TagHuge:
		n, err := b.hugeHeader()
		if err != nil {
			return err
		}
		if b.Remaining()-5 < n {
			return errs.ErrShortBuffer
		}
		b.off += 5 + n

		return nil
	case t.IsString():
		_, err := b.pointSized(format.TagShortStr, format.TagMedStr, format.TagLongStr)

		return err
	case t.IsUTF8():
		_, err := b.pointSized(format.TagShortUTF8, format.TagMedUTF8, format.TagLongUTF8)

		return err
	case t == format.TagDecimal:
		return b.skipDecimal()
	case t.IsContainer():
		mark := b.off
		count, err := b.ContainerSize()
		if err != nil {
			return err
		}
		if t.IsHash() {
			count *= 2
		}
		for range count {
			if err := b.Skip(); err != nil {
				b.off = mark

				return err
			}
		}

		return nil
	default:
		return errs.ErrBadTag
	}
}

func (b *Buffer) skipFixed(total int) error {
	if err := b.need(total); err != nil {
		return err
	}
	b.off += total

	return nil
}

func (b *Buffer) skipDecimal() error {
	d := b.data()
	if err := b.need(6); err != nil {
		return err
	}

	count := int(b.engine.Uint16(d[b.off+4 : b.off+6]))
	packed := (count + 1) / 2
	if err := b.need(6 + packed); err != nil {
		return err
	}
	b.off += 6 + packed

	return nil
}
