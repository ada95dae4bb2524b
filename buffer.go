package mummy

import (
	"github.com/teepark/mummy/endian"
	"github.com/teepark/mummy/errs"
	"github.com/teepark/mummy/internal/pool"
)

// Buffer is the byte region every codec operation works against.
//
// A Buffer is either owned (NewBuffer; pooled storage that grows by doubling
// as values are fed) or wrapped (Wrap; a borrow of caller bytes, read-only
// for feeds). Feeds append at the written extent; reads consume from an
// independent cursor starting at zero, so a freshly encoded Buffer can be
// decoded without copying.
//
// After every successful feed, Bytes() is a prefix-valid encoding. Decode
// errors never move the cursor.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	bb     *pool.ByteBuffer // owned storage, nil when wrapped or released
	ext    []byte           // wrapped bytes, nil when owned
	off    int              // read cursor
	engine endian.EndianEngine
}

// NewBuffer creates an owned Buffer with at least the given initial capacity.
// The storage comes from an internal pool; call Release to return it.
func NewBuffer(initialCapacity int) *Buffer {
	bb := pool.GetPayloadBuffer()
	if initialCapacity > 0 {
		bb.Grow(initialCapacity)
	}

	return &Buffer{
		bb:     bb,
		engine: endian.GetBigEndianEngine(),
	}
}

// Wrap creates a Buffer borrowing the caller's bytes. The Buffer never grows
// or mutates them; feed operations return errs.ErrReadOnlyBuffer. The borrow
// must outlive the Buffer and any PointTo* slices taken from it.
func Wrap(data []byte) *Buffer {
	return &Buffer{
		ext:    data,
		engine: endian.GetBigEndianEngine(),
	}
}

// data returns the current byte contents, whichever store backs them.
func (b *Buffer) data() []byte {
	if b.bb != nil {
		return b.bb.B
	}

	return b.ext
}

// writable returns the owned store after ensuring n more bytes fit.
func (b *Buffer) writable(n int) (*pool.ByteBuffer, error) {
	if b.bb == nil {
		return nil, errs.ErrReadOnlyBuffer
	}
	b.bb.Grow(n)

	return b.bb, nil
}

// need verifies at least n unread bytes remain at the cursor.
func (b *Buffer) need(n int) error {
	if len(b.data())-b.off < n {
		return errs.ErrShortBuffer
	}

	return nil
}

// Bytes returns the written contents. For owned buffers the slice aliases
// the internal store and is invalidated by further feeds, Compress,
// Decompress and Release.
func (b *Buffer) Bytes() []byte {
	return b.data()
}

// Len returns the written extent in bytes.
func (b *Buffer) Len() int {
	return len(b.data())
}

// Offset returns the read cursor position.
func (b *Buffer) Offset() int {
	return b.off
}

// Remaining returns the number of unread bytes between the cursor and the
// written extent.
func (b *Buffer) Remaining() int {
	return len(b.data()) - b.off
}

// Wrapped reports whether the Buffer borrows caller bytes.
func (b *Buffer) Wrapped() bool {
	return b.bb == nil && b.ext != nil
}

// Rewind moves the read cursor back to the start without touching contents.
func (b *Buffer) Rewind() {
	b.off = 0
}

// Reset discards written contents of an owned Buffer (keeping its storage)
// and rewinds the cursor. On a wrapped Buffer it only rewinds.
func (b *Buffer) Reset() {
	if b.bb != nil {
		b.bb.Reset()
	}
	b.off = 0
}

// Release returns owned storage to the pool and drops any borrow. The Buffer
// must not be used afterwards; PointTo* slices taken from an owned Buffer
// are invalidated.
func (b *Buffer) Release() {
	if b.bb != nil {
		pool.PutPayloadBuffer(b.bb)
		b.bb = nil
	}
	b.ext = nil
	b.off = 0
}

// replace swaps in freshly produced storage, used by Compress and
// Decompress. The previous owned store goes back to the pool.
func (b *Buffer) replace(bb *pool.ByteBuffer) {
	if b.bb != nil {
		pool.PutPayloadBuffer(b.bb)
	}
	b.bb = bb
	b.ext = nil
	b.off = 0
}
