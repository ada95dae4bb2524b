// Package mummy implements a compact, self-describing binary serialization
// codec for a fixed alphabet of primitive and container value types, with an
// optional LZF compression envelope.
//
// Values are written into a growable Buffer by the Feed/Open family and read
// back by the Read/PointTo family. Every value starts with a single tag byte
// that also selects a size class, so small values stay small: the integer 42
// takes two bytes on the wire, a three-byte string takes five. All multi-byte
// fields are big-endian.
//
// # Encoding
//
//	buf := mummy.NewBuffer(256)
//	defer buf.Release()
//
//	_ = buf.OpenList(3)
//	_ = buf.FeedInt(1)
//	_ = buf.FeedString([]byte("a"))
//	_ = buf.FeedNull()
//
//	payload := buf.Bytes()
//
// Containers open with a declared element count and the caller feeds exactly
// that many children (pairs for hashes). No terminator is written.
//
// # Decoding
//
//	buf := mummy.Wrap(payload)
//	n, _ := buf.ContainerSize()
//	for range n {
//	    tag, _ := buf.Tag()
//	    // dispatch on tag, call the matching reader
//	}
//
// Readers come in two flavors: copying (Read*, caller-owned destination) and
// pointing (PointTo*, a borrow into the source bytes that stays valid while
// the buffer lives). Decode errors never advance the cursor.
//
// # Compression
//
// Compress replaces a finished payload with an LZF-compressed envelope when
// the compressed body is at least five bytes shorter than the bytes it
// replaces, so the envelope, length header included, is smaller than the
// payload; Decompress reverses it and is a no-op on
// uncompressed payloads. The high bit of a payload's first byte tells the
// two apart, so decoders can always call Decompress unconditionally.
//
//	_ = buf.Compress()
//	...
//	did, err := buf.Decompress()
//
// A Buffer is not safe for concurrent use; distinct Buffers are independent.
package mummy
