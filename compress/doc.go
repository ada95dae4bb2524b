// Package compress provides the block compression codecs used by the mummy
// payload envelope.
//
// The envelope admits exactly one algorithm on the wire, LZF, signaled by the
// high bit of a payload's first byte. The Codec interface nevertheless keeps
// the algorithm pluggable for the envelope implementation and for tests: the
// NoOp codec passes bytes through unchanged, and GetCodec resolves a
// format.CompressionType to its codec.
//
// Both operations are bounded block calls: the caller supplies the
// destination, and a compression that cannot fit the destination fails
// rather than allocating. This matches the envelope's contract, which only
// keeps a compressed payload when it saves space.
package compress
