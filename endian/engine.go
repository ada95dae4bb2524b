// Package endian provides the byte order engine for the mummy wire format.
//
// The package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so encoders can append
// multi-byte fields without staging through temporary slices.
//
// Every multi-byte field on the mummy wire is big-endian, so codec code asks
// for GetBigEndianEngine:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, length)
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// The interface is satisfied by binary.BigEndian, making it fully compatible
// with existing Go code while providing access to both read/write and append
// operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, the byte order of the
// mummy wire.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
