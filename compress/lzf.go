package compress

import "sync"

// LZF block format (liblzf 3.6 compatible):
//
//	ctrl < 0x20:  literal run, ctrl+1 bytes follow verbatim
//	ctrl >= 0x20: back-reference; length = (ctrl >> 5) + 2, with length
//	              value 7 extended by one extra byte; distance =
//	              ((ctrl & 0x1f) << 8 | next byte) + 1 back from the
//	              current output position
//
// Matches need at least 3 bytes, distances reach 8KiB back, and an extended
// length byte caps a single match at 264 bytes. Any conforming LZF
// decompressor accepts the output of compressLZF, and decompressLZF accepts
// any conforming stream; byte-identical output with liblzf is not required
// in either direction.
const (
	lzfHashLog    = 16
	lzfHashSize   = 1 << lzfHashLog
	lzfMaxLiteral = 1 << 5        // longest single literal run
	lzfMaxMatch   = (1 << 8) + 8  // 7 + 255 extension + 2 bias
	lzfMaxOffset  = 1 << 13       // furthest back-reference distance
)

// lzfHtabPool pools the compressor's position table. The table is 256KiB and
// dominates per-call allocation cost without pooling.
var lzfHtabPool = sync.Pool{
	New: func() any {
		return new([lzfHashSize]int32)
	},
}

// LZFCodec implements the Codec interface with the LZF block format.
type LZFCodec struct{}

var _ Codec = (*LZFCodec)(nil)

// NewLZFCodec creates a new LZF codec.
func NewLZFCodec() LZFCodec {
	return LZFCodec{}
}

// CompressBlock compresses src into dst using greedy LZF matching.
//
// Returns the compressed size, or ErrShortDestination if the output would
// exceed len(dst). The envelope uses the bounded destination to demand a net
// saving: if LZF cannot beat the limit, the payload stays uncompressed.
func (c LZFCodec) CompressBlock(src, dst []byte) (int, error) {
	return compressLZF(src, dst)
}

// DecompressBlock decompresses src into dst.
//
// Returns the produced size, ErrShortDestination if the output would exceed
// len(dst), or ErrCorruptInput if the stream is malformed.
func (c LZFCodec) DecompressBlock(src, dst []byte) (int, error) {
	return decompressLZF(src, dst)
}

// lzfHash maps a 3-byte sequence to a position table slot.
func lzfHash(seq uint32) uint32 {
	return (seq * 2654435761) >> (32 - lzfHashLog)
}

func compressLZF(src, dst []byte) (int, error) {
	inLen := len(src)
	if inLen == 0 {
		return 0, nil
	}

	htab, _ := lzfHtabPool.Get().(*[lzfHashSize]int32)
	defer lzfHtabPool.Put(htab)
	for i := range htab {
		htab[i] = -1
	}

	op := 0
	anchor := 0 // start of the pending literal run

	// flushLiterals emits src[anchor:end] as literal runs of at most
	// lzfMaxLiteral bytes each.
	flushLiterals := func(end int) bool {
		for anchor < end {
			run := end - anchor
			if run > lzfMaxLiteral {
				run = lzfMaxLiteral
			}
			if op+1+run > len(dst) {
				return false
			}
			dst[op] = byte(run - 1)
			op++
			copy(dst[op:], src[anchor:anchor+run])
			op += run
			anchor += run
		}

		return true
	}

	for ip := 0; ip+2 < inLen; {
		seq := uint32(src[ip])<<16 | uint32(src[ip+1])<<8 | uint32(src[ip+2])
		slot := lzfHash(seq)
		ref := int(htab[slot])
		htab[slot] = int32(ip)

		if ref >= 0 {
			dist := ip - ref - 1
			if dist < lzfMaxOffset &&
				src[ref] == src[ip] && src[ref+1] == src[ip+1] && src[ref+2] == src[ip+2] {
				mlen := 3
				limit := inLen - ip
				if limit > lzfMaxMatch {
					limit = lzfMaxMatch
				}
				for mlen < limit && src[ref+mlen] == src[ip+mlen] {
					mlen++
				}

				if !flushLiterals(ip) {
					return 0, ErrShortDestination
				}

				stored := mlen - 2
				if stored < 7 {
					if op+2 > len(dst) {
						return 0, ErrShortDestination
					}
					dst[op] = byte(stored<<5) | byte(dist>>8)
					dst[op+1] = byte(dist)
					op += 2
				} else {
					if op+3 > len(dst) {
						return 0, ErrShortDestination
					}
					dst[op] = byte(7<<5) | byte(dist>>8)
					dst[op+1] = byte(stored - 7)
					dst[op+2] = byte(dist)
					op += 3
				}

				ip += mlen
				anchor = ip

				continue
			}
		}

		ip++
	}

	if !flushLiterals(inLen) {
		return 0, ErrShortDestination
	}

	return op, nil
}

func decompressLZF(src, dst []byte) (int, error) {
	ip, op := 0, 0

	for ip < len(src) {
		ctrl := int(src[ip])
		ip++

		if ctrl < lzfMaxLiteral {
			// literal run
			run := ctrl + 1
			if ip+run > len(src) {
				return 0, ErrCorruptInput
			}
			if op+run > len(dst) {
				return 0, ErrShortDestination
			}
			copy(dst[op:], src[ip:ip+run])
			ip += run
			op += run

			continue
		}

		mlen := ctrl >> 5
		if mlen == 7 {
			if ip >= len(src) {
				return 0, ErrCorruptInput
			}
			mlen += int(src[ip])
			ip++
		}
		mlen += 2

		if ip >= len(src) {
			return 0, ErrCorruptInput
		}
		ref := op - ((ctrl&0x1f)<<8|int(src[ip])) - 1
		ip++

		if ref < 0 {
			return 0, ErrCorruptInput
		}
		if op+mlen > len(dst) {
			return 0, ErrShortDestination
		}

		// Byte-at-a-time: the match may overlap its own output.
		for range mlen {
			dst[op] = dst[ref]
			op++
			ref++
		}
	}

	return op, nil
}
