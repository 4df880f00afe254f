package structpack

import (
	"encoding/binary"

	"github.com/wippyai/structpack/internal/buffer"
)

// 64-bit fields are composed from two 32-bit words on the wire: the low
// word sits first under little-endian order, the high word first under
// big-endian. splitWords and joinWords keep the sign semantics out of the
// wire layer; signedness is applied by the decoder's final conversion.

func splitWords(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

func joinWords(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

func readWords(d []byte, off int, ord binary.ByteOrder, little bool) uint64 {
	a := buffer.U32(d, off, ord)
	b := buffer.U32(d, off+4, ord)
	if little {
		return joinWords(b, a)
	}
	return joinWords(a, b)
}

func writeWords(b []byte, off int, ord binary.ByteOrder, little bool, v uint64) {
	hi, lo := splitWords(v)
	if little {
		buffer.PutU32(b, off, ord, lo)
		buffer.PutU32(b, off+4, ord, hi)
		return
	}
	buffer.PutU32(b, off, ord, hi)
	buffer.PutU32(b, off+4, ord, lo)
}

func decInt64(ord binary.ByteOrder, little bool) decodeFunc {
	return func(d []byte, off, _ int) any { return int64(readWords(d, off, ord, little)) }
}

func decUint64(ord binary.ByteOrder, little bool) decodeFunc {
	return func(d []byte, off, _ int) any { return readWords(d, off, ord, little) }
}

func encUint64(ord binary.ByteOrder, little bool) encodeFunc {
	return func(b []byte, off, _ int, v any) { writeWords(b, off, ord, little, toUint64(v)) }
}
