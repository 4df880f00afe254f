// Package buffer provides offset-addressed numeric read/write primitives
// over a caller-owned byte slice.
//
// Every function operates at an absolute byte offset and never reslices or
// retains the buffer. Callers are responsible for bounds: an out-of-range
// offset panics exactly as slice indexing does.
package buffer

import (
	"encoding/binary"
	"math"
)

// U8 reads an unsigned byte at off.
func U8(b []byte, off int) uint8 {
	return b[off]
}

// PutU8 writes an unsigned byte at off.
func PutU8(b []byte, off int, v uint8) {
	b[off] = v
}

// U16 reads a 16-bit unsigned integer at off in the given byte order.
func U16(b []byte, off int, ord binary.ByteOrder) uint16 {
	return ord.Uint16(b[off : off+2])
}

// PutU16 writes a 16-bit unsigned integer at off in the given byte order.
func PutU16(b []byte, off int, ord binary.ByteOrder, v uint16) {
	ord.PutUint16(b[off:off+2], v)
}

// U32 reads a 32-bit unsigned integer at off in the given byte order.
func U32(b []byte, off int, ord binary.ByteOrder) uint32 {
	return ord.Uint32(b[off : off+4])
}

// PutU32 writes a 32-bit unsigned integer at off in the given byte order.
func PutU32(b []byte, off int, ord binary.ByteOrder, v uint32) {
	ord.PutUint32(b[off:off+4], v)
}

// F32 reads an IEEE 754 single-precision float at off.
func F32(b []byte, off int, ord binary.ByteOrder) float32 {
	return math.Float32frombits(U32(b, off, ord))
}

// PutF32 writes an IEEE 754 single-precision float at off.
func PutF32(b []byte, off int, ord binary.ByteOrder, v float32) {
	PutU32(b, off, ord, math.Float32bits(v))
}

// F64 reads an IEEE 754 double-precision float at off.
func F64(b []byte, off int, ord binary.ByteOrder) float64 {
	return math.Float64frombits(ord.Uint64(b[off : off+8]))
}

// PutF64 writes an IEEE 754 double-precision float at off.
func PutF64(b []byte, off int, ord binary.ByteOrder, v float64) {
	ord.PutUint64(b[off:off+8], math.Float64bits(v))
}

// Zero fills n bytes starting at off with zeroes.
func Zero(b []byte, off, n int) {
	clear(b[off : off+n])
}
