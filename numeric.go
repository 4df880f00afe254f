package structpack

import (
	"encoding/binary"

	"github.com/wippyai/structpack/internal/buffer"
)

// Scalar codecs. Decoders return the Go type matching the format code;
// encoders share one writer per width since signed and unsigned values of
// the same width produce identical bytes. Coercion never fails: see
// toUint64 below.

func decInt8(d []byte, off, _ int) any  { return int8(buffer.U8(d, off)) }
func decUint8(d []byte, off, _ int) any { return buffer.U8(d, off) }
func decChar(d []byte, off, _ int) any  { return buffer.U8(d, off) }

func decBool(d []byte, off, _ int) any { return buffer.U8(d, off) != 0 }

func decInt16(ord binary.ByteOrder) decodeFunc {
	return func(d []byte, off, _ int) any { return int16(buffer.U16(d, off, ord)) }
}

func decUint16(ord binary.ByteOrder) decodeFunc {
	return func(d []byte, off, _ int) any { return buffer.U16(d, off, ord) }
}

func decInt32(ord binary.ByteOrder) decodeFunc {
	return func(d []byte, off, _ int) any { return int32(buffer.U32(d, off, ord)) }
}

func decUint32(ord binary.ByteOrder) decodeFunc {
	return func(d []byte, off, _ int) any { return buffer.U32(d, off, ord) }
}

func decFloat32(ord binary.ByteOrder) decodeFunc {
	return func(d []byte, off, _ int) any { return buffer.F32(d, off, ord) }
}

func decFloat64(ord binary.ByteOrder) decodeFunc {
	return func(d []byte, off, _ int) any { return buffer.F64(d, off, ord) }
}

func encUint8(b []byte, off, _ int, v any) {
	buffer.PutU8(b, off, uint8(toUint64(v)))
}

func encChar(b []byte, off, _ int, v any) {
	switch c := v.(type) {
	case byte:
		buffer.PutU8(b, off, c)
	case rune:
		buffer.PutU8(b, off, byte(c))
	case string:
		if len(c) > 0 {
			buffer.PutU8(b, off, c[0])
		} else {
			buffer.PutU8(b, off, 0)
		}
	default:
		buffer.PutU8(b, off, uint8(toUint64(v)))
	}
}

func encBool(b []byte, off, _ int, v any) {
	var x uint8
	switch t := v.(type) {
	case bool:
		if t {
			x = 1
		}
	default:
		if toUint64(v) != 0 {
			x = 1
		}
	}
	buffer.PutU8(b, off, x)
}

func encUint16(ord binary.ByteOrder) encodeFunc {
	return func(b []byte, off, _ int, v any) { buffer.PutU16(b, off, ord, uint16(toUint64(v))) }
}

func encUint32(ord binary.ByteOrder) encodeFunc {
	return func(b []byte, off, _ int, v any) { buffer.PutU32(b, off, ord, uint32(toUint64(v))) }
}

func encFloat32(ord binary.ByteOrder) encodeFunc {
	return func(b []byte, off, _ int, v any) { buffer.PutF32(b, off, ord, float32(toFloat64(v))) }
}

func encFloat64(ord binary.ByteOrder) encodeFunc {
	return func(b []byte, off, _ int, v any) { buffer.PutF64(b, off, ord, toFloat64(v)) }
}

// toUint64 coerces any Go numeric value to a uint64 bit pattern, sign
// extending signed inputs so narrow writers can truncate to their width.
// Unconvertible values coerce to zero rather than failing; type
// mismatches are tolerated the same way unrecognized format characters
// are.
func toUint64(v any) uint64 {
	switch t := v.(type) {
	case uint64:
		return t
	case int64:
		return uint64(t)
	case int:
		return uint64(int64(t))
	case uint:
		return uint64(t)
	case int8:
		return uint64(int64(t))
	case uint8:
		return uint64(t)
	case int16:
		return uint64(int64(t))
	case uint16:
		return uint64(t)
	case int32:
		return uint64(int64(t))
	case uint32:
		return uint64(t)
	case uintptr:
		return uint64(t)
	case float32:
		return uint64(int64(t))
	case float64:
		return uint64(int64(t))
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// toFloat64 coerces any Go numeric value to float64, zero for anything else.
func toFloat64(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return 0
	}
}
