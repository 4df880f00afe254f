// Package structpack computes byte layouts for, encodes, and decodes
// binary structures described by a compact format mini-language, with the
// same semantics as C-struct-style format descriptors: byte order
// prefixes, per-type sizes and alignment, repeat counts, fixed-length and
// length-prefixed strings.
//
// # Architecture Overview
//
//	structpack/          Public API and the codec core
//	├── structpack.go    SizeOf, Pack, PackArgs, PackInto, Unpack, UnpackFrom
//	├── format.go        Prefix selection and the shared layout walk
//	├── table.go         Code registries generated per byte order and mode
//	├── numeric.go       Scalar codecs and permissive value coercion
//	├── int64.go         64-bit fields as two 32-bit wire words
//	├── text.go          Fixed-length (s) and length-prefixed (p) text
//	├── internal/buffer  Offset-addressed numeric buffer primitives
//	└── cmd/structpack   Layout explorer CLI
//
// # Format Strings
//
// A format string optionally begins with a byte-order prefix:
//
//	@  native order, native alignment (default when absent)
//	=  native order, standard sizes, no padding
//	<  little-endian, standard sizes, no padding
//	>  big-endian, standard sizes, no padding
//	!  network order, identical to >
//
// The remainder is a sequence of type codes, each optionally preceded by
// a decimal repeat count:
//
//	x pad    c char   b int8    B uint8   ? bool
//	h int16  H uint16 i int32   I uint32  l int32  L uint32
//	q int64  Q uint64 f float32 d float64
//	s text   p pascal text      P pointer-width uint (native mode only)
//
// For s and p the count is the field's byte length, not a repetition:
// "4s" is one four-byte text field. Characters that are not digits,
// prefixes, or type codes are skipped without error.
//
// # Packing and Unpacking
//
//	buf, err := structpack.PackArgs("<HH", 1, 2)
//	// buf == []byte{0x01, 0x00, 0x02, 0x00}
//
//	vals, err := structpack.Unpack("<2H", buf)
//	// vals == []any{uint16(1), uint16(2)}
//
// Sequential structures decode with UnpackFrom:
//
//	first, _ := structpack.UnpackFrom("<I", data, true, 0)
//	second, _ := structpack.UnpackFrom("<I", data, true, 4)
//
// # Bounds Checking
//
// Unpack and UnpackFrom validate buffer bounds only when asked;
// UnpackChecked and PackArgs always validate. A checked decode fails with
// ErrShortBuffer before reading past the buffer; a checked encode fails
// with ErrMissingValue when the value sequence runs out. Lenient by
// contract: unrecognized format characters are ignored, oversized pascal
// lengths are clamped, and mistyped values encode as zero.
//
// # Thread Safety
//
// All operations are pure functions over caller-owned buffers. The code
// registries are built once and never mutated, so every entry point is
// safe for unlimited concurrent use.
package structpack
