package structpack

import "github.com/wippyai/structpack/internal/buffer"

// std carries the registries for the host this process runs on. Tests
// that need a foreign host build their own tables with newTables.
var std = newTables(DetectHost())

// SizeOf returns the total byte size implied by the format string,
// including alignment padding. Unrecognized characters contribute
// nothing.
func SizeOf(format string) int {
	n, _ := std.walk(format, 0, nil)
	return n
}

// Unpack decodes data from offset 0 without bounds checking; a buffer
// shorter than SizeOf(format) panics. Use UnpackChecked to get an error
// instead.
func Unpack(format string, data []byte) ([]any, error) {
	return UnpackFrom(format, data, false, 0)
}

// UnpackChecked decodes data from offset 0, failing with ErrShortBuffer
// before any field that would read past the end of data.
func UnpackChecked(format string, data []byte) ([]any, error) {
	return UnpackFrom(format, data, true, 0)
}

// UnpackFrom decodes starting at an arbitrary offset, enabling sequential
// decoding of concatenated structures. Alignment is applied to the
// absolute cursor.
func UnpackFrom(format string, data []byte, checked bool, pos int) ([]any, error) {
	var out []any
	_, err := std.walk(format, pos, func(code byte, e entry, off, length int) error {
		if e.dec == nil {
			return nil
		}
		if checked && off+length > len(data) {
			return shortBuffer("unpack_from", code, off, length, len(data))
		}
		out = append(out, e.dec(data, off, length))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FieldInfo describes one field occurrence in a resolved layout: its
// format code, absolute byte offset after alignment, and byte span. Pad
// occurrences are included; unrecognized characters are not.
type FieldInfo struct {
	Code   byte
	Offset int
	Size   int
}

// Fields resolves the layout of a format string, one entry per field
// occurrence in cursor order.
func Fields(format string) []FieldInfo {
	var out []FieldInfo
	std.walk(format, 0, func(code byte, _ entry, off, length int) error {
		out = append(out, FieldInfo{Code: code, Offset: off, Size: length})
		return nil
	})
	return out
}

// Pack encodes values into a freshly allocated buffer of exactly
// SizeOf(format) bytes. With checked set, running out of values before
// the format is exhausted fails with ErrMissingValue; unchecked, missing
// values encode as zero bytes.
func Pack(format string, values []any, checked bool) ([]byte, error) {
	buf := make([]byte, SizeOf(format))
	if err := packInto("pack", format, buf, 0, values, checked); err != nil {
		return nil, err
	}
	return buf, nil
}

// PackArgs is the variadic form of Pack. Bounds checking is always on in
// this form.
func PackArgs(format string, args ...any) ([]byte, error) {
	return Pack(format, args, true)
}

// PackInto encodes values into a caller-provided buffer starting at pos.
// With checked set it fails with ErrShortBuffer when the format's span
// does not fit, and with ErrMissingValue when values run out.
func PackInto(format string, buf []byte, pos int, values []any, checked bool) error {
	return packInto("pack_into", format, buf, pos, values, checked)
}

func packInto(op, format string, buf []byte, pos int, values []any, checked bool) error {
	if checked {
		span, _ := std.walk(format, pos, nil)
		if pos+span > len(buf) {
			return shortBuffer(op, 0, pos, span, len(buf))
		}
	}
	next := 0
	_, err := std.walk(format, pos, func(code byte, e entry, off, length int) error {
		if e.enc == nil {
			buffer.Zero(buf, off, length)
			return nil
		}
		if next >= len(values) {
			if checked {
				return missingValue(op, code, next)
			}
			buffer.Zero(buf, off, length)
			next++
			return nil
		}
		e.enc(buf, off, length, values[next])
		next++
		return nil
	})
	return err
}
