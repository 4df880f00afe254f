package structpack

import (
	"bytes"

	"github.com/wippyai/structpack/internal/buffer"
)

// Text codecs. A text field's declared byte span comes from its repeat
// count; the count is a length, not a repetition, so every text field
// produces or consumes exactly one value.

// decText reads a fixed-length text field. The extent is the shortest of
// the declared length, the distance to the first NUL byte, and the
// remaining buffer.
func decText(d []byte, off, length int) any {
	if off >= len(d) {
		return ""
	}
	end := off + length
	if end > len(d) {
		end = len(d)
	}
	ext := d[off:end]
	if i := bytes.IndexByte(ext, 0); i >= 0 {
		ext = ext[:i]
	}
	return string(ext)
}

// encText writes exactly length bytes: the value's bytes truncated to the
// declared length, zero-filled when shorter.
func encText(b []byte, off, length int, v any) {
	s := textBytes(v)
	n := len(s)
	if n > length {
		n = length
	}
	copy(b[off:off+n], s[:n])
	buffer.Zero(b, off+n, length-n)
}

// decPascal reads a length-prefixed text field. The count byte is clamped
// to the declared span minus the prefix byte, and to the remaining buffer.
func decPascal(d []byte, off, length int) any {
	if length == 0 || off >= len(d) {
		return ""
	}
	n := int(buffer.U8(d, off))
	if n > length-1 {
		n = length - 1
	}
	if off+1+n > len(d) {
		n = len(d) - off - 1
	}
	return string(d[off+1 : off+1+n])
}

// encPascal writes the content length (clamped to min(length-1, 255))
// into the first byte, then that many content bytes, zero-filling the
// rest of the declared span.
func encPascal(b []byte, off, length int, v any) {
	if length == 0 {
		return
	}
	s := textBytes(v)
	n := len(s)
	if n > length-1 {
		n = length - 1
	}
	if n > 255 {
		n = 255
	}
	buffer.PutU8(b, off, uint8(n))
	copy(b[off+1:off+1+n], s[:n])
	buffer.Zero(b, off+1+n, length-1-n)
}

func textBytes(v any) []byte {
	switch t := v.(type) {
	case string:
		return []byte(t)
	case []byte:
		return t
	default:
		return nil
	}
}
