package structpack

import "encoding/binary"

// decodeFunc reads one field occurrence at off and returns its value.
// length is the element width for scalar codes and the declared byte span
// for text codes.
type decodeFunc func(data []byte, off, length int) any

// encodeFunc writes one field occurrence at off. Implementations never
// fail: value coercion is permissive and unconvertible values encode as
// zero.
type encodeFunc func(buf []byte, off, length int, v any)

// entry describes one format code in one registry: its element size, the
// byte boundary its start offset is rounded up to, and its codec pair.
// Pad bytes carry nil codecs and only advance the cursor.
type entry struct {
	size  int
	align int
	dec   decodeFunc
	enc   encodeFunc
}

// registry maps a format code to its entry. Unmapped characters are
// skipped by the layout walk, never rejected.
type registry map[byte]entry

// tables holds the three registries a format prefix can select between,
// plus the host description used to resolve '=' and 'P'.
type tables struct {
	native registry
	little registry
	big    registry
	host   Host
}

// newTables builds the three registries for the given host. All entries
// come from one generator parameterized by byte order and alignment mode,
// so the tables cannot drift apart.
func newTables(h Host) *tables {
	return &tables{
		native: newRegistry(h.Order(), h.LittleEndian, true, h),
		little: newRegistry(binary.LittleEndian, true, false, h),
		big:    newRegistry(binary.BigEndian, false, false, h),
		host:   h,
	}
}

// newRegistry generates one code table. In native mode multibyte scalars
// align to their own size and the pointer code P is present; in standard
// mode everything packs with no padding and P is unmapped.
func newRegistry(ord binary.ByteOrder, little, native bool, h Host) registry {
	al := func(n int) int {
		if native {
			return n
		}
		return 1
	}
	reg := registry{
		'x': {size: 1, align: 1},
		'c': {size: 1, align: 1, dec: decChar, enc: encChar},
		'b': {size: 1, align: 1, dec: decInt8, enc: encUint8},
		'B': {size: 1, align: 1, dec: decUint8, enc: encUint8},
		'?': {size: 1, align: 1, dec: decBool, enc: encBool},
		'h': {size: 2, align: al(2), dec: decInt16(ord), enc: encUint16(ord)},
		'H': {size: 2, align: al(2), dec: decUint16(ord), enc: encUint16(ord)},
		'i': {size: 4, align: al(4), dec: decInt32(ord), enc: encUint32(ord)},
		'l': {size: 4, align: al(4), dec: decInt32(ord), enc: encUint32(ord)},
		'I': {size: 4, align: al(4), dec: decUint32(ord), enc: encUint32(ord)},
		'L': {size: 4, align: al(4), dec: decUint32(ord), enc: encUint32(ord)},
		'q': {size: 8, align: al(8), dec: decInt64(ord, little), enc: encUint64(ord, little)},
		'Q': {size: 8, align: al(8), dec: decUint64(ord, little), enc: encUint64(ord, little)},
		'f': {size: 4, align: al(4), dec: decFloat32(ord), enc: encFloat32(ord)},
		'd': {size: 8, align: al(8), dec: decFloat64(ord), enc: encFloat64(ord)},
		's': {size: 1, align: 1, dec: decText, enc: encText},
		'p': {size: 1, align: 1, dec: decPascal, enc: encPascal},
	}
	if native {
		// P follows the host pointer width and is only reachable
		// without an explicit byte-order prefix.
		if h.PointerSize == 8 {
			reg['P'] = entry{size: 8, align: 8, dec: decUint64(ord, little), enc: encUint64(ord, little)}
		} else {
			reg['P'] = entry{size: 4, align: 4, dec: decUint32(ord), enc: encUint32(ord)}
		}
	}
	return reg
}
