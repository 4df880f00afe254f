package structpack

import (
	"encoding/binary"
	"math/bits"
)

// Host describes the properties of the machine the codec runs on: its
// native byte order and pointer width. Registry construction takes a Host
// explicitly rather than consulting globals, so tests can build tables for
// a foreign host.
type Host struct {
	// LittleEndian reports the native byte order.
	LittleEndian bool

	// PointerSize is the native pointer width in bytes (4 or 8). It
	// determines the width of the P code and is only consulted by the
	// native-mode registry.
	PointerSize int
}

// DetectHost returns the Host for the current machine.
func DetectHost() Host {
	return Host{
		LittleEndian: binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 1,
		PointerSize:  bits.UintSize / 8,
	}
}

// Order returns the encoding/binary byte order matching the host's native
// byte order.
func (h Host) Order() binary.ByteOrder {
	if h.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
