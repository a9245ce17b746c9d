// Package format contains helpers and constants for the binstore
// persisted format.
//
// The format is explicitly host-endian and host-width-dependent (it is a
// local settings cache, not an interchange format), so every codec here
// goes through binary.NativeEndian.
package format

import "encoding/binary"

// PutU64 writes a uint64 value to the buffer at the specified offset in host byte order.
func PutU64(b []byte, off int, v uint64) {
	binary.NativeEndian.PutUint64(b[off:off+8], v)
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in host byte order.
func ReadU64(b []byte, off int) uint64 {
	return binary.NativeEndian.Uint64(b[off : off+8])
}

// AppendU64 appends a host-order uint64 to b.
func AppendU64(b []byte, v uint64) []byte {
	return binary.NativeEndian.AppendUint64(b, v)
}
