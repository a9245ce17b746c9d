package binstore

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
	"unsafe"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/panics"
	"github.com/yyc12345/YYCCommonplace-sub000/internal/format"
)

// SerDes converts one typed value to and from its persisted byte form.
//
// Serialize returns ok == false when the value is outside the codec's
// accepted range. Deserialize returns ok == false on any malformed input
// (wrong length, out-of-range decoded value, invalid UTF-8 payload).
// Reset yields the byte form of the codec's default value;
// Deserialize(Reset()) must succeed for every valid SerDes — a violation
// is a program bug.
type SerDes[V any] interface {
	Serialize(value V) ([]byte, bool)
	Deserialize(data []byte) (V, bool)
	Reset() []byte
}

// Integer constrains the integral codec to the fixed and native-width
// integer kinds, including named types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float constrains the floating-point codec.
type Float interface {
	~float32 | ~float64
}

// hostLittle reports whether the host is little-endian. Integral codecs
// persist values in host order.
var hostLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// putHostInt writes the low `size` bytes of u in host order.
func putHostInt(u uint64, size int) []byte {
	var full [8]byte
	binary.NativeEndian.PutUint64(full[:], u)
	if hostLittle {
		return append([]byte(nil), full[:size]...)
	}
	return append([]byte(nil), full[8-size:]...)
}

// readHostInt reads a host-order integer of len(data) bytes into the low
// bits of a uint64.
func readHostInt(data []byte) uint64 {
	var full [8]byte
	if hostLittle {
		copy(full[:], data)
	} else {
		copy(full[8-len(data):], data)
	}
	return binary.NativeEndian.Uint64(full[:])
}

// IntSerDes is the integral codec: exactly the value's width in bytes,
// host byte order, with optional range bounds.
type IntSerDes[T Integer] struct {
	min, max, def T
}

// NewIntSerDes builds an integral codec with bounds. Inverted bounds or
// an out-of-range default are caller bugs.
func NewIntSerDes[T Integer](min, max, def T) IntSerDes[T] {
	if min > max {
		panics.Panicf("binstore: integral bounds inverted")
	}
	if def < min || def > max {
		panics.Panicf("binstore: integral default outside bounds")
	}
	return IntSerDes[T]{min: min, max: max, def: def}
}

// NewDefaultIntSerDes builds a full-range integral codec with a zero
// default.
func NewDefaultIntSerDes[T Integer]() IntSerDes[T] {
	min, max := intRange[T]()
	return IntSerDes[T]{min: min, max: max}
}

// NewEnumSerDes builds a full-range integral codec for an enumeration's
// underlying integer type, with the given default.
func NewEnumSerDes[T Integer](def T) IntSerDes[T] {
	min, max := intRange[T]()
	return NewIntSerDes(min, max, def)
}

// intRange computes the representable range of T.
func intRange[T Integer]() (min, max T) {
	bits := uint(8 * unsafe.Sizeof(min))
	allOnes := ^T(0)
	if allOnes < 0 {
		// Signed: the sign bit stays clear in max.
		max = T(^uint64(0) >> (64 - bits + 1))
		min = -max - 1
		return min, max
	}
	return 0, allOnes
}

func (sd IntSerDes[T]) Serialize(value T) ([]byte, bool) {
	if value < sd.min || value > sd.max {
		return nil, false
	}
	size := int(unsafe.Sizeof(value))
	return putHostInt(uint64(int64(value)), size), true
}

func (sd IntSerDes[T]) Deserialize(data []byte) (T, bool) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(data) != size {
		return zero, false
	}
	value := T(readHostInt(data))
	if value < sd.min || value > sd.max {
		return zero, false
	}
	return value, true
}

func (sd IntSerDes[T]) Reset() []byte {
	data, ok := sd.Serialize(sd.def)
	if !ok {
		panics.Panicf("binstore: integral default must serialize")
	}
	return data
}

// FloatSerDes is the floating-point codec: native representation of the
// value's width, host byte order, with finite range bounds.
type FloatSerDes[T Float] struct {
	min, max, def T
}

// NewFloatSerDes builds a floating-point codec with bounds. Non-finite
// or inverted bounds and an out-of-range default are caller bugs.
func NewFloatSerDes[T Float](min, max, def T) FloatSerDes[T] {
	if !isFinite(min) || !isFinite(max) {
		panics.Panicf("binstore: float bounds must be finite")
	}
	if min > max {
		panics.Panicf("binstore: float bounds inverted")
	}
	if def < min || def > max {
		panics.Panicf("binstore: float default outside bounds")
	}
	return FloatSerDes[T]{min: min, max: max, def: def}
}

// NewDefaultFloatSerDes builds a full-finite-range codec with a zero
// default.
func NewDefaultFloatSerDes[T Float]() FloatSerDes[T] {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return FloatSerDes[T]{min: T(-math.MaxFloat32), max: T(math.MaxFloat32)}
	}
	maxF64 := math.MaxFloat64
	return FloatSerDes[T]{min: T(-maxF64), max: T(maxF64)}
}

func isFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (sd FloatSerDes[T]) Serialize(value T) ([]byte, bool) {
	if value < sd.min || value > sd.max {
		return nil, false
	}
	if unsafe.Sizeof(value) == 4 {
		return putHostInt(uint64(math.Float32bits(float32(value))), 4), true
	}
	return putHostInt(math.Float64bits(float64(value)), 8), true
}

func (sd FloatSerDes[T]) Deserialize(data []byte) (T, bool) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(data) != size {
		return zero, false
	}
	var value T
	if size == 4 {
		value = T(math.Float32frombits(uint32(readHostInt(data))))
	} else {
		value = T(math.Float64frombits(readHostInt(data)))
	}
	if value < sd.min || value > sd.max {
		return zero, false
	}
	return value, true
}

func (sd FloatSerDes[T]) Reset() []byte {
	data, ok := sd.Serialize(sd.def)
	if !ok {
		panics.Panicf("binstore: float default must serialize")
	}
	return data
}

// BoolSerDes is the boolean codec: one byte, nonzero means true.
type BoolSerDes struct {
	def bool
}

// NewBoolSerDes builds a boolean codec with the given default.
func NewBoolSerDes(def bool) BoolSerDes {
	return BoolSerDes{def: def}
}

func (sd BoolSerDes) Serialize(value bool) ([]byte, bool) {
	if value {
		return []byte{1}, true
	}
	return []byte{0}, true
}

func (sd BoolSerDes) Deserialize(data []byte) (bool, bool) {
	if len(data) != 1 {
		return false, false
	}
	return data[0] != 0, true
}

func (sd BoolSerDes) Reset() []byte {
	data, _ := sd.Serialize(sd.def)
	return data
}

// StringSerDes is the UTF-8 string codec: an 8-byte host-order length
// header followed by exactly that many UTF-8 bytes.
type StringSerDes struct {
	def string
}

// NewStringSerDes builds a string codec. An invalid-UTF-8 default is a
// caller bug.
func NewStringSerDes(def string) StringSerDes {
	if !utf8.ValidString(def) {
		panics.Panicf("binstore: string default must be valid utf-8")
	}
	return StringSerDes{def: def}
}

func (sd StringSerDes) Serialize(value string) ([]byte, bool) {
	if !utf8.ValidString(value) {
		return nil, false
	}
	data := make([]byte, format.U64Size+len(value))
	format.PutU64(data, 0, uint64(len(value)))
	copy(data[format.U64Size:], value)
	return data, true
}

func (sd StringSerDes) Deserialize(data []byte) (string, bool) {
	if len(data) < format.U64Size {
		return "", false
	}
	length := format.ReadU64(data, 0)
	if uint64(len(data)) != format.U64Size+length {
		return "", false
	}
	value := string(data[format.U64Size:])
	if !utf8.ValidString(value) {
		return "", false
	}
	return value, true
}

func (sd StringSerDes) Reset() []byte {
	data, ok := sd.Serialize(sd.def)
	if !ok {
		panics.Panicf("binstore: string default must serialize")
	}
	return data
}
