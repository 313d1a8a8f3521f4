// Package view provides typed, little-endian views windowed into a shared
// byte slice.
//
// A View is a tagged union over the seven component types a vertex element
// may declare. Each concrete view wraps a byte window and reads or writes
// components in place; no view ever copies the bytes it covers. Views are
// built once by New, keyed on the element's Kind, so callers pay for the
// type selection at construction rather than on every access.
package view

import (
	"fmt"
	"math"
)

// Kind identifies the numeric type of one component.
type Kind uint8

const (
	// Invalid is the zero Kind and never describes real data.
	Invalid Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// Size returns the byte width of one component of this kind, or 0 for an
// unknown kind.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	default:
		return 0
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "Int8"
	case Uint8:
		return "Uint8"
	case Int16:
		return "Int16"
	case Uint16:
		return "Uint16"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Float32:
		return "Float32"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Signed reports whether the kind is a signed integer or float.
func (k Kind) Signed() bool {
	return k == Int8 || k == Int16 || k == Int32 || k == Float32
}

// View is a typed window over a byte slice.
//
// Load and Store exchange components as float64, which represents every
// supported component type exactly. Store follows the declared type: integer
// kinds truncate toward zero and wrap modulo their bit width, Float32 rounds
// to the nearest float32.
type View interface {
	// Kind returns the component type of the view.
	Kind() Kind
	// Len returns the number of whole components the view covers.
	Len() int
	// Load returns component i.
	Load(i int) float64
	// Store writes component i.
	Store(i int, x float64)
	// Bytes returns the byte window backing the view.
	Bytes() []byte
}

// New returns a view of the given kind starting at byteOffset within buf.
//
// A negative count leaves the view unbounded: it covers every whole
// component from byteOffset to the end of buf. A non-negative count bounds
// the view to exactly count components, so indices past the window panic
// instead of reaching neighbouring bytes.
func New(kind Kind, buf []byte, byteOffset, count int) (View, error) {
	size := kind.Size()
	if size == 0 {
		return nil, fmt.Errorf("view: unsupported kind %v", kind)
	}
	if byteOffset < 0 || byteOffset > len(buf) {
		return nil, fmt.Errorf("view: offset %d outside buffer of %d bytes", byteOffset, len(buf))
	}

	end := byteOffset + (len(buf)-byteOffset)/size*size
	if count >= 0 {
		end = byteOffset + count*size
		if end > len(buf) {
			return nil, fmt.Errorf("view: %d %v components at offset %d exceed buffer of %d bytes",
				count, kind, byteOffset, len(buf))
		}
	}
	b := buf[byteOffset:end:end]

	switch kind {
	case Int8:
		return Int8View(b), nil
	case Uint8:
		return Uint8View(b), nil
	case Int16:
		return Int16View(b), nil
	case Uint16:
		return Uint16View(b), nil
	case Int32:
		return Int32View(b), nil
	case Uint32:
		return Uint32View(b), nil
	default:
		return Float32View(b), nil
	}
}

// wrap truncates x toward zero and reduces it into the 32-bit range so the
// narrowing conversions in the integer views wrap like a typed store.
// NaN and infinities store as 0.
func wrap(x float64) int64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	x = math.Trunc(x)
	if x >= 1<<32 || x <= -(1<<32) {
		x = math.Mod(x, 1<<32)
	}
	return int64(x)
}
