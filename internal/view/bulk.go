package view

import (
	"encoding/binary"
	"math"
)

// Number is the set of Go element types that bulk copies accept.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int | ~uint | ~int64 | ~uint64 | ~float32 | ~float64
}

// Encode stores src into dst starting at component at.
//
// When the element type of src matches the view's kind exactly the copy
// runs without conversion: 8-bit views take a single byte copy, wider views
// a tight encode loop. Any other pairing converts element by element with
// Store semantics.
func Encode[T Number](dst View, at int, src []T) {
	if len(src) == 0 {
		return
	}
	switch d := dst.(type) {
	case Uint8View:
		if s, ok := any(src).([]uint8); ok {
			copy(d[at:at+len(s)], s)
			return
		}
	case Int8View:
		if s, ok := any(src).([]int8); ok {
			w := d[at : at+len(s)]
			for i, x := range s {
				w[i] = byte(x)
			}
			return
		}
	case Uint16View:
		if s, ok := any(src).([]uint16); ok {
			w := d[2*at : 2*(at+len(s))]
			for i, x := range s {
				binary.LittleEndian.PutUint16(w[2*i:], x)
			}
			return
		}
	case Int16View:
		if s, ok := any(src).([]int16); ok {
			w := d[2*at : 2*(at+len(s))]
			for i, x := range s {
				binary.LittleEndian.PutUint16(w[2*i:], uint16(x))
			}
			return
		}
	case Uint32View:
		if s, ok := any(src).([]uint32); ok {
			w := d[4*at : 4*(at+len(s))]
			for i, x := range s {
				binary.LittleEndian.PutUint32(w[4*i:], x)
			}
			return
		}
	case Int32View:
		if s, ok := any(src).([]int32); ok {
			w := d[4*at : 4*(at+len(s))]
			for i, x := range s {
				binary.LittleEndian.PutUint32(w[4*i:], uint32(x))
			}
			return
		}
	case Float32View:
		if s, ok := any(src).([]float32); ok {
			w := d[4*at : 4*(at+len(s))]
			for i, x := range s {
				binary.LittleEndian.PutUint32(w[4*i:], math.Float32bits(x))
			}
			return
		}
	}

	// Bounds-check the whole destination range once before writing so a
	// short view never ends up partially written.
	_ = dst.Load(at + len(src) - 1)
	for i, x := range src {
		dst.Store(at+i, float64(x))
	}
}

// Decode loads len(dst) components from src starting at component at.
func Decode[T Number](src View, at int, dst []T) {
	if len(dst) == 0 {
		return
	}
	switch s := src.(type) {
	case Uint8View:
		if d, ok := any(dst).([]uint8); ok {
			copy(d, s[at:at+len(d)])
			return
		}
	case Float32View:
		if d, ok := any(dst).([]float32); ok {
			r := s[4*at : 4*(at+len(d))]
			for i := range d {
				d[i] = math.Float32frombits(binary.LittleEndian.Uint32(r[4*i:]))
			}
			return
		}
	}

	_ = src.Load(at + len(dst) - 1)
	for i := range dst {
		dst[i] = Convert[T](src.Load(at + i))
	}
}

// Convert narrows a loaded component to T. Integer targets truncate toward
// zero and saturate at the int64 range; NaN and infinities become 0.
func Convert[T Number](x float64) T {
	if isFloat[T]() {
		return T(x)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	var n int64
	switch x = math.Trunc(x); {
	case x >= math.MaxInt64:
		n = math.MaxInt64
	case x <= math.MinInt64:
		n = math.MinInt64
	default:
		n = int64(x)
	}
	return T(n)
}

func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}
