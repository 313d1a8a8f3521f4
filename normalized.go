package vbuf

import (
	"math"

	"github.com/chewxy/math32"
)

// normRange returns the integer magnitude that maps to 1.0 under WebGPU
// unorm/snorm rules, or 0 for float components.
func (t DataType) normRange() float64 {
	switch t {
	case Uint8:
		return math.MaxUint8
	case Int8:
		return math.MaxInt8
	case Uint16:
		return math.MaxUint16
	case Int16:
		return math.MaxInt16
	case Uint32:
		return math.MaxUint32
	case Int32:
		return math.MaxInt32
	default:
		return 0
	}
}

// SetNormalized writes up to NumComponents normalized values to the current
// vertex. Unsigned integer components take values in [0, 1] and signed ones
// values in [-1, 1]; inputs are clamped to that range, scaled to the full
// integer range and rounded. NaN stores 0. Float32 components store the
// value unchanged.
func (a *Accessor) SetNormalized(vals ...float32) {
	scale := a.element.Type.normRange()
	lo := float32(0)
	if a.element.Type.kind().Signed() {
		lo = -1
	}
	for c := 0; c < len(vals) && c < int(a.count); c++ {
		v := vals[c]
		if scale == 0 {
			a.array.Store(a.index+c, float64(v))
			continue
		}
		if math32.IsNaN(v) {
			v = 0
		}
		v = math32.Max(lo, math32.Min(1, v))
		a.array.Store(a.index+c, math.Round(float64(v)*scale))
	}
}

// Normalized returns component c of the current vertex mapped back to
// [0, 1] or [-1, 1]. Signed values below -1, such as -128 for Int8, clamp
// to -1. Float32 components return the stored value.
func (a *Accessor) Normalized(c int) float32 {
	x := a.array.Load(a.index + c)
	scale := a.element.Type.normRange()
	if scale == 0 {
		return float32(x)
	}
	return math32.Max(-1, float32(x/scale))
}
