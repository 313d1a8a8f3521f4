package view

import (
	"encoding/binary"
	"math"
)

// Int8View is a view of signed 8-bit components.
type Int8View []byte

func (v Int8View) Kind() Kind             { return Int8 }
func (v Int8View) Len() int               { return len(v) }
func (v Int8View) Bytes() []byte          { return v }
func (v Int8View) At(i int) int8          { return int8(v[i]) }
func (v Int8View) SetAt(i int, x int8)    { v[i] = byte(x) }
func (v Int8View) Load(i int) float64     { return float64(int8(v[i])) }
func (v Int8View) Store(i int, x float64) { v[i] = byte(int8(wrap(x))) }

// Uint8View is a view of unsigned 8-bit components.
type Uint8View []byte

func (v Uint8View) Kind() Kind             { return Uint8 }
func (v Uint8View) Len() int               { return len(v) }
func (v Uint8View) Bytes() []byte          { return v }
func (v Uint8View) At(i int) uint8         { return v[i] }
func (v Uint8View) SetAt(i int, x uint8)   { v[i] = x }
func (v Uint8View) Load(i int) float64     { return float64(v[i]) }
func (v Uint8View) Store(i int, x float64) { v[i] = uint8(wrap(x)) }

// Int16View is a view of little-endian signed 16-bit components.
type Int16View []byte

func (v Int16View) Kind() Kind    { return Int16 }
func (v Int16View) Len() int      { return len(v) / 2 }
func (v Int16View) Bytes() []byte { return v }

func (v Int16View) At(i int) int16 {
	return int16(binary.LittleEndian.Uint16(v[2*i:]))
}

func (v Int16View) SetAt(i int, x int16) {
	binary.LittleEndian.PutUint16(v[2*i:], uint16(x))
}

func (v Int16View) Load(i int) float64     { return float64(v.At(i)) }
func (v Int16View) Store(i int, x float64) { v.SetAt(i, int16(wrap(x))) }

// Uint16View is a view of little-endian unsigned 16-bit components.
type Uint16View []byte

func (v Uint16View) Kind() Kind    { return Uint16 }
func (v Uint16View) Len() int      { return len(v) / 2 }
func (v Uint16View) Bytes() []byte { return v }

func (v Uint16View) At(i int) uint16 {
	return binary.LittleEndian.Uint16(v[2*i:])
}

func (v Uint16View) SetAt(i int, x uint16) {
	binary.LittleEndian.PutUint16(v[2*i:], x)
}

func (v Uint16View) Load(i int) float64     { return float64(v.At(i)) }
func (v Uint16View) Store(i int, x float64) { v.SetAt(i, uint16(wrap(x))) }

// Int32View is a view of little-endian signed 32-bit components.
type Int32View []byte

func (v Int32View) Kind() Kind    { return Int32 }
func (v Int32View) Len() int      { return len(v) / 4 }
func (v Int32View) Bytes() []byte { return v }

func (v Int32View) At(i int) int32 {
	return int32(binary.LittleEndian.Uint32(v[4*i:]))
}

func (v Int32View) SetAt(i int, x int32) {
	binary.LittleEndian.PutUint32(v[4*i:], uint32(x))
}

func (v Int32View) Load(i int) float64     { return float64(v.At(i)) }
func (v Int32View) Store(i int, x float64) { v.SetAt(i, int32(wrap(x))) }

// Uint32View is a view of little-endian unsigned 32-bit components.
type Uint32View []byte

func (v Uint32View) Kind() Kind    { return Uint32 }
func (v Uint32View) Len() int      { return len(v) / 4 }
func (v Uint32View) Bytes() []byte { return v }

func (v Uint32View) At(i int) uint32 {
	return binary.LittleEndian.Uint32(v[4*i:])
}

func (v Uint32View) SetAt(i int, x uint32) {
	binary.LittleEndian.PutUint32(v[4*i:], x)
}

func (v Uint32View) Load(i int) float64     { return float64(v.At(i)) }
func (v Uint32View) Store(i int, x float64) { v.SetAt(i, uint32(wrap(x))) }

// Float32View is a view of little-endian IEEE 754 float32 components.
type Float32View []byte

func (v Float32View) Kind() Kind    { return Float32 }
func (v Float32View) Len() int      { return len(v) / 4 }
func (v Float32View) Bytes() []byte { return v }

func (v Float32View) At(i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(v[4*i:]))
}

func (v Float32View) SetAt(i int, x float32) {
	binary.LittleEndian.PutUint32(v[4*i:], math.Float32bits(x))
}

func (v Float32View) Load(i int) float64     { return float64(v.At(i)) }
func (v Float32View) Store(i int, x float64) { v.SetAt(i, float32(x)) }
