package vbuf

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vbuf/internal/view"
)

// DataType is the numeric type of one component of a vertex element.
type DataType uint8

const (
	// TypeInvalid is the zero DataType and is rejected by format validation.
	TypeInvalid = DataType(view.Invalid)
	// Int8 is a signed 8-bit integer component.
	Int8 = DataType(view.Int8)
	// Uint8 is an unsigned 8-bit integer component.
	Uint8 = DataType(view.Uint8)
	// Int16 is a signed 16-bit integer component.
	Int16 = DataType(view.Int16)
	// Uint16 is an unsigned 16-bit integer component.
	Uint16 = DataType(view.Uint16)
	// Int32 is a signed 32-bit integer component.
	Int32 = DataType(view.Int32)
	// Uint32 is an unsigned 32-bit integer component.
	Uint32 = DataType(view.Uint32)
	// Float32 is an IEEE 754 single precision component.
	Float32 = DataType(view.Float32)
)

// Size returns the byte width of one component, or 0 if the type is invalid.
func (t DataType) Size() int { return t.kind().Size() }

// Valid reports whether t is one of the supported component types.
func (t DataType) Valid() bool { return t.Size() != 0 }

// String returns the type name.
func (t DataType) String() string { return t.kind().String() }

func (t DataType) kind() view.Kind { return view.Kind(t) }

// gpuFormats maps (type, normalize) to the WebGPU vertex format for each
// component count. Missing entries have no WebGPU equivalent.
var gpuFormats = map[DataType][2][5]gputypes.VertexFormat{
	Int8: {
		{2: gputypes.VertexFormatSint8x2, 4: gputypes.VertexFormatSint8x4},
		{2: gputypes.VertexFormatSnorm8x2, 4: gputypes.VertexFormatSnorm8x4},
	},
	Uint8: {
		{2: gputypes.VertexFormatUint8x2, 4: gputypes.VertexFormatUint8x4},
		{2: gputypes.VertexFormatUnorm8x2, 4: gputypes.VertexFormatUnorm8x4},
	},
	Int16: {
		{2: gputypes.VertexFormatSint16x2, 4: gputypes.VertexFormatSint16x4},
		{2: gputypes.VertexFormatSnorm16x2, 4: gputypes.VertexFormatSnorm16x4},
	},
	Uint16: {
		{2: gputypes.VertexFormatUint16x2, 4: gputypes.VertexFormatUint16x4},
		{2: gputypes.VertexFormatUnorm16x2, 4: gputypes.VertexFormatUnorm16x4},
	},
	Int32: {
		{
			1: gputypes.VertexFormatSint32, 2: gputypes.VertexFormatSint32x2,
			3: gputypes.VertexFormatSint32x3, 4: gputypes.VertexFormatSint32x4,
		},
	},
	Uint32: {
		{
			1: gputypes.VertexFormatUint32, 2: gputypes.VertexFormatUint32x2,
			3: gputypes.VertexFormatUint32x3, 4: gputypes.VertexFormatUint32x4,
		},
	},
	Float32: {
		{
			1: gputypes.VertexFormatFloat32, 2: gputypes.VertexFormatFloat32x2,
			3: gputypes.VertexFormatFloat32x3, 4: gputypes.VertexFormatFloat32x4,
		},
	},
}

// GPUFormat returns the WebGPU vertex format matching the element's type,
// component count and normalize flag. It returns
// gputypes.VertexFormatUndefined for combinations WebGPU does not define,
// such as three 8-bit components or normalized 32-bit integers. The
// normalize flag is ignored for Float32 elements.
func (e VertexElement) GPUFormat() gputypes.VertexFormat {
	table, ok := gpuFormats[e.Type]
	if !ok || e.NumComponents < 1 || e.NumComponents > 4 {
		return gputypes.VertexFormatUndefined
	}
	norm := 0
	// Normalization is meaningless for float components.
	if e.Normalize && e.Type != Float32 {
		norm = 1
	}
	return table[norm][e.NumComponents]
}
