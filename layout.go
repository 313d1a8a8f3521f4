package vbuf

import "github.com/gogpu/gputypes"

// BufferLayouts describes the format as WebGPU vertex buffer layouts, ready
// for a render pipeline descriptor.
//
// An interleaved format yields a single layout holding every attribute at
// its in-vertex offset. A packed format yields one layout per element, each
// bound at the byte offset reported by BufferOffsets.
func (f *VertexFormat) BufferLayouts() []gputypes.VertexBufferLayout {
	if f.Interleaved {
		attrs := make([]gputypes.VertexAttribute, len(f.Elements))
		for i, e := range f.Elements {
			attrs[i] = gputypes.VertexAttribute{
				Format:         e.GPUFormat(),
				Offset:         uint64(e.Offset),
				ShaderLocation: e.ShaderLocation,
			}
		}
		return []gputypes.VertexBufferLayout{{
			ArrayStride: uint64(f.Size),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  attrs,
		}}
	}

	layouts := make([]gputypes.VertexBufferLayout, len(f.Elements))
	for i, e := range f.Elements {
		layouts[i] = gputypes.VertexBufferLayout{
			ArrayStride: uint64(e.Stride),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: e.GPUFormat(), Offset: 0, ShaderLocation: e.ShaderLocation},
			},
		}
	}
	return layouts
}

// BufferOffsets returns the byte offset to bind each layout returned by
// BufferLayouts at. Interleaved formats bind their single layout at 0.
func (f *VertexFormat) BufferOffsets() []uint64 {
	if f.Interleaved {
		return []uint64{0}
	}
	offsets := make([]uint64, len(f.Elements))
	for i, e := range f.Elements {
		offsets[i] = uint64(e.Offset)
	}
	return offsets
}
