// Package vbuf provides typed access to vertex attribute data packed in a
// raw byte buffer destined for a graphics device.
//
// # Overview
//
// A VertexFormat describes the attributes of a vertex (position, normal,
// color, texture coordinates, ...) and how they are laid out:
//   - Interleaved: all attributes of one vertex are contiguous and vertices
//     follow back to back.
//   - Packed: each attribute's values are contiguous across all vertices and
//     attributes occupy separate regions.
//
// An Iterator locks a VertexBuffer and exposes one Accessor per attribute.
// Accessors read and write components at the right byte offset and stride,
// so callers never compute offsets by hand.
//
// # Quick Start
//
//	format, _ := vbuf.NewFormat(3, false,
//	    vbuf.Attribute{Name: "POSITION", NumComponents: 3, Type: vbuf.Float32},
//	    vbuf.Attribute{Name: "COLOR", NumComponents: 4, Type: vbuf.Uint8, Normalize: true},
//	)
//	vb, _ := vbuf.NewBuffer(format)
//
//	err := vbuf.Edit(vb, func(it *vbuf.Iterator) error {
//	    return it.WriteData("POSITION", []float64{-0.9, -0.9, 0, 0.9, -0.9, 0, 0, 0.9, 0}, 3)
//	})
//
//	data, _ := vb.Bytes() // upload to the device
//
// # Bulk copies
//
// WriteData and ReadData copy a whole attribute between the buffer and a
// flat array with NumComponents entries per vertex. The same call works for
// both layouts: interleaved formats are walked vertex by vertex, packed
// formats are copied in a single pass over the attribute's region. The
// generic forms accept any numeric slice and take a conversion-free fast
// path when the slice type matches the attribute type.
//
// # Device layouts
//
// VertexFormat.BufferLayouts exports the format as gputypes vertex buffer
// layouts for a WebGPU render pipeline.
//
// # Logging
//
// vbuf is silent by default. Use SetLogger or WithLogger to receive
// diagnostics through log/slog.
package vbuf
