package vbuf

import (
	"errors"
	"fmt"
)

// Format errors.
var (
	// ErrInvalidFormat is returned when a vertex format fails validation.
	ErrInvalidFormat = errors.New("vbuf: invalid vertex format")

	// ErrMalformedStride reports an element whose stride is not a whole
	// multiple of its component width.
	ErrMalformedStride = errors.New("vbuf: stride is not a multiple of the component size")
)

// attributeAlignment is the byte alignment WebGPU requires for vertex
// attribute offsets and strides.
const attributeAlignment = 4

// VertexElement describes one attribute inside a vertex buffer.
type VertexElement struct {
	// Name identifies the attribute, e.g. "POSITION" or "COLOR".
	Name string

	// NumComponents is the number of components per vertex, 1 to 4.
	NumComponents int

	// Type is the numeric type of each component.
	Type DataType

	// Normalize marks integer data the device should map to [0,1] or
	// [-1,1]. Accessors never apply it implicitly.
	Normalize bool

	// Offset is the byte offset of the first component, measured from the
	// start of the buffer.
	Offset int

	// Stride is the byte distance between this element's values in
	// consecutive vertices.
	Stride int

	// Size is the byte size of one value: NumComponents * Type.Size().
	Size int

	// ShaderLocation is the @location exported in BufferLayouts.
	ShaderLocation uint32
}

// VertexFormat is the ordered layout of the elements in a vertex buffer.
type VertexFormat struct {
	// Elements in declaration order.
	Elements []VertexElement

	// Interleaved is true when all elements of one vertex are stored
	// together, false when each element occupies its own packed region.
	Interleaved bool

	// VertexCount is the number of vertices the buffer holds.
	VertexCount int

	// Size is the byte size of one vertex: the interleaved stride, or the
	// sum of the element sizes for packed formats.
	Size int
}

// Attribute declares an element for NewFormat. Offsets and strides are
// derived from the declaration order.
type Attribute struct {
	Name          string
	NumComponents int
	Type          DataType
	Normalize     bool
}

// NewFormat builds and validates a format holding vertexCount vertices.
//
// Interleaved formats place each attribute after the previous one inside a
// vertex, aligned to 4 bytes, and give every element the per-vertex size as
// its stride. Packed formats give each attribute its own region of
// vertexCount values, regions aligned to 4 bytes, with the element size as
// stride.
func NewFormat(vertexCount int, interleaved bool, attrs ...Attribute) (*VertexFormat, error) {
	f := &VertexFormat{
		Elements:    make([]VertexElement, len(attrs)),
		Interleaved: interleaved,
		VertexCount: vertexCount,
	}

	offset := 0
	for i, a := range attrs {
		size := a.NumComponents * a.Type.Size()
		f.Elements[i] = VertexElement{
			Name:           a.Name,
			NumComponents:  a.NumComponents,
			Type:           a.Type,
			Normalize:      a.Normalize,
			Offset:         offset,
			Stride:         size,
			Size:           size,
			ShaderLocation: uint32(i),
		}
		f.Size += size
		if interleaved {
			offset = alignUp(offset+size, attributeAlignment)
		} else {
			offset = alignUp(offset+size*max(vertexCount, 0), attributeAlignment)
		}
	}

	if interleaved {
		f.Size = offset
		for i := range f.Elements {
			f.Elements[i].Stride = offset
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the structural invariants accessors rely on.
func (f *VertexFormat) Validate() error {
	if len(f.Elements) == 0 {
		return fmt.Errorf("%w: no elements", ErrInvalidFormat)
	}
	if f.VertexCount < 0 {
		return fmt.Errorf("%w: negative vertex count %d", ErrInvalidFormat, f.VertexCount)
	}

	seen := make(map[string]bool, len(f.Elements))
	for i := range f.Elements {
		e := &f.Elements[i]
		if e.Name == "" {
			return fmt.Errorf("%w: element %d has no name", ErrInvalidFormat, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate element %q", ErrInvalidFormat, e.Name)
		}
		seen[e.Name] = true

		if !e.Type.Valid() {
			return fmt.Errorf("%w: element %q has invalid type %v", ErrInvalidFormat, e.Name, e.Type)
		}
		if e.NumComponents < 1 || e.NumComponents > 4 {
			return fmt.Errorf("%w: element %q has %d components, want 1 to 4",
				ErrInvalidFormat, e.Name, e.NumComponents)
		}
		if want := e.NumComponents * e.Type.Size(); e.Size != want {
			return fmt.Errorf("%w: element %q size %d, want %d", ErrInvalidFormat, e.Name, e.Size, want)
		}
		if e.Offset < 0 {
			return fmt.Errorf("%w: element %q has negative offset %d", ErrInvalidFormat, e.Name, e.Offset)
		}
		if e.Stride < e.Size {
			return fmt.Errorf("%w: element %q stride %d smaller than its size %d",
				ErrInvalidFormat, e.Name, e.Stride, e.Size)
		}
		if e.Stride%e.Type.Size() != 0 {
			return fmt.Errorf("%w: element %q stride %d, component size %d",
				ErrMalformedStride, e.Name, e.Stride, e.Type.Size())
		}
		if f.Interleaved && e.Offset+e.Size > e.Stride {
			return fmt.Errorf("%w: element %q at offset %d overruns vertex stride %d",
				ErrInvalidFormat, e.Name, e.Offset, e.Stride)
		}
	}
	return nil
}

// Element returns the element with the given name.
func (f *VertexFormat) Element(name string) (VertexElement, bool) {
	for _, e := range f.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return VertexElement{}, false
}

// ByteSize returns the number of bytes a buffer needs to hold every vertex
// of the format, rounded up to 4 bytes.
func (f *VertexFormat) ByteSize() int {
	if f.VertexCount <= 0 {
		return 0
	}
	end := 0
	if f.Interleaved {
		end = f.Size * f.VertexCount
	}
	for _, e := range f.Elements {
		end = max(end, e.Offset+(f.VertexCount-1)*e.Stride+e.Size)
	}
	return alignUp(end, attributeAlignment)
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
