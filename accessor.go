package vbuf

import (
	"fmt"

	"github.com/gogpu/vbuf/internal/view"
)

// ComponentCount is the number of components of a vertex element.
type ComponentCount int

// Supported component counts.
const (
	One ComponentCount = 1 + iota
	Two
	Three
	Four
)

// arity holds the operations specialized for one component count. The
// table is indexed once when an Accessor is built so the hot per-vertex
// paths never loop or branch on the component count.
type arity struct {
	set          func(v view.View, at int, vals []float64)
	getToArray   func(v view.View, at int, out []float64, outIndex int)
	setFromArray func(v view.View, at int, in []float64, inIndex int)
}

var arities = [...]arity{
	One:   {set: set1, getToArray: getToArray1, setFromArray: setFromArray1},
	Two:   {set: set2, getToArray: getToArray2, setFromArray: setFromArray2},
	Three: {set: set3, getToArray: getToArray3, setFromArray: setFromArray3},
	Four:  {set: set4, getToArray: getToArray4, setFromArray: setFromArray4},
}

// Accessor reads and writes one vertex element inside a locked buffer.
//
// The cursor is kept in components of the element's type, not bytes, and
// moves by StrideInElements per vertex. Accessors are created by an
// Iterator and advance only through it, so all accessors of an iterator
// always address the same vertex.
type Accessor struct {
	element VertexElement
	array   view.View
	index   int
	stride  int
	count   ComponentCount
	ops     arity
}

// newAccessor builds the typed view for element e of format f over buf.
//
// It panics with ErrMalformedStride when the element stride is not a whole
// number of components: such a format cannot describe real vertex data.
func newAccessor(buf []byte, e VertexElement, f *VertexFormat) (*Accessor, error) {
	width := e.Type.Size()
	if width == 0 {
		return nil, fmt.Errorf("%w: element %q has invalid type %v", ErrInvalidFormat, e.Name, e.Type)
	}
	if e.NumComponents < 1 || e.NumComponents > 4 {
		return nil, fmt.Errorf("%w: element %q has %d components", ErrInvalidFormat, e.Name, e.NumComponents)
	}
	if e.Stride <= 0 || e.Stride%width != 0 {
		panic(fmt.Errorf("%w: element %q stride %d, component size %d", ErrMalformedStride, e.Name, e.Stride, width))
	}
	stride := e.Stride / width

	// Interleaved views run to the end of the buffer. Packed views are
	// bounded to the element's own region so an overlong index can never
	// reach the next element.
	count := -1
	if !f.Interleaved {
		count = 0
		if f.VertexCount > 0 {
			count = (f.VertexCount-1)*stride + e.NumComponents
		}
	}
	offset := e.Offset
	if f.VertexCount == 0 {
		// No vertex to address: the offset may lie past an empty buffer.
		buf, offset, count = nil, 0, 0
	}
	array, err := view.New(e.Type.kind(), buf, offset, count)
	if err != nil {
		return nil, fmt.Errorf("vbuf: element %q: %w", e.Name, err)
	}

	n := ComponentCount(e.NumComponents)
	return &Accessor{
		element: e,
		array:   array,
		stride:  stride,
		count:   n,
		ops:     arities[n],
	}, nil
}

// Element returns the vertex element the accessor is bound to.
func (a *Accessor) Element() VertexElement { return a.element }

// Name returns the element name.
func (a *Accessor) Name() string { return a.element.Name }

// Type returns the component type.
func (a *Accessor) Type() DataType { return a.element.Type }

// NumComponents returns the number of components per vertex.
func (a *Accessor) NumComponents() int { return int(a.count) }

// Index returns the cursor position in components.
func (a *Accessor) Index() int { return a.index }

// StrideInElements returns how many components separate the same
// component of consecutive vertices.
func (a *Accessor) StrideInElements() int { return a.stride }

// Len returns the number of components covered by the accessor's view.
func (a *Accessor) Len() int { return a.array.Len() }

// Get returns component c of the current vertex. c must be in
// [0, NumComponents).
func (a *Accessor) Get(c int) float64 {
	return a.array.Load(a.index + c)
}

// Set writes up to NumComponents values to the current vertex. Components
// without a value keep their previous content; extra values are ignored.
func (a *Accessor) Set(vals ...float64) {
	a.ops.set(a.array, a.index, vals)
}

// Set1 writes the first component of the current vertex.
func (a *Accessor) Set1(x float64) {
	a.array.Store(a.index, x)
}

// Set2 writes the first two components of the current vertex. Components
// the element does not have are skipped.
func (a *Accessor) Set2(x, y float64) {
	a.array.Store(a.index, x)
	a.store(1, y)
}

// Set3 writes the first three components of the current vertex. Components
// the element does not have are skipped.
func (a *Accessor) Set3(x, y, z float64) {
	a.array.Store(a.index, x)
	a.store(1, y)
	a.store(2, z)
}

// Set4 writes four components of the current vertex. Components the element
// does not have are skipped.
func (a *Accessor) Set4(x, y, z, w float64) {
	if a.count == Four {
		i := a.index
		a.array.Store(i, x)
		a.array.Store(i+1, y)
		a.array.Store(i+2, z)
		a.array.Store(i+3, w)
		return
	}
	a.array.Store(a.index, x)
	a.store(1, y)
	a.store(2, z)
}

// store writes component c of the current vertex if the element has it.
func (a *Accessor) store(c int, x float64) {
	if c < int(a.count) {
		a.array.Store(a.index+c, x)
	}
}

// load returns component c of the current vertex, or 0 if the element does
// not have it.
func (a *Accessor) load(c int) float64 {
	if c < int(a.count) {
		return a.array.Load(a.index + c)
	}
	return 0
}

// GetToArray copies the NumComponents components found at absolute view
// position elementOffset into out[outIndex:]. It ignores the cursor.
func (a *Accessor) GetToArray(elementOffset int, out []float64, outIndex int) {
	a.ops.getToArray(a.array, elementOffset, out, outIndex)
}

// SetFromArray copies NumComponents values from in[inputIndex:] to absolute
// view position elementIndex. It ignores the cursor.
func (a *Accessor) SetFromArray(elementIndex int, in []float64, inputIndex int) {
	a.ops.setFromArray(a.array, elementIndex, in, inputIndex)
}

// contiguous reports whether the element's values are stored back to back,
// which lets packed bulk copies run as a single pass.
func (a *Accessor) contiguous() bool {
	return a.stride == int(a.count)
}

func (a *Accessor) advance(vertices int) {
	a.index += vertices * a.stride
}

// release detaches the accessor from the buffer once its iterator ended.
func (a *Accessor) release() {
	a.array = endedView{}
}

// endedView replaces the view of a released accessor so any later access
// fails loudly instead of touching bytes the iterator no longer owns.
type endedView struct{}

func (endedView) Kind() view.Kind    { return view.Invalid }
func (endedView) Len() int           { return 0 }
func (endedView) Bytes() []byte      { return nil }
func (endedView) Load(int) float64   { panic(ErrIteratorEnded) }
func (endedView) Store(int, float64) { panic(ErrIteratorEnded) }

func set1(v view.View, at int, s []float64) {
	if len(s) > 0 {
		v.Store(at, s[0])
	}
}

func set2(v view.View, at int, s []float64) {
	if len(s) >= 2 {
		v.Store(at, s[0])
		v.Store(at+1, s[1])
		return
	}
	set1(v, at, s)
}

func set3(v view.View, at int, s []float64) {
	if len(s) >= 3 {
		v.Store(at, s[0])
		v.Store(at+1, s[1])
		v.Store(at+2, s[2])
		return
	}
	set2(v, at, s)
}

func set4(v view.View, at int, s []float64) {
	if len(s) >= 4 {
		v.Store(at, s[0])
		v.Store(at+1, s[1])
		v.Store(at+2, s[2])
		v.Store(at+3, s[3])
		return
	}
	set3(v, at, s)
}

func getToArray1(v view.View, at int, out []float64, o int) {
	out[o] = v.Load(at)
}

func getToArray2(v view.View, at int, out []float64, o int) {
	out[o] = v.Load(at)
	out[o+1] = v.Load(at + 1)
}

func getToArray3(v view.View, at int, out []float64, o int) {
	out[o] = v.Load(at)
	out[o+1] = v.Load(at + 1)
	out[o+2] = v.Load(at + 2)
}

func getToArray4(v view.View, at int, out []float64, o int) {
	out[o] = v.Load(at)
	out[o+1] = v.Load(at + 1)
	out[o+2] = v.Load(at + 2)
	out[o+3] = v.Load(at + 3)
}

func setFromArray1(v view.View, at int, in []float64, i int) {
	v.Store(at, in[i])
}

func setFromArray2(v view.View, at int, in []float64, i int) {
	v.Store(at, in[i])
	v.Store(at+1, in[i+1])
}

func setFromArray3(v view.View, at int, in []float64, i int) {
	v.Store(at, in[i])
	v.Store(at+1, in[i+1])
	v.Store(at+2, in[i+2])
}

func setFromArray4(v view.View, at int, in []float64, i int) {
	v.Store(at, in[i])
	v.Store(at+1, in[i+1])
	v.Store(at+2, in[i+2])
	v.Store(at+3, in[i+3])
}
