package vbuf

import (
	"fmt"
	"slices"

	"github.com/gogpu/vbuf/internal/view"
)

// Number is the set of element types bulk copies accept. Values convert to
// the attribute's declared type on write and back to T on read.
type Number interface {
	view.Number
}

// WriteData copies numVertices values of the named attribute from the flat
// array data, NumComponents entries per vertex, starting at vertex 0.
//
// An attribute missing from the format is a no-op returning nil, or
// ErrAttributeNotFound with WithStrictNames. A numVertices larger than the
// buffer is clamped to the buffer's vertex count with a warning, and a data
// slice holding fewer whole vertices than requested writes only those.
//
// Interleaved formats are written vertex by vertex, skipping the other
// attributes' bytes. Packed formats store the needed prefix of data into the
// attribute's region in a single pass, without touching other regions.
func WriteData[T Number](it *Iterator, name string, data []T, numVertices int) error {
	a, err := it.lookupBulk("write", name)
	if a == nil {
		return err
	}

	if numVertices > it.numVertices {
		it.log.Warn("vbuf: write clamped to buffer capacity",
			"name", name,
			"requested", numVertices,
			"vertices", it.numVertices)
		numVertices = it.numVertices
	}
	n := a.NumComponents()
	if avail := len(data) / n; numVertices > avail {
		it.log.Debug("vbuf: write limited by source length",
			"name", name,
			"requested", numVertices,
			"available", avail)
		numVertices = avail
	}
	if numVertices <= 0 {
		return nil
	}

	src := data[:numVertices*n]
	if it.format.Interleaved || !a.contiguous() {
		writeStrided(a, src, numVertices)
		return nil
	}
	view.Encode(a.array, 0, src)
	return nil
}

// ReadData copies every vertex of the named attribute into data and
// returns the number of vertices read.
//
// data must hold at least NumVertices * NumComponents values, otherwise
// ReadData returns ErrShortBuffer and leaves data untouched. An attribute
// missing from the format reads 0 vertices, and returns
// ErrAttributeNotFound with WithStrictNames.
func ReadData[T Number](it *Iterator, name string, data []T) (int, error) {
	a, err := it.lookupBulk("read", name)
	if a == nil {
		return 0, err
	}

	count := it.numVertices
	need := count * a.NumComponents()
	if len(data) < need {
		return 0, fmt.Errorf("%w: %q needs %d values, got %d", ErrShortBuffer, name, need, len(data))
	}
	if count == 0 {
		return 0, nil
	}

	dst := data[:need]
	if it.format.Interleaved || !a.contiguous() {
		readStrided(a, dst, count)
	} else {
		view.Decode(a.array, 0, dst)
	}
	return count, nil
}

// AppendData truncates dst and appends every vertex of the named attribute
// to it, growing it as needed. It returns the extended slice and the number
// of vertices read. dst is returned unchanged when the attribute is missing.
func AppendData[T Number](it *Iterator, name string, dst []T) ([]T, int, error) {
	a, err := it.lookupBulk("read", name)
	if a == nil {
		return dst, 0, err
	}
	need := it.numVertices * a.NumComponents()
	dst = slices.Grow(dst[:0], need)[:need]
	n, err := ReadData(it, name, dst)
	return dst[:n*a.NumComponents()], n, err
}

// writeStrided stores one vertex at a time, walking the destination by the
// accessor stride and the source contiguously.
func writeStrided[T Number](a *Accessor, src []T, numVertices int) {
	n := a.NumComponents()
	index := 0
	if f, ok := any(src).([]float64); ok {
		for i := 0; i < numVertices; i++ {
			a.ops.setFromArray(a.array, index, f, i*n)
			index += a.stride
		}
		return
	}
	for i := 0; i < numVertices; i++ {
		view.Encode(a.array, index, src[i*n:(i+1)*n])
		index += a.stride
	}
}

// readStrided is the inverse of writeStrided.
func readStrided[T Number](a *Accessor, dst []T, count int) {
	n := a.NumComponents()
	offset := 0
	if f, ok := any(dst).([]float64); ok {
		for i := 0; i < count; i++ {
			a.ops.getToArray(a.array, offset, f, i*n)
			offset += a.stride
		}
		return
	}
	for i := 0; i < count; i++ {
		view.Decode(a.array, offset, dst[i*n:(i+1)*n])
		offset += a.stride
	}
}
