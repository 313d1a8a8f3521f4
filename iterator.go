package vbuf

import (
	"errors"
	"fmt"
	"log/slog"
)

// Iterator errors.
var (
	// ErrAttributeNotFound is returned in strict mode when a bulk operation
	// names an attribute the format does not declare.
	ErrAttributeNotFound = errors.New("vbuf: attribute not found")

	// ErrIteratorEnded is returned, or raised by accessors, when an iterator
	// is used after End.
	ErrIteratorEnded = errors.New("vbuf: iterator has ended")

	// ErrShortBuffer is returned when a read destination cannot hold every
	// vertex of the attribute.
	ErrShortBuffer = errors.New("vbuf: destination too short")
)

// Iterator walks a locked vertex buffer one vertex at a time.
//
// NewIterator locks the buffer and End unlocks it; in between the iterator
// is the only writer of the buffer bytes. All accessors advance together,
// so between two calls to Next every accessor addresses the same vertex.
//
// An Iterator is not safe for concurrent use.
//
// Example:
//
//	it, err := vbuf.NewIterator(vb)
//	if err != nil {
//	    return err
//	}
//	pos, col := it.Element("POSITION"), it.Element("COLOR")
//	for ; !it.Done(); it.Next() {
//	    pos.Set3(x, y, z)
//	    col.Set4(255, 0, 0, 255)
//	}
//	return it.End()
type Iterator struct {
	vb          VertexBuffer
	format      *VertexFormat
	numVertices int

	// vertexFormatSize is the per-vertex byte size cached from the format.
	vertexFormatSize int

	accessors []*Accessor
	element   map[string]*Accessor

	vertex int
	ended  bool
	opts   iteratorOptions
	log    *slog.Logger
}

// NewIterator locks vb and builds one accessor per element of its format,
// in format order.
//
// It returns the lock error when the buffer cannot be locked, and unlocks
// the buffer again when an element does not fit in it. It panics with
// ErrMalformedStride when an element stride is not a whole number of
// components; the buffer is unlocked before the panic propagates.
func NewIterator(vb VertexBuffer, opts ...IteratorOption) (it *Iterator, err error) {
	var o iteratorOptions
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	buf, err := vb.Lock()
	if err != nil {
		return nil, fmt.Errorf("vbuf: lock vertex buffer: %w", err)
	}

	locked := true
	defer func() {
		if locked {
			if uerr := vb.Unlock(); uerr != nil {
				log.Warn("vbuf: unlock after failed iterator setup", "error", uerr)
			}
		}
	}()

	format := vb.Format()
	it = &Iterator{
		vb:               vb,
		format:           format,
		numVertices:      vb.NumVertices(),
		vertexFormatSize: format.Size,
		accessors:        make([]*Accessor, 0, len(format.Elements)),
		element:          make(map[string]*Accessor, len(format.Elements)),
		opts:             o,
		log:              log,
	}

	for _, e := range format.Elements {
		a, err := newAccessor(buf, e, format)
		if err != nil {
			return nil, err
		}
		it.accessors = append(it.accessors, a)
		it.element[e.Name] = a
		log.Debug("vbuf: accessor",
			"name", e.Name,
			"type", e.Type,
			"components", e.NumComponents,
			"offset", e.Offset,
			"strideInElements", a.stride,
			"len", a.Len())
	}

	locked = false
	log.Debug("vbuf: locked vertex buffer",
		"bytes", len(buf),
		"vertices", it.numVertices,
		"interleaved", format.Interleaved)
	return it, nil
}

// Edit locks vb, passes an iterator over it to fn and ends the iterator on
// every exit path, including a panic inside fn. The error of fn takes
// precedence over the unlock error.
func Edit(vb VertexBuffer, fn func(it *Iterator) error, opts ...IteratorOption) (err error) {
	it, err := NewIterator(vb, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if it.ended {
			return
		}
		if endErr := it.End(); err == nil {
			err = endErr
		}
	}()
	return fn(it)
}

// Element returns the accessor for the named attribute, or nil when the
// format has no such attribute or the iterator has ended.
func (it *Iterator) Element(name string) *Accessor {
	if it.ended {
		return nil
	}
	return it.element[name]
}

// Lookup returns the accessor for the named attribute and whether it exists.
func (it *Iterator) Lookup(name string) (*Accessor, bool) {
	a := it.Element(name)
	return a, a != nil
}

// Accessors returns the accessors in format order.
func (it *Iterator) Accessors() []*Accessor {
	if it.ended {
		return nil
	}
	return it.accessors
}

// Format returns the format of the locked buffer.
func (it *Iterator) Format() *VertexFormat { return it.format }

// VertexSize returns the per-vertex byte size of the format.
func (it *Iterator) VertexSize() int { return it.vertexFormatSize }

// NumVertices returns the number of vertices in the locked buffer.
func (it *Iterator) NumVertices() int { return it.numVertices }

// Vertex returns the index of the vertex the accessors currently address.
func (it *Iterator) Vertex() int { return it.vertex }

// Done reports whether the cursor has moved past the last vertex.
func (it *Iterator) Done() bool { return it.vertex >= it.numVertices }

// Next moves every accessor to the next vertex.
func (it *Iterator) Next() { it.Advance(1) }

// Advance moves every accessor forward by count vertices.
//
// Cursors are not checked against the vertex count unless the iterator was
// created with WithStrictBounds; reading or writing an accessor past the
// end panics on the view bounds. Advance panics with ErrIteratorEnded after
// End.
func (it *Iterator) Advance(count int) {
	if it.ended {
		panic(ErrIteratorEnded)
	}
	if it.opts.strictBounds {
		target := min(max(it.vertex+count, 0), it.numVertices)
		if target != it.vertex+count {
			it.log.Warn("vbuf: advance clamped to buffer bounds",
				"vertex", it.vertex,
				"count", count,
				"vertices", it.numVertices)
		}
		count = target - it.vertex
	}
	for _, a := range it.accessors {
		a.advance(count)
	}
	it.vertex += count
}

// End unlocks the buffer. Accessors obtained from the iterator panic with
// ErrIteratorEnded if used afterwards. End returns ErrIteratorEnded when
// called more than once.
func (it *Iterator) End() error {
	if it.ended {
		return ErrIteratorEnded
	}
	it.ended = true
	for _, a := range it.accessors {
		a.release()
	}
	if err := it.vb.Unlock(); err != nil {
		return fmt.Errorf("vbuf: unlock vertex buffer: %w", err)
	}
	it.log.Debug("vbuf: unlocked vertex buffer", "vertex", it.vertex)
	return nil
}

// WriteData copies numVertices values of the named attribute from data.
// See the package-level WriteData for the copy rules.
func (it *Iterator) WriteData(name string, data []float64, numVertices int) error {
	return WriteData(it, name, data, numVertices)
}

// ReadData copies every vertex of the named attribute into data and
// returns the number of vertices read. See the package-level ReadData.
func (it *Iterator) ReadData(name string, data []float64) (int, error) {
	return ReadData(it, name, data)
}

// lookupBulk resolves the accessor for a bulk operation. A nil accessor
// with a nil error means the lenient no-op path.
func (it *Iterator) lookupBulk(op, name string) (*Accessor, error) {
	if it.ended {
		return nil, ErrIteratorEnded
	}
	a, ok := it.element[name]
	if ok {
		return a, nil
	}
	if it.opts.strictNames {
		return nil, fmt.Errorf("%w: %s %q", ErrAttributeNotFound, op, name)
	}
	it.log.Debug("vbuf: unknown attribute ignored", "op", op, "name", name)
	return nil, nil
}
