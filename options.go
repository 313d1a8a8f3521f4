package vbuf

import (
	"log/slog"

	"github.com/gogpu/gputypes"
)

// IteratorOption configures an Iterator during creation.
//
// Example:
//
//	it, err := vbuf.NewIterator(vb, vbuf.WithStrictNames())
type IteratorOption func(*iteratorOptions)

// iteratorOptions holds optional configuration for Iterator creation.
type iteratorOptions struct {
	logger       *slog.Logger
	strictNames  bool
	strictBounds bool
}

// WithLogger routes the iterator's diagnostics to l instead of the package
// logger.
func WithLogger(l *slog.Logger) IteratorOption {
	return func(o *iteratorOptions) {
		o.logger = l
	}
}

// WithStrictNames makes bulk operations on an attribute name missing from
// the format return ErrAttributeNotFound. Without it they are silent no-ops.
func WithStrictNames() IteratorOption {
	return func(o *iteratorOptions) {
		o.strictNames = true
	}
}

// WithStrictBounds stops Advance at the one-past-the-end vertex and logs a
// warning when a caller tries to move further. Without it cursors move
// unchecked and accessing a vertex past the end panics on the underlying
// slice bounds.
func WithStrictBounds() IteratorOption {
	return func(o *iteratorOptions) {
		o.strictBounds = true
	}
}

// BufferOption configures a Buffer during creation.
type BufferOption func(*bufferOptions)

// bufferOptions holds optional configuration for Buffer creation.
type bufferOptions struct {
	label string
	usage gputypes.BufferUsage
	data  []byte
}

// defaultBufferOptions returns the default buffer options: a vertex buffer
// that can be the destination of a queue write.
func defaultBufferOptions() bufferOptions {
	return bufferOptions{
		usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}
}

// WithLabel sets the debug label of the buffer.
func WithLabel(label string) BufferOption {
	return func(o *bufferOptions) {
		o.label = label
	}
}

// WithUsage overrides the usage flags reported for the buffer.
func WithUsage(usage gputypes.BufferUsage) BufferOption {
	return func(o *bufferOptions) {
		o.usage = usage
	}
}

// WithData initializes the buffer with a copy of data. The length of data
// must match the format's ByteSize.
func WithData(data []byte) BufferOption {
	return func(o *bufferOptions) {
		o.data = data
	}
}
