package vbuf

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
)

// Buffer errors.
var (
	// ErrBufferLocked is returned when locking a buffer that is already
	// locked, or reading the contents of a locked buffer.
	ErrBufferLocked = errors.New("vbuf: buffer is already locked")

	// ErrBufferNotLocked is returned when unlocking a buffer that is not locked.
	ErrBufferNotLocked = errors.New("vbuf: buffer is not locked")

	// ErrBufferDestroyed is returned when operating on a destroyed buffer.
	ErrBufferDestroyed = errors.New("vbuf: buffer has been destroyed")

	// ErrDataSizeMismatch is returned when initial data does not match the
	// size the format requires.
	ErrDataSizeMismatch = errors.New("vbuf: data size does not match format")
)

// VertexBuffer is a byte buffer with a vertex format and exclusive
// lock/unlock access. Lock hands out the backing bytes for writing; Unlock
// releases them so the content can be uploaded.
type VertexBuffer interface {
	// Lock acquires exclusive access to the backing bytes.
	Lock() ([]byte, error)

	// Unlock releases the bytes returned by Lock.
	Unlock() error

	// Format returns the layout of the buffer.
	Format() *VertexFormat

	// NumVertices returns the number of vertices the buffer holds.
	NumVertices() int
}

// BufferLockState is the lock state of a Buffer.
type BufferLockState int

const (
	// BufferUnlocked means the buffer content may be read for upload.
	BufferUnlocked BufferLockState = iota
	// BufferLocked means an iterator holds the bytes.
	BufferLocked
)

// String returns the string representation of BufferLockState.
func (s BufferLockState) String() string {
	switch s {
	case BufferUnlocked:
		return "Unlocked"
	case BufferLocked:
		return "Locked"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Buffer is a CPU-side VertexBuffer.
//
// Buffer is safe for concurrent use; the lock is enforced at runtime so a
// second Lock fails until the holder calls Unlock. Every Unlock bumps
// Version, which uploaders can compare to skip clean buffers.
type Buffer struct {
	mu sync.Mutex

	format *VertexFormat
	label  string
	usage  gputypes.BufferUsage

	data      []byte
	size      uint64
	state     BufferLockState
	version   uint64
	destroyed bool
}

// NewBuffer allocates a zeroed buffer large enough for every vertex of format.
func NewBuffer(format *VertexFormat, opts ...BufferOption) (*Buffer, error) {
	if format == nil {
		return nil, fmt.Errorf("%w: nil format", ErrInvalidFormat)
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	o := defaultBufferOptions()
	for _, opt := range opts {
		opt(&o)
	}

	size := format.ByteSize()
	data := make([]byte, size)
	if o.data != nil {
		if len(o.data) != size {
			return nil, fmt.Errorf("%w: got %d bytes, format needs %d", ErrDataSizeMismatch, len(o.data), size)
		}
		copy(data, o.data)
	}

	return &Buffer{
		format: format,
		label:  o.label,
		usage:  o.usage,
		data:   data,
		size:   uint64(size),
	}, nil
}

// Lock acquires exclusive access to the buffer bytes.
func (b *Buffer) Lock() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.destroyed {
		return nil, ErrBufferDestroyed
	}
	if b.state == BufferLocked {
		return nil, fmt.Errorf("%w: %q", ErrBufferLocked, b.label)
	}
	b.state = BufferLocked
	return b.data, nil
}

// Unlock releases the bytes returned by Lock.
func (b *Buffer) Unlock() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.destroyed {
		return ErrBufferDestroyed
	}
	if b.state != BufferLocked {
		return fmt.Errorf("%w: %q", ErrBufferNotLocked, b.label)
	}
	b.state = BufferUnlocked
	b.version++
	return nil
}

// Bytes returns the buffer content for upload. The slice aliases the buffer
// and must not be retained across a later Lock.
func (b *Buffer) Bytes() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.destroyed {
		return nil, ErrBufferDestroyed
	}
	if b.state == BufferLocked {
		return nil, fmt.Errorf("%w: %q", ErrBufferLocked, b.label)
	}
	return b.data, nil
}

// Destroy releases the backing bytes. Further operations fail with
// ErrBufferDestroyed.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.destroyed = true
	b.data = nil
}

// Format returns the layout of the buffer.
func (b *Buffer) Format() *VertexFormat { return b.format }

// NumVertices returns the number of vertices the buffer holds.
func (b *Buffer) NumVertices() int { return b.format.VertexCount }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// Usage returns the buffer usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Size returns the buffer size in bytes.
func (b *Buffer) Size() uint64 { return b.size }

// LockState returns the current lock state.
func (b *Buffer) LockState() BufferLockState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Version returns the number of completed Lock/Unlock cycles.
func (b *Buffer) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}
