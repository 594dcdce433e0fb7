package toparena

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"unsafe"
)

// DefaultChunkSize is the default number of elements per chunk (64 Ki).
const DefaultChunkSize = 1 << 16

// chunk is a fixed block of storage. Elements below used are frozen and
// never move; the outstanding top allocation, if it lives here, starts at used.
type chunk[T any] struct {
	buf  []T
	raw  []byte // block from the Source; nil for heap chunks
	used int
}

// Arena is a bump allocator for elements of type T. Not goroutine-safe.
// Use SafeArena for concurrent access.
type Arena[T any] struct {
	chunks    []*chunk[T]
	chunkSize int
	elemSize  int
	pointers  bool
	source    Source
	maxBytes  int
	logger    *slog.Logger

	active   *Top[T]
	released bool

	stats atomicStats
}

// New creates an empty Arena. No memory is obtained until the first Top.
func New[T any](opts ...Option) *Arena[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chunkSize <= 0 {
		cfg.chunkSize = DefaultChunkSize
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	var zero T
	pointers := hasPointers(reflect.TypeFor[T]())
	if pointers && cfg.source != nil {
		cfg.logger.Debug("element type holds pointers, chunks stay on the heap", "type", fmt.Sprintf("%T", zero))
	}
	return &Arena[T]{
		chunkSize: cfg.chunkSize,
		elemSize:  int(unsafe.Sizeof(zero)),
		pointers:  pointers,
		source:    cfg.source,
		maxBytes:  cfg.maxBytes,
		logger:    cfg.logger,
	}
}

// Top checks out the arena's top allocation. The allocation starts empty,
// directly after the most recently frozen region when the current chunk
// still has room.
//
// Only one top handle may be outstanding; Top returns ErrAllocatorBusy
// until it is frozen or discarded.
func (a *Arena[T]) Top() (*Top[T], error) {
	if a.released {
		return nil, ErrReleased
	}
	if a.active != nil {
		return nil, ErrAllocatorBusy
	}

	c := a.current()
	if c == nil || c.used == len(c.buf) {
		var err error
		if c, err = a.newChunk(a.chunkSize); err != nil {
			return nil, fmt.Errorf("top: %w", err)
		}
	}

	t := &Top[T]{arena: a, chunk: c, start: c.used}
	a.active = t
	return t, nil
}

// Copy freezes a copy of items as a new region.
func (a *Arena[T]) Copy(items []T) (Frozen[T], error) {
	t, err := a.Top()
	if err != nil {
		return Frozen[T]{}, err
	}
	if err := t.reserve(len(items)); err != nil {
		t.Discard()
		return Frozen[T]{}, err
	}
	t.Extend(items...)
	return t.Freeze(), nil
}

// DataSize returns the number of elements frozen over the arena's lifetime.
func (a *Arena[T]) DataSize() int {
	return int(a.stats.dataSize.Load())
}

// Busy reports whether a top handle is outstanding.
func (a *Arena[T]) Busy() bool {
	return a.active != nil
}

// Release returns every chunk to its source and makes the arena unusable.
// Frozen views obtained from the arena must not be used afterwards.
func (a *Arena[T]) Release() error {
	if a.released {
		return nil
	}
	if a.active != nil {
		return ErrAllocatorBusy
	}

	var errs []error
	if a.source != nil {
		for i, c := range a.chunks {
			if c.raw == nil {
				continue
			}
			if err := a.source.Release(c.raw); err != nil {
				errs = append(errs, fmt.Errorf("release chunk %d: %w", i, err))
			}
		}
	}
	a.logger.Debug("arena released", "chunks", len(a.chunks), "data_size", a.DataSize())

	a.chunks = nil
	a.released = true
	a.stats.reset()
	return errors.Join(errs...)
}

func (a *Arena[T]) current() *chunk[T] {
	if len(a.chunks) == 0 {
		return nil
	}
	return a.chunks[len(a.chunks)-1]
}

// newChunk appends a chunk of n elements. On failure the arena is unchanged.
func (a *Arena[T]) newChunk(n int) (*chunk[T], error) {
	if a.elemSize > 0 && n > math.MaxInt/a.elemSize {
		return nil, fmt.Errorf("%w: chunk of %d elements overflows", ErrOutOfMemory, n)
	}
	size := n * a.elemSize
	if a.maxBytes > 0 && int(a.stats.reservedBytes.Load())+size > a.maxBytes {
		return nil, fmt.Errorf("%w: chunk of %d bytes exceeds limit of %d", ErrOutOfMemory, size, a.maxBytes)
	}

	c := &chunk[T]{}
	// Source memory is invisible to the garbage collector, so only
	// pointer-free elements may live there.
	if a.source == nil || a.elemSize == 0 || a.pointers {
		c.buf = make([]T, n)
	} else {
		raw, err := a.source.Acquire(size)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		buf, err := typedBlock[T](raw, n)
		if err != nil {
			_ = a.source.Release(raw)
			return nil, err
		}
		c.raw = raw
		c.buf = buf
	}

	a.chunks = append(a.chunks, c)
	a.stats.chunks.Add(1)
	a.stats.capacity.Add(int64(n))
	a.stats.reservedBytes.Add(int64(size))
	a.logger.Debug("chunk acquired", "chunk", len(a.chunks)-1, "elements", n, "bytes", size)
	return c, nil
}

// typedBlock reinterprets a source block as n elements of T.
func typedBlock[T any](raw []byte, n int) ([]T, error) {
	var zero T
	if len(raw) < n*int(unsafe.Sizeof(zero)) {
		return nil, fmt.Errorf("%w: source returned %d bytes, want %d", ErrOutOfMemory, len(raw), n*int(unsafe.Sizeof(zero)))
	}
	p := unsafe.Pointer(unsafe.SliceData(raw))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, fmt.Errorf("%w: source block misaligned for %T", ErrOutOfMemory, zero)
	}
	return unsafe.Slice((*T)(p), n), nil
}

// hasPointers reports whether values of t hold anything the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.String, reflect.Slice:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
