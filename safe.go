package toparena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Each Build runs the whole top, mutate, freeze sequence as one critical
// section, so concurrent builders are serialised rather than refused with
// ErrAllocatorBusy.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena.
func NewSafeArena[T any](opts ...Option) *SafeArena[T] {
	return &SafeArena[T]{a: New[T](opts...)}
}

// Build checks out the top allocation, passes it to fn and freezes it if fn
// returns nil. If fn fails or panics the allocation is discarded. fn must
// not freeze or discard the handle itself.
func (s *SafeArena[T]) Build(fn func(t *Top[T]) error) (Frozen[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.a.Top()
	if err != nil {
		return Frozen[T]{}, err
	}
	defer t.Discard()

	if err := fn(t); err != nil {
		return Frozen[T]{}, err
	}
	if t.arena == nil {
		return Frozen[T]{}, ErrHandleConsumed
	}
	return t.Freeze(), nil
}

// Copy thread-safely freezes a copy of items.
func (s *SafeArena[T]) Copy(items []T) (Frozen[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Copy(items)
}

// DataSize returns the number of elements frozen so far.
func (s *SafeArena[T]) DataSize() int {
	return s.a.DataSize()
}

// Metrics returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() Metrics {
	return s.a.Metrics()
}

// Release thread-safely releases all chunks.
func (s *SafeArena[T]) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Release()
}
