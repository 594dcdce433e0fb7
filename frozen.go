package toparena

import (
	"iter"
	"slices"
)

// Frozen is an immutable region committed by Top.Freeze. Its elements keep
// their values and addresses until the arena is released. Frozen values
// are cheap to copy and safe to read from multiple goroutines.
type Frozen[T any] struct {
	s []T
}

// Len returns the number of elements.
func (f Frozen[T]) Len() int { return len(f.s) }

// At returns the element at index i.
func (f Frozen[T]) At(i int) T { return f.s[i] }

// Slice returns the region without copying. The caller must not modify it.
// Its capacity equals its length, so appending to it always copies.
func (f Frozen[T]) Slice() []T { return f.s }

// Clone returns a heap copy of the region.
func (f Frozen[T]) Clone() []T { return slices.Clone(f.s) }

// All iterates over index/element pairs.
func (f Frozen[T]) All() iter.Seq2[int, T] { return slices.All(f.s) }

// Equal reports whether f holds exactly the elements of s.
func Equal[T comparable](f Frozen[T], s []T) bool {
	return slices.Equal(f.s, s)
}
