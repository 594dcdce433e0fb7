package toparena

import (
	"fmt"
	"iter"
	"math"
)

// Top is the arena's single mutable allocation. It grows like a slice
// until Freeze turns it into a Frozen view.
//
// A Top is a capability: Freeze and Discard revoke it, after which every
// method except Discard panics with ErrHandleConsumed. Deferring Discard
// right after Top is the usual way to make sure the arena is returned to
// idle on every path:
//
//	t, err := a.Top()
//	if err != nil {
//		return err
//	}
//	defer t.Discard()
type Top[T any] struct {
	arena *Arena[T]
	chunk *chunk[T]
	start int
	n     int
}

// Len returns the number of live elements.
func (t *Top[T]) Len() int {
	t.check()
	return t.n
}

// Cap returns how many elements fit before the next relocation.
func (t *Top[T]) Cap() int {
	t.check()
	return len(t.chunk.buf) - t.start
}

// Slice returns the live region for in-place mutation. The slice is valid
// until the next call that grows, freezes or discards the handle.
func (t *Top[T]) Slice() []T {
	t.check()
	end := t.start + t.n
	return t.chunk.buf[t.start:end:end]
}

// At returns the element at index i.
func (t *Top[T]) At(i int) T {
	return t.Slice()[i]
}

// Set replaces the element at index i.
func (t *Top[T]) Set(i int, v T) {
	t.Slice()[i] = v
}

// Push appends a single element.
func (t *Top[T]) Push(v T) {
	t.check()
	if t.start+t.n == len(t.chunk.buf) {
		t.mustReserve(1)
	}
	t.chunk.buf[t.start+t.n] = v
	t.n++
}

// Extend appends items. Items may alias the live region.
func (t *Top[T]) Extend(items ...T) {
	t.check()
	t.mustReserve(len(items))
	copy(t.chunk.buf[t.start+t.n:], items)
	t.n += len(items)
}

// ExtendSeq appends every element produced by seq.
func (t *Top[T]) ExtendSeq(seq iter.Seq[T]) {
	t.check()
	for v := range seq {
		t.Push(v)
	}
}

// ExtendFromWithin appends a copy of the live elements in [lo, hi).
// On ErrOutOfBounds the handle is unchanged.
func (t *Top[T]) ExtendFromWithin(lo, hi int) error {
	t.check()
	if lo < 0 || hi < lo || hi > t.n {
		return fmt.Errorf("%w: [%d:%d] with length %d", ErrOutOfBounds, lo, hi, t.n)
	}
	// Relocation carries the source range along, so it is read afterwards.
	t.mustReserve(hi - lo)
	base := t.start
	copy(t.chunk.buf[base+t.n:], t.chunk.buf[base+lo:base+hi])
	t.n += hi - lo
	return nil
}

// Pop removes and returns the last element.
func (t *Top[T]) Pop() (T, error) {
	t.check()
	var zero T
	if t.n == 0 {
		return zero, ErrEmptyPop
	}
	t.n--
	i := t.start + t.n
	v := t.chunk.buf[i]
	t.chunk.buf[i] = zero
	return v, nil
}

// Truncate shortens the live region to n elements. It does nothing if n
// is not less than the current length.
func (t *Top[T]) Truncate(n int) {
	t.check()
	n = max(n, 0)
	if n >= t.n {
		return
	}
	clear(t.chunk.buf[t.start+n : t.start+t.n])
	t.n = n
}

// Reserve makes room for at least additional more elements so that
// appending them does not relocate the live region. Memory-mapped chunks
// are also asked to fault the reserved pages in.
func (t *Top[T]) Reserve(additional int) {
	t.check()
	t.mustReserve(additional)
	t.willNeed(additional)
}

// Freeze commits the live region and returns it as an immutable view.
// The handle is consumed and the arena becomes idle.
func (t *Top[T]) Freeze() Frozen[T] {
	t.check()
	a, c := t.arena, t.chunk
	end := t.start + t.n
	f := Frozen[T]{s: c.buf[t.start:end:end]}

	c.used = end
	a.stats.dataSize.Add(int64(t.n))
	a.stats.freezes.Add(1)
	t.release()
	return f
}

// Discard abandons the handle. Its elements are dropped, DataSize is
// unaffected and the arena becomes idle. Discard on a frozen or discarded
// handle is a no-op.
func (t *Top[T]) Discard() {
	if t.arena == nil {
		return
	}
	clear(t.chunk.buf[t.start : t.start+t.n])
	t.arena.stats.discards.Add(1)
	t.release()
}

func (t *Top[T]) release() {
	t.arena.active = nil
	t.arena = nil
	t.chunk = nil
	t.n = 0
}

func (t *Top[T]) check() {
	if t.arena == nil {
		panic(ErrHandleConsumed)
	}
}

// mustReserve is reserve for callers that cannot report an error.
// Running out of memory while growing is fatal to the operation, but
// leaves the handle and every frozen region untouched.
func (t *Top[T]) mustReserve(additional int) {
	if err := t.reserve(additional); err != nil {
		panic(err)
	}
}

// reserve guarantees room for additional elements after the live region,
// moving the live region to a fresh chunk when its own chunk is too small.
// Only unfrozen elements are ever copied.
func (t *Top[T]) reserve(additional int) error {
	if additional > math.MaxInt/2-t.n {
		return fmt.Errorf("%w: cannot grow top of %d elements by %d", ErrOutOfMemory, t.n, additional)
	}
	need := t.n + additional
	if t.start+need <= len(t.chunk.buf) {
		return nil
	}

	a, old := t.arena, t.chunk
	c, err := a.newChunk(max(a.chunkSize, 2*need))
	if err != nil {
		return fmt.Errorf("grow top to %d elements: %w", need, err)
	}
	copy(c.buf, old.buf[t.start:t.start+t.n])

	a.stats.wasted.Add(int64(len(old.buf) - old.used))
	a.stats.relocations.Add(1)
	a.logger.Debug("top relocated", "from", old.used, "moved", t.n, "capacity", len(c.buf))

	t.chunk = c
	t.start = 0
	return nil
}

func (t *Top[T]) willNeed(additional int) {
	adv, ok := t.arena.source.(Adviser)
	if !ok || t.chunk.raw == nil || additional <= 0 {
		return
	}
	es := t.arena.elemSize
	if err := adv.WillNeed(t.chunk.raw, (t.start+t.n)*es, additional*es); err != nil {
		t.arena.logger.Debug("willneed hint failed", "err", err)
	}
}
