package toparena

import "sync/atomic"

// atomicStats lets Metrics be read while the owner keeps allocating.
type atomicStats struct {
	dataSize      atomic.Int64
	chunks        atomic.Int64
	capacity      atomic.Int64
	reservedBytes atomic.Int64
	wasted        atomic.Int64
	relocations   atomic.Int64
	freezes       atomic.Int64
	discards      atomic.Int64
}

// reset drops the chunk-backed gauges. Lifetime counters are kept.
func (s *atomicStats) reset() {
	s.chunks.Store(0)
	s.capacity.Store(0)
	s.reservedBytes.Store(0)
	s.wasted.Store(0)
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena[T]) NumChunks() int {
	return int(a.stats.chunks.Load())
}

// Capacity returns the total number of elements across all chunks.
func (a *Arena[T]) Capacity() int {
	return int(a.stats.capacity.Load())
}

// Utilization returns the ratio of frozen elements to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.DataSize()) / float64(capacity)
}

// ChunkSize returns the regular chunk size in elements.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Dangerous reports whether more than half of the WithMaxBytes budget is
// already reserved. Always false for an unlimited arena.
func (a *Arena[T]) Dangerous() bool {
	return a.maxBytes > 0 && int(a.stats.reservedBytes.Load()) > a.maxBytes/2
}

// Metrics returns a snapshot of arena statistics. It is safe to call
// concurrently with the arena's owner.
func (a *Arena[T]) Metrics() Metrics {
	capacity := a.Capacity()
	dataSize := a.DataSize()
	var util float64
	if capacity > 0 {
		util = float64(dataSize) / float64(capacity)
	}
	return Metrics{
		DataSize:      dataSize,
		Capacity:      capacity,
		NumChunks:     a.NumChunks(),
		ChunkSize:     a.chunkSize,
		ReservedBytes: int(a.stats.reservedBytes.Load()),
		Wasted:        int(a.stats.wasted.Load()),
		Relocations:   int(a.stats.relocations.Load()),
		Freezes:       int(a.stats.freezes.Load()),
		Discards:      int(a.stats.discards.Load()),
		Utilization:   util,
	}
}

// Metrics contains statistical information about an arena.
// Sizes are in elements unless named otherwise.
type Metrics struct {
	DataSize      int     // Elements frozen
	Capacity      int     // Total chunk capacity
	NumChunks     int     // Number of chunks
	ChunkSize     int     // Regular chunk size
	ReservedBytes int     // Bytes obtained for chunks
	Wasted        int     // Chunk tails abandoned by relocation
	Relocations   int     // Times the top allocation moved to a new chunk
	Freezes       int     // Top handles frozen
	Discards      int     // Top handles discarded
	Utilization   float64 // Ratio of DataSize to Capacity (0.0-1.0)
}
