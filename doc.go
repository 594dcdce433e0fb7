// Package toparena implements a chunked bump allocator with a growable,
// temporarily mutable top allocation.
//
// # Overview
//
// An Arena hands out one allocation at a time: the top. While it is held
// the top behaves like a slice that can be appended to, rewritten,
// reordered and shrunk. Freezing the top commits it as an immutable
// region whose address never changes for the rest of the arena's life,
// and the next top is appended directly after it.
//
// This suits building many variable-length values (keys, encoded
// records, strings) whose final size is unknown until they are done,
// without a separate scratch buffer and copy per value.
//
// # Basic Usage
//
//	a := toparena.New[byte]()
//	defer a.Release()
//
//	t, err := a.Top()
//	if err != nil {
//		return err
//	}
//	defer t.Discard() // no-op once frozen
//
//	t.Extend([]byte("hello, ")...)
//	t.Extend([]byte("world")...)
//	slices.Reverse(t.Slice())
//	hello := t.Freeze()
//
//	fmt.Println(a.DataSize()) // 12
//
// # Memory Layout
//
// The arena owns a list of fixed chunks (DefaultChunkSize elements each).
// A chunk is never resized, moved or freed on its own, which is what keeps
// frozen regions in place. When the top outgrows its chunk, only the top's
// own unfrozen elements are copied into a new chunk of at least twice the
// required size; the remainder of the old chunk is abandoned.
//
// # Exclusivity
//
// At most one Top is outstanding per arena. A second call to Top fails
// fast with ErrAllocatorBusy. Freeze and Discard revoke the handle; using
// it afterwards panics with ErrHandleConsumed.
//
// # Thread Safety
//
// Arena is not goroutine-safe. Use one arena per goroutine, or SafeArena,
// which runs each top/mutate/freeze sequence under a mutex:
//
//	s := toparena.NewSafeArena[byte]()
//	f, err := s.Build(func(t *toparena.Top[byte]) error {
//		t.Extend(payload...)
//		return nil
//	})
//
// Frozen views may be read from any goroutine.
//
// # Memory Sources
//
// Chunks come from the Go heap by default. WithMmap backs them with
// anonymous memory mappings instead, keeping large arenas out of the
// garbage collector's heap. Mapped memory is not scanned by the collector,
// so element types that contain pointers keep their chunks on the heap
// regardless. Frozen views of mapped chunks must not be touched after
// Release.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Frozen: %d of %d elements\n", m.DataSize, m.Capacity)
//	fmt.Printf("Relocations: %d\n", m.Relocations)
//
// Package arenaprom exports the same snapshot to Prometheus.
package toparena
