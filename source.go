package toparena

// Source obtains backing memory for arena chunks.
//
// Blocks handed out by Acquire must stay at a fixed address until they are
// given back through Release. The arena releases every block at once, when
// the arena itself is released.
type Source interface {
	Acquire(size int) ([]byte, error)
	Release(b []byte) error
}

// Adviser is implemented by sources that accept access hints.
// off and n select the bytes of block that are about to be written.
type Adviser interface {
	WillNeed(block []byte, off, n int) error
}

// HeapSource allocates chunk memory with make.
type HeapSource struct{}

// Acquire returns a zeroed block of size bytes.
func (HeapSource) Acquire(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Release is a no-op; the block is reclaimed by the garbage collector.
func (HeapSource) Release([]byte) error {
	return nil
}
