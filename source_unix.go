//go:build unix

package toparena

import (
	"errors"

	"golang.org/x/sys/unix"
)

// MmapSource maps anonymous private memory for each chunk. Pages are
// committed by the kernel on first touch, so large chunks cost address
// space rather than resident memory until they are written.
type MmapSource struct{}

// Acquire maps size bytes of zeroed read-write memory.
func (MmapSource) Acquire(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, mmapFlags)
}

// Release unmaps a block returned by Acquire.
func (MmapSource) Release(b []byte) error {
	return unix.Munmap(b)
}

// WillNeed asks the kernel to fault in the pages covering block[off:off+n].
func (MmapSource) WillNeed(block []byte, off, n int) error {
	if n <= 0 || off < 0 || off >= len(block) {
		return nil
	}
	end := min(off+n, len(block))

	// madvise wants a page-aligned start; the block itself is page-aligned.
	page := unix.Getpagesize()
	off -= off % page

	err := unix.Madvise(block[off:end], unix.MADV_WILLNEED)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
