//go:build !unix

package toparena

// MmapSource falls back to heap memory on platforms without mmap.
type MmapSource struct {
	HeapSource
}
