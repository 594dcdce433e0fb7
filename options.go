package toparena

import "log/slog"

type config struct {
	chunkSize int
	source    Source
	maxBytes  int
	logger    *slog.Logger
}

// Option configures an Arena.
type Option func(*config)

// WithChunkSize sets the number of elements in a regular chunk.
// If n <= 0, DefaultChunkSize is used.
func WithChunkSize(n int) Option {
	return func(c *config) {
		c.chunkSize = n
	}
}

// WithSource makes the arena obtain chunk memory from s instead of the Go
// heap. The garbage collector does not scan source memory, so element
// types that contain pointers ignore s and keep their chunks on the heap.
func WithSource(s Source) Option {
	return func(c *config) {
		c.source = s
	}
}

// WithMmap backs chunks with anonymous memory mappings.
// See WithSource for element types that contain pointers.
func WithMmap() Option {
	return WithSource(MmapSource{})
}

// WithMaxBytes caps the total chunk memory the arena may reserve.
// Growth past the cap fails with ErrOutOfMemory. Zero means unlimited.
func WithMaxBytes(n int) Option {
	return func(c *config) {
		c.maxBytes = n
	}
}

// WithLogger sets the logger used for chunk lifecycle events.
// They are emitted at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
