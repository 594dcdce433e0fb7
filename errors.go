package toparena

import "errors"

var (
	// ErrAllocatorBusy is returned by Top while another top handle is
	// outstanding. Freeze or Discard the existing handle and retry.
	ErrAllocatorBusy = errors.New("toparena: allocator busy")
	// ErrOutOfBounds is returned by ExtendFromWithin when the requested
	// range is not within the live region.
	ErrOutOfBounds = errors.New("toparena: range out of bounds")
	// ErrEmptyPop is returned by Pop on an empty top handle.
	ErrEmptyPop = errors.New("toparena: pop from empty top")
	// ErrOutOfMemory reports that a chunk could not be obtained.
	ErrOutOfMemory = errors.New("toparena: out of memory")
	// ErrReleased is returned by operations on a released arena.
	ErrReleased = errors.New("toparena: arena released")
	// ErrHandleConsumed is the panic value for use of a top handle after
	// Freeze or Discard.
	ErrHandleConsumed = errors.New("toparena: top handle already frozen or discarded")
)
