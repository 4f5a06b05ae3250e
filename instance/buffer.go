// package instance tracks per-model instance transforms and keeps a
// caller-owned destination buffer in sync with them. It decides, per flush,
// whether the destination must be reallocated (the instance count changed)
// or can be patched in place (only values changed).
package instance

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/veldt-dev/veldt/common"
	"github.com/veldt-dev/veldt/transform"
)

// Uploader is the destination a Buffer flushes packed matrices into.
// Implementations typically wrap a GPU vertex buffer: Reallocate creates a
// new buffer sized to the contents, Patch overwrites bytes in the existing
// allocation.
type Uploader interface {
	// Reallocate replaces the destination with a new allocation holding contents.
	//
	// Parameters:
	//   - contents: the packed column-major matrices, 64 bytes per instance
	//
	// Returns:
	//   - error: any allocation failure
	Reallocate(contents []byte) error

	// Patch overwrites bytes of the existing allocation starting at offset.
	// Only called when the allocation is already the right size.
	//
	// Parameters:
	//   - offset: byte offset into the allocation
	//   - contents: the packed column-major matrices to write
	//
	// Returns:
	//   - error: any write failure
	Patch(offset int, contents []byte) error
}

// Buffer owns the CPU-side list of instance transforms for one model and
// tracks whether the destination copy is stale. Mutations mark the buffer
// outdated; Flush reconciles. Thread-safe for concurrent access.
type Buffer interface {
	// Label returns the buffer's identifier, used in error messages.
	Label() string

	// Count returns the number of instances currently tracked.
	Count() int

	// Transform returns the transform at index i.
	//
	// Parameters:
	//   - i: the instance index
	//
	// Returns:
	//   - transform.Transform: the transform at i
	//   - error: if i is out of range
	Transform(i int) (transform.Transform, error)

	// Set replaces the transform at index i and marks the buffer outdated.
	//
	// Parameters:
	//   - i: the instance index
	//   - t: the new transform
	//
	// Returns:
	//   - error: if i is out of range
	Set(i int, t transform.Transform) error

	// Append adds instances to the end of the buffer and marks it outdated.
	//
	// Parameters:
	//   - transforms: the transforms to append
	Append(transforms ...transform.Transform)

	// Remove swap-removes the instance at index i: the last instance takes
	// its slot, so removal is O(1) but does not preserve order.
	//
	// Parameters:
	//   - i: the instance index
	//
	// Returns:
	//   - error: if i is out of range
	Remove(i int) error

	// Outdated reports whether the destination copy is stale. A fresh
	// buffer is outdated until its first Flush.
	Outdated() bool

	// Flush packs every transform into a column-major matrix array and
	// reconciles the destination: if the instance count changed since the
	// last flush the destination is reallocated, otherwise it is patched in
	// place at offset 0. A buffer that is not outdated flushes as a no-op.
	//
	// Parameters:
	//   - dst: the destination to reconcile (must not be nil)
	//
	// Returns:
	//   - error: any failure reported by the destination
	Flush(dst Uploader) error
}

type buffer struct {
	mu         *sync.RWMutex
	label      string
	transforms []transform.Transform
	outdated   bool

	// flushedCount is the instance count the destination was last sized
	// for; -1 until the first flush so it always reallocates.
	flushedCount int
}

// Ensure buffer implements Buffer interface.
var _ Buffer = &buffer{}

// NewBuffer creates a new instance Buffer. A fresh buffer is outdated so
// the first Flush populates the destination even when empty.
//
// Parameters:
//   - options: functional options to further configure the buffer
//
// Returns:
//   - Buffer: the newly created buffer
func NewBuffer(options ...BufferBuilderOption) Buffer {
	b := &buffer{
		mu:           &sync.RWMutex{},
		label:        "instances",
		outdated:     true,
		flushedCount: -1,
	}

	for _, option := range options {
		option(b)
	}

	return b
}

func (b *buffer) Label() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.label
}

func (b *buffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.transforms)
}

func (b *buffer) Transform(i int) (transform.Transform, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.transforms) {
		return transform.Transform{}, fmt.Errorf("%s: index %d out of range [0, %d)", b.label, i, len(b.transforms))
	}
	return b.transforms[i], nil
}

func (b *buffer) Set(i int, t transform.Transform) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.transforms) {
		return fmt.Errorf("%s: index %d out of range [0, %d)", b.label, i, len(b.transforms))
	}
	b.transforms[i] = t
	b.outdated = true
	return nil
}

func (b *buffer) Append(transforms ...transform.Transform) {
	if len(transforms) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transforms = append(b.transforms, transforms...)
	b.outdated = true
}

func (b *buffer) Remove(i int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.transforms) {
		return fmt.Errorf("%s: index %d out of range [0, %d)", b.label, i, len(b.transforms))
	}
	last := len(b.transforms) - 1
	b.transforms[i] = b.transforms[last]
	b.transforms = b.transforms[:last]
	b.outdated = true
	return nil
}

func (b *buffer) Outdated() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.outdated
}

func (b *buffer) Flush(dst Uploader) error {
	if dst == nil {
		return errors.New("instance: Flush requires a non-nil Uploader")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.outdated && len(b.transforms) == b.flushedCount {
		return nil
	}

	matrices := make([]mgl32.Mat4, len(b.transforms))
	for i, t := range b.transforms {
		matrices[i] = t.Matrix()
	}
	contents := common.SliceToBytes(matrices)

	if len(b.transforms) != b.flushedCount {
		if err := dst.Reallocate(contents); err != nil {
			return fmt.Errorf("%s: reallocate failed: %w", b.label, err)
		}
	} else {
		if err := dst.Patch(0, contents); err != nil {
			return fmt.Errorf("%s: patch failed: %w", b.label, err)
		}
	}

	b.flushedCount = len(b.transforms)
	b.outdated = false
	return nil
}
