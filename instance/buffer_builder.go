package instance

import (
	"github.com/veldt-dev/veldt/common"
	"github.com/veldt-dev/veldt/transform"
)

// BufferBuilderOption is a functional option for configuring a buffer.
// Use the With* functions to create options.
type BufferBuilderOption func(b *buffer)

// WithLabel sets the buffer's identifier, used to prefix error messages.
//
// Parameters:
//   - label: the identifier text
//
// Returns:
//   - BufferBuilderOption: option function to apply
func WithLabel(label string) BufferBuilderOption {
	return func(b *buffer) {
		b.label = common.Coalesce(label, b.label)
	}
}

// WithTransforms seeds the buffer with initial instance transforms.
// The slice is copied; the caller keeps ownership of its argument.
//
// Parameters:
//   - transforms: the initial transforms
//
// Returns:
//   - BufferBuilderOption: option function to apply
func WithTransforms(transforms []transform.Transform) BufferBuilderOption {
	return func(b *buffer) {
		b.transforms = append(b.transforms[:0], transforms...)
	}
}
