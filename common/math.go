package common

import (
	"unsafe"
)

// Lerp linearly interpolates between a and b.
// A weight of 0 returns a, a weight of 1 returns b. Weights outside [0, 1]
// extrapolate along the same line.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - weight: interpolation weight
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, weight float32) float32 {
	return (b-a)*weight + a
}

// Smoothstep interpolates between a and b with Hermite easing (3w² − 2w³).
// Matches Lerp at the endpoints but has zero first derivative there, so
// fields sampled with it stay smooth across cell boundaries.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - weight: interpolation weight, expected in [0, 1]
//
// Returns:
//   - float32: the interpolated value
func Smoothstep(a, b, weight float32) float32 {
	return (b-a)*(3.0-weight*2.0)*weight*weight + a
}

// Smootherstep interpolates between a and b with fifth-order easing
// (6w⁵ − 15w⁴ + 10w³). Zero first and second derivatives at the endpoints,
// giving C2 continuity across cell boundaries.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - weight: interpolation weight, expected in [0, 1]
//
// Returns:
//   - float32: the interpolated value
func Smootherstep(a, b, weight float32) float32 {
	return (b-a)*((weight*(weight*6.0-15.0)+10.0)*weight*weight*weight) + a
}

// SliceToBytes converts any slice to a byte slice for buffer uploads and
// binary export. Uses unsafe pointer operations to create a view into the
// original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
