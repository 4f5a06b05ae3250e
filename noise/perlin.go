package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Interpolator blends between a and b by weight. It must satisfy
// f(a, b, 0) == a and f(a, b, 1) == b or the sampled field will tear at
// cell boundaries. common.Lerp, common.Smoothstep and common.Smootherstep
// all qualify; the choice controls the smoothness (C0, C1, C2) of the
// resulting field.
type Interpolator func(a, b, weight float32) float32

// Perlin2D returns the value of pos on a 2D gradient noise field driven by
// src. For each corner of the unit grid cell containing pos a unit gradient
// vector is derived from the source, dotted with the offset from that corner
// to pos, and the four influences are interpolated along x then y using the
// fractional position as weight.
//
// The result is deterministic for a fixed source seed and position, exactly
// zero at integer lattice points, and continuous everywhere. The output
// stays roughly within [-1, 1] for typical positions but the exact range is
// not part of the contract.
//
// Parameters:
//   - src: the noise source supplying corner gradients
//   - pos: the sample position
//   - interpolate: the blending function, typically one of the common package interpolators
//
// Returns:
//   - float32: the field value at pos
func Perlin2D(src Source, pos mgl32.Vec2, interpolate Interpolator) float32 {
	floor := mgl32.Vec2{
		float32(math.Floor(float64(pos.X()))),
		float32(math.Floor(float64(pos.Y()))),
	}

	corners := [4]mgl32.Vec2{
		floor,
		floor.Add(mgl32.Vec2{1, 0}),
		floor.Add(mgl32.Vec2{0, 1}),
		floor.Add(mgl32.Vec2{1, 1}),
	}

	var influence [4]float32
	for i, corner := range corners {
		influence[i] = gradient(src, corner).Dot(corner.Sub(pos))
	}

	offset := pos.Sub(floor)
	return interpolate(
		interpolate(influence[0], influence[1], offset.X()),
		interpolate(influence[2], influence[3], offset.X()),
		offset.Y(),
	)
}

// gradient derives the unit gradient vector for an integer grid corner.
// Two chained hashes of the corner coordinates become the vector
// components; shared corners between neighboring cells hash identically,
// which is what keeps the field continuous across cell boundaries.
func gradient(src Source, corner mgl32.Vec2) mgl32.Vec2 {
	cx := uint32(int32(corner.X()))
	cy := uint32(int32(corner.Y()))

	hx := src.Get(src.Get(cx) ^ cy)
	hy := src.Get(hx)

	v := mgl32.Vec2{toSigned(hx), toSigned(hy)}
	if length := v.Len(); length > 1e-6 {
		return v.Mul(1 / length)
	}
	// Both components hashed to ~zero; any fixed unit vector keeps the
	// sampler total.
	return mgl32.Vec2{1, 0}
}

// toSigned maps the full 32-bit hash space onto [-1, 1].
func toSigned(h uint32) float32 {
	return float32(h)/float32(math.MaxUint32)*2 - 1
}
