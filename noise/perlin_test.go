package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/veldt-dev/veldt/common"
)

func TestPerlin2DDeterminism(t *testing.T) {
	a := NewSource(WithSeed(2024))
	b := NewSource(WithSeed(2024))

	for i := 0; i < 500; i++ {
		pos := mgl32.Vec2{float32(i) * 0.173, float32(i) * -0.091}
		va := Perlin2D(a, pos, common.Lerp)
		vb := Perlin2D(b, pos, common.Lerp)
		if va != vb {
			t.Fatalf("identical sources disagree at %v: %v vs %v", pos, va, vb)
		}
	}
}

func TestPerlin2DLatticeZeros(t *testing.T) {
	src := NewSource(WithSeed(5))

	interpolators := []struct {
		name string
		fn   Interpolator
	}{
		{name: "lerp", fn: common.Lerp},
		{name: "smoothstep", fn: common.Smoothstep},
		{name: "smootherstep", fn: common.Smootherstep},
	}

	for _, interp := range interpolators {
		t.Run(interp.name, func(t *testing.T) {
			for x := float32(-3); x <= 3; x++ {
				for y := float32(-3); y <= 3; y++ {
					v := Perlin2D(src, mgl32.Vec2{x, y}, interp.fn)
					if math.Abs(float64(v)) > 1e-5 {
						t.Errorf("value at lattice point (%v, %v) = %v, want 0", x, y, v)
					}
				}
			}
		})
	}
}

func TestPerlin2DContinuity(t *testing.T) {
	src := NewSource(WithSeed(31337))

	const epsilon = 1e-3
	// The field's rate of change is bounded by the unit gradients and cell
	// geometry; 0.05 over a 1e-3 step is a generous numerical bound.
	const bound = 0.05

	points := []mgl32.Vec2{
		{0.5, 0.5},
		{0.25, 0.75},
		{10.1, 4.9},
		{-2.5, 3.5},
		// Straddling a cell boundary is the interesting case: the two
		// samples interpolate over different corner sets.
		{0.9995, 0.5},
		{3.0, -1.4995},
	}

	for _, p := range points {
		base := Perlin2D(src, p, common.Smoothstep)
		dx := Perlin2D(src, p.Add(mgl32.Vec2{epsilon, 0}), common.Smoothstep)
		dy := Perlin2D(src, p.Add(mgl32.Vec2{0, epsilon}), common.Smoothstep)

		if diff := math.Abs(float64(dx - base)); diff > bound {
			t.Errorf("discontinuity in x at %v: |%v - %v| = %v", p, dx, base, diff)
		}
		if diff := math.Abs(float64(dy - base)); diff > bound {
			t.Errorf("discontinuity in y at %v: |%v - %v| = %v", p, dy, base, diff)
		}
	}
}

func TestPerlin2DBounded(t *testing.T) {
	src := NewSource(WithSeed(8))

	for i := 0; i < 2000; i++ {
		pos := mgl32.Vec2{float32(i) * 0.317, float32(i) * 0.241}
		v := Perlin2D(src, pos, common.Lerp)
		// Unit gradients against offsets of length at most √2 keep the
		// influences, and any convex blend of them, within ±√2.
		if math.Abs(float64(v)) > math.Sqrt2+1e-4 {
			t.Errorf("value at %v = %v, outside expected bound", pos, v)
		}
		if math.IsNaN(float64(v)) {
			t.Fatalf("value at %v is NaN", pos)
		}
	}
}

func TestPerlin2DSeedSensitivity(t *testing.T) {
	a := NewSource(WithSeed(1))
	b := NewSource(WithSeed(2))

	same := 0
	const samples = 200
	for i := 0; i < samples; i++ {
		pos := mgl32.Vec2{float32(i)*0.37 + 0.5, float32(i)*0.53 + 0.5}
		if Perlin2D(a, pos, common.Lerp) == Perlin2D(b, pos, common.Lerp) {
			same++
		}
	}
	if same > samples/10 {
		t.Errorf("different seeds agreed on %d of %d off-lattice samples", same, samples)
	}
}
