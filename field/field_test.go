package field

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/veldt-dev/veldt/common"
	"github.com/veldt-dev/veldt/noise"
)

func seeded(seed uint32, options ...FieldBuilderOption) Field {
	options = append([]FieldBuilderOption{
		WithSource(noise.NewSource(noise.WithSeed(seed))),
	}, options...)
	return NewField(options...)
}

func TestGenerateDeterminism(t *testing.T) {
	a := seeded(42, WithWidth(32), WithHeight(24), WithOctaves(3))
	b := seeded(42, WithWidth(32), WithHeight(24), WithOctaves(3))

	ha := a.Generate()
	hb := b.Generate()
	if len(ha) != 32*24 {
		t.Fatalf("len = %d, want %d", len(ha), 32*24)
	}
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("identically configured fields disagree at cell %d: %v vs %v", i, ha[i], hb[i])
		}
	}

	// Repeated generation of the same field is also stable.
	again := a.Generate()
	for i := range ha {
		if ha[i] != again[i] {
			t.Fatalf("repeated Generate disagrees at cell %d", i)
		}
	}
}

func TestGenerateMatchesSample(t *testing.T) {
	f := seeded(7, WithWidth(16), WithHeight(16), WithOctaves(2), WithWorkers(3))

	heights := f.Generate()
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if got, want := heights[y*f.Width()+x], f.Sample(float32(x), float32(y)); got != want {
				t.Fatalf("cell (%d, %d) = %v, want Sample value %v", x, y, got, want)
			}
		}
	}
}

func TestWorkerCountDoesNotChangeOutput(t *testing.T) {
	serial := seeded(99, WithWidth(20), WithHeight(33), WithWorkers(1))
	parallel := seeded(99, WithWidth(20), WithHeight(33), WithWorkers(8))

	hs := serial.Generate()
	hp := parallel.Generate()
	for i := range hs {
		if hs[i] != hp[i] {
			t.Fatalf("worker count changed output at cell %d: %v vs %v", i, hs[i], hp[i])
		}
	}
}

func TestOctavesAddDetail(t *testing.T) {
	single := seeded(5, WithOctaves(1))
	layered := seeded(5, WithOctaves(4))

	differs := false
	for i := 0; i < 100 && !differs; i++ {
		x, y := float32(i)*0.73+0.5, float32(i)*0.37+0.5
		if single.Sample(x, y) != layered.Sample(x, y) {
			differs = true
		}
	}
	if !differs {
		t.Error("adding octaves never changed any sample")
	}
}

func TestSeedChangesOutput(t *testing.T) {
	a := seeded(1, WithWidth(16), WithHeight(16))
	b := seeded(2, WithWidth(16), WithHeight(16))

	ha := a.Generate()
	hb := b.Generate()
	same := 0
	for i := range ha {
		if ha[i] == hb[i] {
			same++
		}
	}
	// Lattice cells are zero for every seed, so only compare the rest
	// loosely: the two fields must not be identical.
	if same == len(ha) {
		t.Error("different seeds produced identical fields")
	}
}

func TestImage(t *testing.T) {
	f := seeded(42, WithWidth(30), WithHeight(20), WithInterpolator(common.Lerp))

	img := f.Image()
	bounds := img.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Fatalf("image bounds = %v, want 30x20", bounds)
	}

	// Normalization stretches the field to the full 8-bit range: both
	// extremes must be present.
	var sawBlack, sawWhite bool
	for _, p := range img.Pix {
		if p == 0 {
			sawBlack = true
		}
		if p == 255 {
			sawWhite = true
		}
	}
	if !sawBlack || !sawWhite {
		t.Errorf("normalized image missing extremes: black=%v white=%v", sawBlack, sawWhite)
	}
}

func TestTransformsLayOutTerrainGrid(t *testing.T) {
	f := seeded(11, WithWidth(8), WithHeight(6))

	transforms := f.Transforms()
	if len(transforms) != 8*6 {
		t.Fatalf("len = %d, want %d", len(transforms), 8*6)
	}

	heights := f.Generate()
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			tr := transforms[y*8+x]
			if tr.Translation.X() != float32(x) || tr.Translation.Z() != float32(y) {
				t.Fatalf("cell (%d, %d) translated to (%v, %v)", x, y, tr.Translation.X(), tr.Translation.Z())
			}
			if tr.Translation.Y() != heights[y*8+x] {
				t.Fatalf("cell (%d, %d) height = %v, want %v", x, y, tr.Translation.Y(), heights[y*8+x])
			}
			if tr.Scale != (mgl32.Vec3{1, 1, 1}) {
				t.Fatalf("cell (%d, %d) scale = %v, want unit", x, y, tr.Scale)
			}
		}
	}
}

func TestDefaults(t *testing.T) {
	f := NewField()
	if f.Width() != 64 || f.Height() != 64 {
		t.Errorf("default size = %dx%d, want 64x64", f.Width(), f.Height())
	}
}
