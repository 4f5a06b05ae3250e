// package field turns the 2D noise sampler into concrete procedural
// content: fractal heightfields, grayscale noise images, and terrain
// instance grids.
package field

import (
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/veldt-dev/veldt/common"
	"github.com/veldt-dev/veldt/noise"
	"github.com/veldt-dev/veldt/transform"
)

// Field samples a deterministic fractal noise surface over a fixed-size
// grid. Sampling is pure (only the source's stateless Get path is used), so
// all methods are safe to call concurrently and identical configurations
// always produce identical output.
type Field interface {
	// Width returns the grid width in cells.
	Width() int

	// Height returns the grid height in cells.
	Height() int

	// Sample returns the surface value at an arbitrary position by layering
	// octaves of gradient noise: each octave multiplies the frequency by
	// the lacunarity and the amplitude by the persistence.
	//
	// Parameters:
	//   - x: sample position along the first axis
	//   - y: sample position along the second axis
	//
	// Returns:
	//   - float32: the layered surface value
	Sample(x, y float32) float32

	// Generate samples every cell of the grid and returns the values in
	// row-major order (index = y*Width + x). Rows are banded across the
	// field's worker pool.
	//
	// Returns:
	//   - []float32: Width*Height surface values
	Generate() []float32

	// Image renders the grid as an 8-bit grayscale image, normalizing the
	// generated values so the darkest cell maps to 0 and the brightest to
	// 255. A perfectly flat field renders black.
	//
	// Returns:
	//   - *image.Gray: the rendered image, Width x Height pixels
	Image() *image.Gray

	// Transforms lays the grid out as terrain: one translation per cell on
	// the X/Z plane with the sampled value as the Y height, in row-major
	// order matching Generate.
	//
	// Returns:
	//   - []transform.Transform: Width*Height instance transforms
	Transforms() []transform.Transform
}

type field struct {
	src         noise.Source
	width       int
	height      int
	frequency   float32
	octaves     int
	persistence float32
	lacunarity  float32
	amplitude   float32
	interpolate noise.Interpolator
	workers     int

	// pool fans Generate's row bands across reusable goroutines; workers
	// persist across calls, avoiding per-call spawn overhead.
	pool worker.DynamicWorkerPool
}

// Ensure field implements Field interface.
var _ Field = &field{}

// NewField creates a new Field. Without options the field is 64x64, samples
// a single octave at frequency 1/32 with smoothstep interpolation, and is
// driven by a fresh clock-seeded source — pass WithSource(noise.NewSource(
// noise.WithSeed(...))) for reproducible terrain.
//
// Parameters:
//   - options: functional options to further configure the field
//
// Returns:
//   - Field: the newly created field
func NewField(options ...FieldBuilderOption) Field {
	f := &field{
		width:       64,
		height:      64,
		frequency:   1.0 / 32.0,
		octaves:     1,
		persistence: 0.5,
		lacunarity:  2.0,
		amplitude:   1.0,
		interpolate: common.Smoothstep,
		workers:     max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(f)
	}

	if f.src == nil {
		f.src = noise.NewSource()
	}

	// Initialize the pool after options so WithWorkers can override the
	// default. Generate submits at most one task per worker, so the queue
	// can never back up.
	f.pool = worker.NewDynamicWorkerPool(f.workers, 256, 1*time.Second)

	return f
}

func (f *field) Width() int {
	return f.width
}

func (f *field) Height() int {
	return f.height
}

func (f *field) Sample(x, y float32) float32 {
	total := float32(0)
	frequency := f.frequency
	amplitude := f.amplitude
	for octave := 0; octave < f.octaves; octave++ {
		pos := mgl32.Vec2{x * frequency, y * frequency}
		total += noise.Perlin2D(f.src, pos, f.interpolate) * amplitude
		frequency *= f.lacunarity
		amplitude *= f.persistence
	}
	return total
}

func (f *field) Generate() []float32 {
	heights := make([]float32, f.width*f.height)

	// Band the rows across the pool, one task per worker. Sample is pure so
	// the bands share nothing but disjoint slices of the output. A
	// WaitGroup provides the completion barrier since pool.Wait() blocks
	// until workers idle-exit.
	band := (f.height + f.workers - 1) / f.workers

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < f.height; start += band {
		end := min(start+band, f.height)

		wg.Add(1)
		startCap, endCap := start, end
		id := taskID
		taskID++
		f.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for y := startCap; y < endCap; y++ {
					row := heights[y*f.width : (y+1)*f.width]
					for x := range row {
						row[x] = f.Sample(float32(x), float32(y))
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return heights
}

func (f *field) Image() *image.Gray {
	heights := f.Generate()

	lowest, highest := heights[0], heights[0]
	for _, h := range heights[1:] {
		if h < lowest {
			lowest = h
		}
		if h > highest {
			highest = h
		}
	}

	img := image.NewGray(image.Rect(0, 0, f.width, f.height))
	span := highest - lowest
	if span == 0 {
		return img
	}
	for i, h := range heights {
		img.Pix[i] = uint8((h - lowest) / span * 255)
	}
	return img
}

func (f *field) Transforms() []transform.Transform {
	heights := f.Generate()

	transforms := make([]transform.Transform, 0, len(heights))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			transforms = append(transforms, transform.Translation(mgl32.Vec3{
				float32(x),
				heights[y*f.width+x],
				float32(y),
			}))
		}
	}
	return transforms
}
