package field

import (
	"github.com/veldt-dev/veldt/noise"
)

// FieldBuilderOption is a functional option for configuring a field.
// Use the With* functions to create options.
type FieldBuilderOption func(f *field)

// WithSource sets the noise source driving the field. Fields built with
// identically seeded sources and identical options produce identical
// output.
//
// Parameters:
//   - src: the noise source
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithSource(src noise.Source) FieldBuilderOption {
	return func(f *field) {
		if src != nil {
			f.src = src
		}
	}
}

// WithWidth sets the grid width in cells. Non-positive values are ignored.
//
// Parameters:
//   - width: grid width in cells
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithWidth(width int) FieldBuilderOption {
	return func(f *field) {
		if width > 0 {
			f.width = width
		}
	}
}

// WithHeight sets the grid height in cells. Non-positive values are ignored.
//
// Parameters:
//   - height: grid height in cells
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithHeight(height int) FieldBuilderOption {
	return func(f *field) {
		if height > 0 {
			f.height = height
		}
	}
}

// WithFrequency sets the base sampling frequency. Lower values stretch
// features over more cells.
//
// Parameters:
//   - frequency: cycles per cell at the first octave
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithFrequency(frequency float32) FieldBuilderOption {
	return func(f *field) {
		if frequency > 0 {
			f.frequency = frequency
		}
	}
}

// WithOctaves sets how many noise layers Sample accumulates.
//
// Parameters:
//   - octaves: layer count, minimum 1
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithOctaves(octaves int) FieldBuilderOption {
	return func(f *field) {
		if octaves > 0 {
			f.octaves = octaves
		}
	}
}

// WithPersistence sets the per-octave amplitude falloff.
//
// Parameters:
//   - persistence: amplitude multiplier applied between octaves
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithPersistence(persistence float32) FieldBuilderOption {
	return func(f *field) {
		if persistence > 0 {
			f.persistence = persistence
		}
	}
}

// WithLacunarity sets the per-octave frequency growth.
//
// Parameters:
//   - lacunarity: frequency multiplier applied between octaves
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithLacunarity(lacunarity float32) FieldBuilderOption {
	return func(f *field) {
		if lacunarity > 0 {
			f.lacunarity = lacunarity
		}
	}
}

// WithAmplitude sets the first octave's amplitude.
//
// Parameters:
//   - amplitude: scale of the first octave's contribution
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithAmplitude(amplitude float32) FieldBuilderOption {
	return func(f *field) {
		if amplitude != 0 {
			f.amplitude = amplitude
		}
	}
}

// WithInterpolator sets the blending function used between noise cell
// corners. Defaults to common.Smoothstep.
//
// Parameters:
//   - interpolate: the blending function
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithInterpolator(interpolate noise.Interpolator) FieldBuilderOption {
	return func(f *field) {
		if interpolate != nil {
			f.interpolate = interpolate
		}
	}
}

// WithWorkers sets the number of pool workers Generate bands rows across.
// Defaults to NumCPU-1, minimum 1.
//
// Parameters:
//   - workers: worker count
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithWorkers(workers int) FieldBuilderOption {
	return func(f *field) {
		if workers > 0 {
			f.workers = workers
		}
	}
}
