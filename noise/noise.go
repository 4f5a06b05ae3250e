// package noise provides deterministic, seed-parameterized pseudorandom
// numbers and a 2D gradient (Perlin) noise sampler built on top of them.
// The same seed always reproduces the same outputs, which is what makes
// generated terrain and textures repeatable across runs.
package noise

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidRange is returned by the range helpers when the requested range
// is empty after normalizing its bounds (upper bound not strictly greater
// than the lower bound).
var ErrInvalidRange = errors.New("noise: upper bound must be greater than lower bound")

// Source produces deterministic pseudorandom 32-bit values from a fixed seed.
// Get is a pure function of its argument; Next and NextRange advance an
// internal cursor and are NOT safe for concurrent use on a shared instance
// without external synchronization. Get and GetRange are safe to call
// concurrently since they touch no mutable state.
type Source interface {
	// Seed returns the seed fixed at construction.
	Seed() uint32

	// Index returns the current cursor position. The cursor starts at 0 and
	// is advanced only by Next and NextRange.
	Index() uint32

	// Get returns the pseudorandom number associated with the value x.
	// Deterministic: identical x and seed always produce the identical
	// output. All arithmetic wraps; any input is legal.
	//
	// Parameters:
	//   - x: the input to hash
	//
	// Returns:
	//   - uint32: the mixed output
	Get(x uint32) uint32

	// Next increments the internal cursor and returns Get(cursor).
	//
	// Returns:
	//   - uint32: the pseudorandom number for the new cursor position
	Next() uint32

	// GetRange maps Get(index) into the half-open range [low, high).
	//
	// Parameters:
	//   - index: the input to hash
	//   - low: inclusive lower bound
	//   - high: exclusive upper bound
	//
	// Returns:
	//   - uint32: a value in [low, high)
	//   - error: ErrInvalidRange if high <= low
	GetRange(index, low, high uint32) (uint32, error)

	// GetRangeInclusive maps Get(index) into the closed range [low, high].
	// Bounds are normalized to a half-open range internally; the full
	// 32-bit span [0, MaxUint32] is legal and returns Get(index) directly.
	//
	// Parameters:
	//   - index: the input to hash
	//   - low: inclusive lower bound
	//   - high: inclusive upper bound
	//
	// Returns:
	//   - uint32: a value in [low, high]
	//   - error: ErrInvalidRange if high < low
	GetRangeInclusive(index, low, high uint32) (uint32, error)

	// NextRange increments the internal cursor and returns
	// GetRange(cursor, low, high). The cursor advances even when the range
	// is invalid, matching Next.
	//
	// Parameters:
	//   - low: inclusive lower bound
	//   - high: exclusive upper bound
	//
	// Returns:
	//   - uint32: a value in [low, high)
	//   - error: ErrInvalidRange if high <= low
	NextRange(low, high uint32) (uint32, error)

	// NextRangeInclusive increments the internal cursor and returns
	// GetRangeInclusive(cursor, low, high).
	//
	// Parameters:
	//   - low: inclusive lower bound
	//   - high: inclusive upper bound
	//
	// Returns:
	//   - uint32: a value in [low, high]
	//   - error: ErrInvalidRange if high < low
	NextRangeInclusive(low, high uint32) (uint32, error)
}

type source struct {
	seed  uint32
	index uint32

	// clock supplies "now" for time-derived seeding so tests can pin it.
	clock func() time.Time

	seeded bool // true once WithSeed has run; skips the clock
}

// Ensure source implements Source interface.
var _ Source = &source{}

// NewSource creates a new Source. Without options the seed is derived from
// the clock: seconds since the Unix epoch reduced modulo 2³²−1, so it wraps
// instead of overflowing at epoch rollover. Use WithSeed for reproducible
// output and WithClock to pin the time-derived seed in tests.
//
// Parameters:
//   - options: functional options to further configure the source
//
// Returns:
//   - Source: the newly created source with its cursor at 0
func NewSource(options ...SourceBuilderOption) Source {
	s := &source{
		clock: time.Now,
	}

	for _, option := range options {
		option(s)
	}

	if !s.seeded {
		s.seed = uint32(uint64(s.clock().Unix()) % math.MaxUint32)
	}

	return s
}

func (s *source) Seed() uint32 {
	return s.seed
}

func (s *source) Index() uint32 {
	return s.index
}

func (s *source) Get(x uint32) uint32 {
	// Fold the seed in with a multiplicative step, then run a murmur-style
	// 32-bit finalizer for avalanche. Every step is a bijection on uint32,
	// so distinct inputs can never collide for a fixed seed. The exact
	// constants are pinned by golden-value tests; changing them changes
	// every world ever generated.
	h := x*2654435761 + s.seed
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}

func (s *source) Next() uint32 {
	s.index++
	return s.Get(s.index)
}

func (s *source) GetRange(index, low, high uint32) (uint32, error) {
	if high <= low {
		return 0, ErrInvalidRange
	}
	return low + s.Get(index)%(high-low), nil
}

func (s *source) GetRangeInclusive(index, low, high uint32) (uint32, error) {
	if high < low {
		return 0, ErrInvalidRange
	}
	// Normalize [low, high] to [low, high+1). The full 32-bit span would
	// overflow the modulus, so it short-circuits to the raw hash.
	if low == 0 && high == math.MaxUint32 {
		return s.Get(index), nil
	}
	return low + s.Get(index)%(high-low+1), nil
}

func (s *source) NextRange(low, high uint32) (uint32, error) {
	s.index++
	return s.GetRange(s.index, low, high)
}

func (s *source) NextRangeInclusive(low, high uint32) (uint32, error) {
	s.index++
	return s.GetRangeInclusive(s.index, low, high)
}
