package noise

import "time"

// SourceBuilderOption is a functional option for configuring a source.
// Use the With* functions to create options.
type SourceBuilderOption func(s *source)

// WithSeed fixes the source's seed. Any 32-bit value is legal; identical
// seeds reproduce identical output streams.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - SourceBuilderOption: option function to apply
func WithSeed(seed uint32) SourceBuilderOption {
	return func(s *source) {
		s.seed = seed
		s.seeded = true
	}
}

// WithClock replaces the wall clock used for time-derived seeding.
// Only consulted when WithSeed is absent; tests use it to make the
// "fresh world" constructor deterministic.
//
// Parameters:
//   - clock: function returning the current time
//
// Returns:
//   - SourceBuilderOption: option function to apply
func WithClock(clock func() time.Time) SourceBuilderOption {
	return func(s *source) {
		if clock != nil {
			s.clock = clock
		}
	}
}
