package planner

import (
	"math/rand/v2"
	"time"
)

// Random streams, one per component so they never share generator state
const (
	streamPricing     uint64 = 1
	streamAttractions uint64 = 2
	streamWeather     uint64 = 3
)

// RandomSource hands out a fresh generator per call.
// Seeded sources repeat the same draws for the same seed; live sources do not.
type RandomSource struct {
	seed uint64
	live bool
}

// Seeded returns a reproducible source
func Seeded(seed uint64) RandomSource {
	return RandomSource{seed: seed}
}

// Live returns a source that models real-time rate fluctuation
func Live() RandomSource {
	return RandomSource{live: true}
}

// IsLive reports whether the source is nondeterministic
func (s RandomSource) IsLive() bool {
	return s.live
}

// New creates an independent generator for the given stream
func (s RandomSource) New(stream uint64) *rand.Rand {
	seed := s.seed
	if s.live {
		seed = uint64(time.Now().UnixNano()) ^ rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, stream))
}
