package bt

// RNG is the minimal pseudo-random source required by RandomSelector,
// WeightedSelector and the utility reasoner's WeightedRandom/TopN
// selection methods. Supplying a seeded implementation yields fully
// reproducible traces.
type RNG interface {
	// NextU32 returns the next pseudo-random value in [0, 2^32).
	NextU32() uint32
}
