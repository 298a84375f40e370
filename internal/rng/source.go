package rng

//go:generate mockgen -destination=mock/mock_source.go -package=mockrng -source=source.go

// Source provides the uniform random floats behind every loot roll.
// This allows us to inject different implementations for testing.
type Source interface {
	// Float64 returns a uniformly distributed float in [0, 1)
	Float64() float64
}
