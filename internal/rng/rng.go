package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Provider supplies the randomness consumed by game outcomes. Implementations
// hold no state between calls and must be safe for concurrent use.
type Provider interface {
	// UniformInt returns an integer uniformly distributed over [min, max].
	UniformInt(min, max int) int
	// UniformUnit returns a value uniformly distributed over [0, 1).
	UniformUnit() float64
}

const unitSteps = 1_000_000

// Crypto draws from the operating system entropy source so outcomes cannot be
// pre-computed by a client. There is no safe degraded mode: if entropy is
// unavailable the provider panics instead of falling back to a predictable
// generator.
type Crypto struct{}

func (c Crypto) UniformInt(min, max int) int {
	if max < min {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", min, max))
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)-int64(min)+1))
	if err != nil {
		panic(fmt.Sprintf("rng: entropy source unavailable: %v", err))
	}
	return min + int(n.Int64())
}

func (c Crypto) UniformUnit() float64 {
	return float64(c.UniformInt(0, unitSteps-1)) / unitSteps
}
