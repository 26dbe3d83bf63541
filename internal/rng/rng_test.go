package rng

import "testing"

func TestCryptoUniformIntRange(t *testing.T) {
	var p Crypto
	tests := []struct {
		name     string
		min, max int
	}{
		{name: "die face", min: 1, max: 6},
		{name: "roulette pocket", min: 0, max: 36},
		{name: "single value", min: 4, max: 4},
		{name: "negative min", min: -3, max: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				got := p.UniformInt(tt.min, tt.max)
				if got < tt.min || got > tt.max {
					t.Fatalf("UniformInt(%d, %d) = %d, out of range", tt.min, tt.max, got)
				}
			}
		})
	}
}

func TestCryptoUniformIntCoversRange(t *testing.T) {
	var p Crypto
	seen := map[int]bool{}
	for i := 0; i < 600; i++ {
		seen[p.UniformInt(1, 6)] = true
	}
	for face := 1; face <= 6; face++ {
		if !seen[face] {
			t.Fatalf("face %d never drawn in 600 trials", face)
		}
	}
}

func TestCryptoUniformUnitHalfOpen(t *testing.T) {
	var p Crypto
	for i := 0; i < 1000; i++ {
		got := p.UniformUnit()
		if got < 0 || got >= 1 {
			t.Fatalf("UniformUnit() = %v, want [0, 1)", got)
		}
	}
}

func TestCryptoUniformIntInvalidRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for inverted range")
		}
	}()
	Crypto{}.UniformInt(5, 1)
}
