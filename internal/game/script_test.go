package game

import "fmt"

// scriptRNG replays a fixed sequence of draws so outcomes are deterministic.
type scriptRNG struct {
	ints  []int
	units []float64
}

func (s *scriptRNG) UniformInt(min, max int) int {
	if len(s.ints) == 0 {
		panic("scriptRNG: int sequence exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < min || v > max {
		panic(fmt.Sprintf("scriptRNG: scripted value %d outside [%d, %d]", v, min, max))
	}
	return v
}

func (s *scriptRNG) UniformUnit() float64 {
	if len(s.units) == 0 {
		panic("scriptRNG: unit sequence exhausted")
	}
	v := s.units[0]
	s.units = s.units[1:]
	return v
}

// noDrawRNG fails the test if a game draws before validating its inputs.
type noDrawRNG struct{}

func (noDrawRNG) UniformInt(min, max int) int {
	panic("draw taken before validation")
}

func (noDrawRNG) UniformUnit() float64 {
	panic("draw taken before validation")
}
