package road

import "math"

// MaxAdvances caps the advances one Consume call can emit. Distance beyond
// the cap is dropped.
const MaxAdvances = 1024

// ScrollAccumulator turns a continuous forward distance per frame into whole
// buffer advances. The fractional part is carried to the next frame.
type ScrollAccumulator struct {
	carry float64
}

// Consume adds distance (in stations) and returns how many advances are due.
// Non-positive, NaN and infinite distances are ignored and at most
// MaxAdvances are returned.
func (s *ScrollAccumulator) Consume(distance float64) int {
	if !(distance > 0) || math.IsInf(distance, 1) {
		return 0
	}
	s.carry += distance
	whole := math.Floor(s.carry)
	s.carry -= whole
	if whole > MaxAdvances {
		return MaxAdvances
	}
	return int(whole)
}

// Carry returns the fractional distance not yet turned into an advance.
func (s *ScrollAccumulator) Carry() float64 {
	return s.carry
}

// Reset drops the carried distance.
func (s *ScrollAccumulator) Reset() {
	s.carry = 0
}
