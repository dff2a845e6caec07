package core

import (
	"errors"
	"math"
)

// Epsilon is the tolerance below which a scalar is treated as zero
const Epsilon = 1e-10

// ErrZeroVector is returned when a direction or normal has no length
var ErrZeroVector = errors.New("zero-length vector")

// IsZero reports whether x is within Epsilon of zero
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// AlignZero snaps values within Epsilon of zero to exactly zero
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}
