// Package dyadic converts edge probabilities into exact dyadic
// fractions k/2^m. Once converted, all arithmetic is integer
// arithmetic; the floating value is never consulted again.
package dyadic

import (
	"fmt"
	"math"
)

// DefaultMaxBits is the default bit budget for probability conversion.
const DefaultMaxBits = 20

// tolerance bounds how far p·2^m may sit from an integer and still be
// accepted as that integer.
const tolerance = 1e-9

// OverflowError reports a probability that is not representable as
// k/2^m within the configured bit budget.
type OverflowError struct {
	P       float64
	MaxBits int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("probability %v is not representable as k/2^m with m <= %d", e.P, e.MaxBits)
}

// Dyadic is the exact fraction K/2^Bits with 0 <= K <= 2^Bits. Bits is
// minimal: K is odd unless Bits is zero.
type Dyadic struct {
	K    uint64
	Bits int
}

// FromFloat finds the minimal m <= maxBits such that p·2^m is an
// integer within tolerance and returns that representation. p must lie
// in [0, 1]; callers validate the range before conversion.
func FromFloat(p float64, maxBits int) (Dyadic, error) {
	if maxBits < 0 || maxBits > 62 {
		return Dyadic{}, fmt.Errorf("bit budget %d out of range [0, 62]", maxBits)
	}
	for m := 0; m <= maxBits; m++ {
		scaled := p * float64(uint64(1)<<uint(m))
		k := math.Round(scaled)
		if math.Abs(scaled-k) <= tolerance {
			return Dyadic{K: uint64(k), Bits: m}, nil
		}
	}
	return Dyadic{}, OverflowError{P: p, MaxBits: maxBits}
}

// Float returns the exact value K/2^Bits.
func (d Dyadic) Float() float64 {
	return math.Ldexp(float64(d.K), -d.Bits)
}

func (d Dyadic) String() string {
	return fmt.Sprintf("%d/2^%d", d.K, d.Bits)
}
