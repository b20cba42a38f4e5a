package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Random is the randomness source a game draws from. *rand.Rand satisfies it;
// tests substitute a fixed sequence.
type Random interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// NewRandom returns a seeded source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

// SequenceRandom replays a fixed list of values, cycling when exhausted.
type SequenceRandom struct {
	Values []float64
	next   int
}

// Float64 returns the next value of the sequence, or 0.5 when it is empty.
func (s *SequenceRandom) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// ErrNonFinite is the panic value (wrapped) raised when a simulation produces
// a NaN or infinite position or velocity.
var ErrNonFinite = errors.New("non-finite simulation value")

// MustFinite panics if any value is NaN or infinite. Games call it on their
// state at the end of every step.
func MustFinite(label string, vals ...float64) {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, label, i, v))
		}
	}
}
