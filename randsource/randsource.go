package randsource

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidParameter is wrapped by all randsource validation errors.
var ErrInvalidParameter = errors.New("invalid parameter")

// Recognised randomness selector tokens.
const (
	Pseudo = "pseudo" // deterministic, seedable PCG source
	True   = "true"   // non-deterministic source backed by the OS entropy pool
)

// Source yields the primitive random draws needed by the random signal
// generators. *rand.Rand from math/rand/v2 satisfies this, so the
// generators have no dependency on a specific entropy source.
type Source interface {
	Float64() float64     // uniformly distributed in [0, 1)
	NormFloat64() float64 // standard normal distribution
}

// Returns a Source for the given randomness selector. An empty selector
// defaults to Pseudo. The seed is only meaningful for the pseudo source
// and is ignored by the true source.
func New(randomness string, seed *uint64) (Source, error) {
	switch randomness {
	case "", Pseudo:
		if seed != nil {
			return rand.New(rand.NewPCG(*seed, 0)), nil
		}
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil
	case True:
		return rand.New(cryptoSource{}), nil
	default:
		return nil, fmt.Errorf("%w: randomness must be either %q or %q; got %q", ErrInvalidParameter, Pseudo, True, randomness)
	}
}

// cryptoSource adapts crypto/rand to the math/rand/v2 Source interface.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err) // the OS entropy source should never fail
	}
	return binary.LittleEndian.Uint64(b[:])
}
