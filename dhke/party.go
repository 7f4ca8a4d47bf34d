package dhke

import (
	"fmt"
	"math"
	"math/rand"
)

// Party is one side of the exchange. Its private exponent never leaves the
// struct.
type Party struct {
	Params
	private uint64
}

// NewParty draws a private exponent uniformly from [1, p-2].
func NewParty(params Params, rng *rand.Rand) (*Party, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	x := 1 + uniform(rng, params.Prime-2)
	return &Party{params, x}, nil
}

// uniform returns a value in [0, n) without modulo bias. n must be non-zero.
func uniform(rng *rand.Rand, n uint64) uint64 {
	if n <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(n)))
	}
	// n > 2^63, so fewer than half of all draws are rejected
	for {
		if v := rng.Uint64(); v < n {
			return v
		}
	}
}

// NewPartyWithKey creates a party with a chosen private exponent in [1, p-2].
func NewPartyWithKey(params Params, private uint64) (*Party, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if private < 1 || private > params.Prime-2 {
		return nil, fmt.Errorf("private exponent %d not in [1, %d]", private, params.Prime-2)
	}
	return &Party{params, private}, nil
}

// Public returns g^x mod p, the value sent to the peer.
func (p *Party) Public() uint64 {
	return ModExp(p.Generator, p.private, p.Prime)
}

// Shared raises the peer's public value to the private exponent.
func (p *Party) Shared(peer uint64) (uint64, error) {
	if peer < 1 || peer >= p.Prime {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPublic, peer)
	}
	return ModExp(peer, p.private, p.Prime), nil
}
