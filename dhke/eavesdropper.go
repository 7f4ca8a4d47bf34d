package dhke

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Eavesdropper knows the group and observes both public values.
// MaxAttempts caps the search when non-zero.
type Eavesdropper struct {
	Params
	MaxAttempts uint64
}

// Recovery is the outcome of a successful attack. Exponent is the smallest x
// with g^x = AlicePublic, which reproduces the secret even when it differs
// from Alice's actual exponent.
type Recovery struct {
	Exponent   uint64
	Secret     uint64
	Attempts   uint64
	SessionKey [blake2b.Size256]byte
}

// Recover tries x = 1, 2, ... until g^x hits alicePub, then computes the
// secret as bobPub^x. Each candidate costs one modular multiplication.
func (e *Eavesdropper) Recover(alicePub, bobPub uint64) (Recovery, error) {
	if err := e.Params.Validate(); err != nil {
		return Recovery{}, err
	}
	if alicePub < 1 || alicePub >= e.Prime {
		return Recovery{}, fmt.Errorf("%w: %d", ErrInvalidPublic, alicePub)
	}
	if bobPub < 1 || bobPub >= e.Prime {
		return Recovery{}, fmt.Errorf("%w: %d", ErrInvalidPublic, bobPub)
	}
	limit := e.Prime - 1
	if e.MaxAttempts != 0 && e.MaxAttempts < limit {
		limit = e.MaxAttempts
	}
	cur := uint64(1)
	for x := uint64(1); x <= limit; x++ {
		cur = ModMul(cur, e.Generator, e.Prime)
		if cur == alicePub {
			secret := ModExp(bobPub, x, e.Prime)
			return Recovery{
				Exponent:   x,
				Secret:     secret,
				Attempts:   x,
				SessionKey: SessionKey(e.Params, alicePub, bobPub, secret),
			}, nil
		}
	}
	return Recovery{Attempts: limit}, ErrNotFound
}
