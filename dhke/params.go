// Package dhke simulates a Diffie-Hellman key exchange over a small prime
// field, and an eavesdropper that breaks it by exhaustive search of the
// discrete logarithm. The moduli are tiny on purpose; nothing here is fit to
// protect real data.
package dhke

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrInvalidParams  = errors.New("invalid group parameters")
	ErrInvalidPublic  = errors.New("public value outside [1, p-1]")
	ErrSecretMismatch = errors.New("parties derived different shared secrets")
	ErrNotFound       = errors.New("no exponent maps the generator to the public value")
)

// MaxParamBits bounds GenerateParams so that p-1 can be factored by trial
// division.
const MaxParamBits = 40

// Params are the public group parameters: arithmetic is mod Prime and public
// values are powers of Generator.
type Params struct {
	Prime     uint64 `yaml:"prime"`
	Generator uint64 `yaml:"generator"`
}

// DefaultParams is the textbook group p=23, g=5.
var DefaultParams = Params{Prime: 23, Generator: 5}

func isPrime(n uint64) bool {
	// ProbablyPrime is exact for inputs below 2^64
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}

// Validate checks that Prime is an odd prime and Generator is in [2, p-1].
func (p Params) Validate() error {
	if p.Prime < 3 || !isPrime(p.Prime) {
		return fmt.Errorf("%w: %d is not an odd prime", ErrInvalidParams, p.Prime)
	}
	if p.Generator < 2 || p.Generator >= p.Prime {
		return fmt.Errorf("%w: generator %d not in [2, %d]", ErrInvalidParams, p.Generator, p.Prime-1)
	}
	return nil
}

// IsPrimitiveRoot reports whether Generator has order p-1, i.e. its powers
// reach every non-zero residue. It assumes Validate passed. p-1 is factored
// by trial division, which is only quick below 2^MaxParamBits.
func (p Params) IsPrimitiveRoot() bool {
	order := p.Prime - 1
	for _, q := range primeFactors(order) {
		if ModExp(p.Generator, order/q, p.Prime) == 1 {
			return false
		}
	}
	return true
}

// GenerateParams returns the largest prime below 2^bits together with its
// smallest primitive root.
func GenerateParams(bits int) (Params, error) {
	if bits < 2 || bits > MaxParamBits {
		return Params{}, fmt.Errorf("%w: modulus size %d not in [2, %d] bits", ErrInvalidParams, bits, MaxParamBits)
	}
	prime := uint64(1)<<bits - 1
	for !isPrime(prime) {
		prime--
	}
	p := Params{Prime: prime}
	for g := uint64(2); g < prime; g++ {
		p.Generator = g
		if p.IsPrimitiveRoot() {
			return p, nil
		}
	}
	// every prime has a primitive root
	panic("prime without a primitive root")
}

func (p Params) String() string {
	return fmt.Sprintf("p=%d g=%d", p.Prime, p.Generator)
}
