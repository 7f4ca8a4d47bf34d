// Package experiments holds the workloads and measurements behind the
// codelab demos: random text for run-length coding, noisy transmission for
// Hamming codes, and the cost of brute-forcing toy Diffie-Hellman.
package experiments

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"

	"github.com/yangl1996/soliton"
)

// RunLengthDist draws run lengths for random text.
type RunLengthDist interface {
	Uint64() uint64
}

// ConstantLength always returns the same run length.
type ConstantLength struct {
	n uint64
}

func (c ConstantLength) Uint64() uint64 {
	return c.n
}

// NewDistribution parses a run-length distribution: u(n) for constant length
// n, s(k) for soliton with parameter k, rs(k,c,delta) for robust soliton.
func NewDistribution(s string, rng *rand.Rand) (RunLengthDist, error) {
	ds := strings.ReplaceAll(s, " ", "")
	switch {
	case strings.HasPrefix(ds, "u("):
		param := strings.TrimPrefix(strings.TrimSuffix(ds, ")"), "u(")
		n, err := strconv.ParseUint(param, 10, 64)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errors.New("constant run length must be positive")
		}
		return ConstantLength{n}, nil
	case strings.HasPrefix(ds, "rs("):
		params := strings.Split(strings.TrimPrefix(strings.TrimSuffix(ds, ")"), "rs("), ",")
		if len(params) != 3 {
			return nil, errors.New("incorrect number of parameters for robust soliton")
		}
		k, err := strconv.Atoi(params[0])
		if err != nil {
			return nil, err
		}
		c, err := strconv.ParseFloat(params[1], 64)
		if err != nil {
			return nil, err
		}
		delta, err := strconv.ParseFloat(params[2], 64)
		if err != nil {
			return nil, err
		}
		if k <= 0 || c <= 0 || delta <= 0 || delta >= 1 {
			return nil, errors.New("parameter out of range for robust soliton")
		}
		return soliton.NewRobustSoliton(rng, uint64(k), c, delta), nil
	case strings.HasPrefix(ds, "s("):
		param := strings.TrimPrefix(strings.TrimSuffix(ds, ")"), "s(")
		k, err := strconv.Atoi(param)
		if err != nil {
			return nil, err
		}
		if k <= 0 {
			return nil, errors.New("soliton distribution k not greater than 0")
		}
		return soliton.NewSoliton(rng, uint64(k)), nil
	default:
		return nil, errors.New("undefined run-length distribution")
	}
}
