package dhke

import (
	"math/bits"
)

// ModMul returns a*b mod m using a 128-bit intermediate product. m must be
// non-zero.
func ModMul(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModExp returns base^exp mod m by square-and-multiply.
func ModExp(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	res := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			res = ModMul(res, base, m)
		}
		base = ModMul(base, base, m)
		exp >>= 1
	}
	return res
}

// primeFactors returns the distinct prime factors of n by trial division.
func primeFactors(n uint64) []uint64 {
	var fs []uint64
	for d := uint64(2); d <= n/d; d++ {
		if n%d == 0 {
			fs = append(fs, d)
			for n%d == 0 {
				n /= d
			}
		}
	}
	if n > 1 {
		fs = append(fs, n)
	}
	return fs
}
