// constants.go - IV and round constant derivation
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package sha256

import "math/big"

// iv is the initial hash value, the first 32 bits of the fractional
// parts of the square roots of the first 8 primes (FIPS 180-4 section
// 5.3.3).  k is the round constant table, the first 32 bits of the
// fractional parts of the cube roots of the first 64 primes (FIPS
// 180-4 section 4.2.2).  Both are derived once at initialization and
// treated as read-only afterwards.
var iv, k = deriveConstants()

func deriveConstants() (iv [8]uint32, k [64]uint32) {
	s := newPrimeSieve()
	for i := range k {
		p := s.Next()
		if i < len(iv) {
			iv[i] = fracRoot(p, 2)
		}
		k[i] = fracRoot(p, 3)
	}
	return
}

// fracRoot returns the first 32 bits of the fractional part of the
// r-th root of p, ie. floor(frac(p^(1/r)) * 2^32).  The root is taken
// over the integers at a fixed-point scale of 2^64, so the result is
// exact rather than dependent on the precision of a real-valued
// approximation.
func fracRoot(p uint64, r uint) uint32 {
	x := new(big.Int).SetUint64(p)
	x.Lsh(x, 64*r) // x = p * (2^64)^r, so nthRoot(x, r) = floor(p^(1/r) * 2^64).

	root := nthRoot(x, r)
	root.Rsh(root, 32)
	return uint32(root.Uint64())
}

// nthRoot returns floor(x^(1/n)) for x >= 0.
func nthRoot(x *big.Int, n uint) *big.Int {
	if n == 2 {
		return new(big.Int).Sqrt(x)
	}
	if x.Sign() == 0 {
		return new(big.Int)
	}

	// Newton's method on z^n - x, starting from a power of two at or
	// above the true root.  Each step strictly decreases z until it
	// lands on the floor, at which point the next iterate fails to
	// decrease and the loop terminates.
	var (
		bigN   = new(big.Int).SetUint64(uint64(n))
		bigNm1 = new(big.Int).SetUint64(uint64(n - 1))
	)
	z := new(big.Int).Lsh(big.NewInt(1), (uint(x.BitLen())+n-1)/n)
	for {
		y := new(big.Int).Exp(z, bigNm1, nil)
		y.Div(x, y)
		y.Add(y, new(big.Int).Mul(bigNm1, z))
		y.Div(y, bigN)
		if y.Cmp(z) >= 0 {
			return z
		}
		z = y
	}
}
