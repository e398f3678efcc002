// sha256.go - SHA-256
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package sha256 implements the SHA-256 cryptographic hash function as
// defined in FIPS 180-4.
//
// Unlike most implementations, the initialization vector and the round
// constant table are not hard coded: they are derived at package
// initialization from the square and cube roots of the first primes,
// exactly as the standard defines them.  This implementation favors
// simplicity and readability over performance, and makes no attempt at
// constant-time operation.
package sha256

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the size of a SHA-256 message block in bytes.
	BlockSize = 64
)

// block is a single 512-bit message block, sixteen big-endian 32-bit
// words (FIPS 180-4 section 5.2.1).
type block [16]uint32

// Sum returns the SHA-256 digest of msg (FIPS 180-4 section 6.2).
//
// Messages at or beyond 2^61 bytes would overflow the 64-bit length
// field and are an unchecked precondition, though no such slice can be
// materialized on any supported platform.
func Sum(msg []byte) [Size]byte {
	s := iv
	blocks := preprocess(msg)
	for i := range blocks {
		s = compress(s, &blocks[i])
	}

	var digest [Size]byte
	for i, v := range s {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest
}

// preprocess pads msg and splits the result into blocks (FIPS 180-4
// sections 5.1.1 and 5.2.1).  The output always contains at least one
// block, a 0 byte message pads out to exactly one.
func preprocess(msg []byte) []block {
	p := pad(msg)

	blocks := make([]block, len(p)/BlockSize)
	for i := range blocks {
		chunk := p[i*BlockSize:]
		for w := range blocks[i] {
			blocks[i][w] = binary.BigEndian.Uint32(chunk[w*4:])
		}
	}
	return blocks
}

// pad appends the 0x80 marker byte, the minimum run of zero bytes that
// leaves the length congruent to 56 mod 64, and the original length in
// bits as a 64-bit big-endian integer.
func pad(msg []byte) []byte {
	l := len(msg)
	n := l + 9 // Marker byte plus the length field.
	if rem := n % BlockSize; rem != 0 {
		n += BlockSize - rem
	}

	p := make([]byte, n)
	copy(p, msg)
	p[l] = 0x80
	binary.BigEndian.PutUint64(p[n-8:], uint64(l)*8)
	return p
}

// compress mixes one block into the state and returns the new state
// (FIPS 180-4 section 6.2.2).  All additions wrap mod 2^32.
func compress(s [8]uint32, m *block) [8]uint32 {
	// Expand the block into the 64 word message schedule.
	var w [64]uint32
	copy(w[:], m[:])
	for t := 16; t < 64; t++ {
		w[t] = sig1(w[t-2]) + w[t-7] + sig0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for t := 0; t < 64; t++ {
		t1 := h + sum1(e) + ch(e, f, g) + k[t] + w[t]
		t2 := sum0(a) + maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
	return s
}

// rotr right-rotates the bits of a 32-bit word by n (FIPS 180-4
// section 3.2).
func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

// ch selects, per bit, y where x is set and z where it is not (FIPS
// 180-4 equation 4.2).
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj takes the per-bit majority vote of x, y and z (FIPS 180-4
// equation 4.3).
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// sum0 is the "Σ0" function (FIPS 180-4 equation 4.4).
func sum0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

// sum1 is the "Σ1" function (FIPS 180-4 equation 4.5).
func sum1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

// sig0 is the "σ0" function (FIPS 180-4 equation 4.6).
func sig0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

// sig1 is the "σ1" function (FIPS 180-4 equation 4.7).
func sig1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}
