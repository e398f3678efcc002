// primes.go - Incremental prime sieve
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package sha256

// primeSieve generates the prime numbers in increasing order using an
// incremental Sieve of Eratosthenes: composites maps each upcoming
// composite to the primes that divide it, and entries are re-scheduled
// as the candidate counter walks past them.
type primeSieve struct {
	composites map[uint64][]uint64
	candidate  uint64
}

func newPrimeSieve() *primeSieve {
	return &primeSieve{
		composites: make(map[uint64][]uint64),
		candidate:  2,
	}
}

// Next returns the next prime in the sequence.  The sequence is
// unbounded, each sieve instance restarts it from 2.
func (s *primeSieve) Next() uint64 {
	for {
		q := s.candidate
		s.candidate++

		factors, ok := s.composites[q]
		if !ok {
			// q was never marked, so it is prime.  The first composite
			// it is responsible for is its square, everything below
			// q*q with q as a factor has a smaller factor already
			// scheduled.
			s.composites[q*q] = []uint64{q}
			return q
		}

		// q is composite, advance each factor to its next multiple and
		// drop the stale entry.
		for _, p := range factors {
			s.composites[q+p] = append(s.composites[q+p], p)
		}
		delete(s.composites, q)
	}
}
