// Package bignum is a thin arbitrary-precision integer adapter over
// math/big, covering the same operations a GMP-based implementation
// would lean on: import/export as big-endian bytes, modular
// exponentiation, gcd, modular inverse, and next-prime search.
package bignum

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned by ModInverse when e has no multiplicative
// inverse modulo m (gcd(e, m) != 1).
var ErrNoInverse = errors.New("bignum: modular inverse does not exist")

// ImportBE interprets a big-endian byte slice as an unsigned integer.
func ImportBE(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ExportBE returns the big-endian, unsigned encoding of n with no leading
// zero bytes (n == 0 exports as an empty slice, matching mpz_export's
// behavior on zero).
func ExportBE(n *big.Int) []byte {
	return n.Bytes()
}

// ModExp computes base^exp mod m.
func ModExp(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// ModInverse returns the multiplicative inverse of e modulo m.
func ModInverse(e, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(e, m)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// NextPrime returns the smallest odd probable prime greater than or equal
// to start (only odd candidates are tested, so 2 is never returned), using the same probabilistic primality test GMP's
// mpz_nextprime relies on internally (Miller-Rabin via math/big's
// ProbablyPrime).
func NextPrime(start *big.Int) *big.Int {
	candidate := new(big.Int).Set(start)

	if candidate.Bit(0) == 0 {
		candidate.Add(candidate, big.NewInt(1))
	}

	for !candidate.ProbablyPrime(20) {
		candidate.Add(candidate, big.NewInt(2))
	}

	return candidate
}
