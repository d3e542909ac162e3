// SPDX-License-Identifier: MIT
// Package: filtra/persistence
//
// field.go — arithmetic in the prime field Z/p.
//
// Coefficients are kept in canonical form [0, p); p fits an int (the CLI
// caps it well below 2³¹), so plain integer arithmetic suffices.

package persistence

// isPrime reports whether p is a prime > 1. Trial division: p is a small
// field characteristic, not a cryptographic modulus.
func isPrime(p int) bool {
	if p < 2 {
		return false
	}
	for d := 2; d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}

	return true
}

// mod returns x in canonical form [0, p).
func mod(x, p int) int {
	x %= p
	if x < 0 {
		x += p
	}

	return x
}

// inverse returns the multiplicative inverse of a (non-zero mod p) via the
// extended Euclidean algorithm.
func inverse(a, p int) int {
	// Invariant: oldR ≡ oldS·a (mod p) throughout.
	oldR, r := mod(a, p), p
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}

	return mod(oldS, p)
}
