/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gf256 implements arithmetic over the Galois field GF(2^8).
package gf256

import "errors"

// reductionPoly is the irreducible polynomial x^8+x^4+x^3+x^2+1 that reduces
// products back into the field.
const reductionPoly = 0x11D

// ErrDivisionByZero is returned when the multiplicative inverse of zero is requested.
// Zero has no inverse; callers are expected to guard against it before calling.
var ErrDivisionByZero = errors.New("division by zero in GF(256)")

// Log and exp tables for the multiplicative group generated by 2,
// which is primitive for the 0x11D field.
var (
	expTable [256]byte // nolint:gochecknoglobals // precomputed table
	logTable [256]byte // nolint:gochecknoglobals // precomputed table
)

// nolint:gochecknoinits // tables must be ready before any field operation
func init() {
	g := 1

	for i := 0; i < 255; i++ {
		expTable[i] = byte(g)
		logTable[g] = byte(i)

		g <<= 1
		if g&0x100 != 0 {
			g ^= reductionPoly
		}
	}

	// the group is cyclic with order 255
	expTable[255] = expTable[0]
}

// Add returns a+b. In a field of characteristic 2 addition is xor,
// so Add doubles as subtraction.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul returns a*b modulo the reduction polynomial.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	return expTable[(int(logTable[a])+int(logTable[b]))%255]
}

// Inv returns the multiplicative inverse of a, such that Mul(a, Inv(a)) == 1.
func Inv(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}

	return expTable[(255-int(logTable[a]))%255], nil
}

// Div returns a/b.
func Div(a, b byte) (byte, error) {
	bInv, err := Inv(b)
	if err != nil {
		return 0, err
	}

	return Mul(a, bInv), nil
}
