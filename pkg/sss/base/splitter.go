/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package base contains a GF(256) Splitter implementation.
package base

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/gf256"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss"
)

// NumShares is the number of shares produced by a split.
const NumShares = 3

// Threshold is the number of shares required to reconstruct the secret.
const Threshold = 2

// Splitter is a fixed 2-of-3 implementation of sss.SecretSplitter. Every byte of
// the secret becomes the constant term of its own degree-1 polynomial over
// GF(256); the shares are the per-byte evaluations at x=1, x=2 and x=3.
type Splitter struct {
	// Rand supplies the polynomial coefficients. Defaults to crypto/rand.Reader;
	// overriding it with anything weaker forfeits the information-theoretic
	// guarantee, so only tests should set it.
	Rand io.Reader
}

// Split a secret into 3 shares of equal length, any 2 of which reconstruct it.
func (b *Splitter) Split(secret []byte) ([]sss.Share, error) {
	if len(secret) == 0 {
		return nil, sss.ErrEmptySecret
	}

	// One fresh coefficient per byte position per invocation. Never reused,
	// never derived from secret material.
	coefficients := make([]byte, len(secret))
	if _, err := io.ReadFull(b.rand(), coefficients); err != nil {
		return nil, fmt.Errorf("read random coefficients: %w", err)
	}

	shares := make([]sss.Share, NumShares)

	for i := range shares {
		x := byte(i + 1)

		eval := make([]byte, len(secret))
		for pos, s := range secret {
			eval[pos] = gf256.Add(s, gf256.Mul(coefficients[pos], x))
		}

		shares[i] = sss.Share{Index: x, Bytes: eval}
	}

	return shares, nil
}

// Combine reconstructs the secret from any two of the three shares produced by
// one Split call. It does not (and cannot) validate that both shares came from
// the same split; mixing shares from different splits yields garbage.
func (b *Splitter) Combine(shareA, shareB sss.Share) ([]byte, error) {
	if err := validatePair(shareA, shareB); err != nil {
		return nil, err
	}

	// Two-point Lagrange interpolation at x=0. The basis weights depend only on
	// the share indices, so they are computed once for the pair. The denominator
	// xA+xB is non-zero because duplicate indices were rejected above.
	xA, xB := shareA.Index, shareB.Index

	denomInv, err := gf256.Inv(gf256.Add(xA, xB))
	if err != nil {
		return nil, fmt.Errorf("interpolation denominator: %w", err)
	}

	weightA := gf256.Mul(xB, denomInv)
	weightB := gf256.Mul(xA, denomInv)

	secret := make([]byte, len(shareA.Bytes))
	for pos := range secret {
		secret[pos] = gf256.Add(
			gf256.Mul(shareA.Bytes[pos], weightA),
			gf256.Mul(shareB.Bytes[pos], weightB),
		)
	}

	return secret, nil
}

func (b *Splitter) rand() io.Reader {
	if b.Rand != nil {
		return b.Rand
	}

	return rand.Reader
}

func validatePair(shareA, shareB sss.Share) error {
	for _, share := range []sss.Share{shareA, shareB} {
		if share.Index < 1 || share.Index > NumShares {
			return fmt.Errorf("%w: index %d is outside 1-%d", sss.ErrInvalidShare, share.Index, NumShares)
		}

		if len(share.Bytes) == 0 {
			return fmt.Errorf("%w: empty share payload", sss.ErrInvalidShare)
		}
	}

	if shareA.Index == shareB.Index {
		return sss.ErrDuplicateShare
	}

	if len(shareA.Bytes) != len(shareB.Bytes) {
		return fmt.Errorf("%w: share lengths %d and %d differ",
			sss.ErrInvalidShare, len(shareA.Bytes), len(shareB.Bytes))
	}

	return nil
}
