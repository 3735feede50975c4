/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package sss provides security API for splitting a secret into multiple parts.

package sss

import "errors"

// ErrEmptySecret is used when an attempt is made to split a zero-length secret.
var ErrEmptySecret = errors.New("secret is empty")

// ErrInvalidShare is used when a share carries an index outside 1-3, an empty payload,
// or a byte length that disagrees with its counterpart's.
var ErrInvalidShare = errors.New("invalid share")

// ErrDuplicateShare is used when the two shares passed to Combine carry the same index.
var ErrDuplicateShare = errors.New("duplicate share")

// Share is one of the three outputs of splitting a secret: an evaluation point
// index in 1-3 and the per-byte polynomial evaluations at that point. Shares are
// self-contained and may be stored or transmitted separately.
type Share struct {
	Index byte
	Bytes []byte
}

// SecretSplitter is a service that splits a secret []byte into three shares, any
// two of which reconstruct it, while a single share reveals nothing about it.
type SecretSplitter interface {
	Split(secret []byte) ([]Share, error)
	Combine(shareA, shareB Share) ([]byte, error)
}
