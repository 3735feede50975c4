/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sss

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode renders the share in its wire form "<index>:<base64(bytes)>".
func (s Share) Encode() string {
	return fmt.Sprintf("%d:%s", s.Index, base64.StdEncoding.EncodeToString(s.Bytes))
}

// ParseShare parses the wire form produced by Encode.
func ParseShare(encoded string) (Share, error) {
	parts := strings.SplitN(encoded, ":", 2)
	if len(parts) != 2 {
		return Share{}, fmt.Errorf("%w: expected <index>:<base64> [%s]", ErrInvalidShare, encoded)
	}

	if len(parts[0]) != 1 || parts[0][0] < '1' || parts[0][0] > '3' {
		return Share{}, fmt.Errorf("%w: index must be 1, 2 or 3 [%s]", ErrInvalidShare, parts[0])
	}

	payload, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return Share{}, fmt.Errorf("%w: decode share payload: %v", ErrInvalidShare, err)
	}

	if len(payload) == 0 {
		return Share{}, fmt.Errorf("%w: empty share payload", ErrInvalidShare)
	}

	return Share{Index: parts[0][0] - '0', Bytes: payload}, nil
}
