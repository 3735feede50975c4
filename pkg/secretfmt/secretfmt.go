/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package secretfmt converts secrets between their external string forms and raw bytes.
package secretfmt

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Formats understood by Decode and Encode.
const (
	FormatHex    = "hex"
	FormatBase64 = "base64"
	FormatUTF8   = "utf8"
)

// ErrUnknownFormat is used when a format name is not one of hex, base64 or utf8.
var ErrUnknownFormat = errors.New("unknown secret format")

// ErrNotUTF8 is used when bytes recovered from shares are requested as utf8 text
// but do not form a valid UTF-8 sequence.
var ErrNotUTF8 = errors.New("secret is not valid UTF-8")

// Decode converts a secret from its external string form to raw bytes.
// Hex input may carry an optional 0x prefix.
func Decode(format, secret string) ([]byte, error) {
	switch format {
	case FormatHex:
		if strings.HasPrefix(secret, "0x") || strings.HasPrefix(secret, "0X") {
			secret = secret[2:]
		}

		decoded, err := hex.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("decode hex secret: %w", err)
		}

		return decoded, nil
	case FormatBase64:
		decoded, err := base64.StdEncoding.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("decode base64 secret: %w", err)
		}

		return decoded, nil
	case FormatUTF8:
		return []byte(secret), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Encode converts raw secret bytes back to the given external string form.
func Encode(format string, secret []byte) (string, error) {
	switch format {
	case FormatHex:
		return "0x" + hex.EncodeToString(secret), nil
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(secret), nil
	case FormatUTF8:
		if !utf8.Valid(secret) {
			return "", ErrNotUTF8
		}

		return string(secret), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
