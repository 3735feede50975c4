/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package secretfmt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/secretfmt"
)

func TestDecode(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		decoded, err := secretfmt.Decode(secretfmt.FormatHex, "deadbeef")
		require.NoError(t, err)
		require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, decoded)
	})

	t.Run("hex with 0x prefix", func(t *testing.T) {
		for _, secret := range []string{"0xDEADBEEF", "0XDEADBEEF"} {
			decoded, err := secretfmt.Decode(secretfmt.FormatHex, secret)
			require.NoError(t, err)
			require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, decoded)
		}
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := secretfmt.Decode(secretfmt.FormatHex, "zz")
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode hex secret")
	})

	t.Run("base64", func(t *testing.T) {
		decoded, err := secretfmt.Decode(secretfmt.FormatBase64, "AQID")
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3}, decoded)

		_, err = secretfmt.Decode(secretfmt.FormatBase64, "!!")
		require.Error(t, err)
	})

	t.Run("utf8", func(t *testing.T) {
		decoded, err := secretfmt.Decode(secretfmt.FormatUTF8, "correct horse battery staple")
		require.NoError(t, err)
		require.Equal(t, []byte("correct horse battery staple"), decoded)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := secretfmt.Decode("yaml", "whatever")
		require.True(t, errors.Is(err, secretfmt.ErrUnknownFormat))
	})
}

func TestEncode(t *testing.T) {
	t.Run("hex carries 0x prefix", func(t *testing.T) {
		encoded, err := secretfmt.Encode(secretfmt.FormatHex, []byte{0xDE, 0xAD})
		require.NoError(t, err)
		require.Equal(t, "0xdead", encoded)
	})

	t.Run("base64", func(t *testing.T) {
		encoded, err := secretfmt.Encode(secretfmt.FormatBase64, []byte{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, "AQID", encoded)
	})

	t.Run("utf8 rejects invalid sequences", func(t *testing.T) {
		encoded, err := secretfmt.Encode(secretfmt.FormatUTF8, []byte("plain text"))
		require.NoError(t, err)
		require.Equal(t, "plain text", encoded)

		_, err = secretfmt.Encode(secretfmt.FormatUTF8, []byte{0xFF, 0xFE})
		require.True(t, errors.Is(err, secretfmt.ErrNotUTF8))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := secretfmt.Encode("yaml", []byte{1})
		require.True(t, errors.Is(err, secretfmt.ErrUnknownFormat))
	})
}

func TestRoundTrip(t *testing.T) {
	secret := []byte{0x00, 0x11, 0x22, 0xFF}

	for _, format := range []string{secretfmt.FormatHex, secretfmt.FormatBase64} {
		encoded, err := secretfmt.Encode(format, secret)
		require.NoError(t, err)

		decoded, err := secretfmt.Decode(format, encoded)
		require.NoError(t, err)
		require.Equal(t, secret, decoded)
	}
}
