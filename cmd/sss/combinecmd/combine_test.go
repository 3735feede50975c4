/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package combinecmd

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss/base"
)

func TestCombineCmd(t *testing.T) {
	os.Clearenv()

	t.Run("recovers a known secret", func(t *testing.T) {
		// Shares of the single byte 0x00 with polynomial coefficient 0x03.
		out := executeCombine(t, "1:Aw==", "2:Bg==")
		require.Equal(t, "0x00\n", out)
	})

	t.Run("recovers a split secret from any pair", func(t *testing.T) {
		splitter := base.Splitter{}

		shares, err := splitter.Split([]byte{0xDE, 0xAD, 0xBE, 0xEF})
		require.NoError(t, err)

		pairs := [][2]sss.Share{
			{shares[0], shares[1]},
			{shares[0], shares[2]},
			{shares[1], shares[2]},
		}

		for _, pair := range pairs {
			out := executeCombine(t, pair[0].Encode(), pair[1].Encode())
			require.Equal(t, "0xdeadbeef\n", out)
		}
	})

	t.Run("share order does not matter", func(t *testing.T) {
		require.Equal(t, executeCombine(t, "1:Aw==", "2:Bg=="), executeCombine(t, "2:Bg==", "1:Aw=="))
	})

	t.Run("renders the secret as base64", func(t *testing.T) {
		splitter := base.Splitter{}

		shares, err := splitter.Split([]byte{1, 2, 3})
		require.NoError(t, err)

		out := executeCombine(t, shares[0].Encode(), shares[2].Encode(), "--format", "base64")
		require.Equal(t, "AQID\n", out)
	})

	t.Run("renders the secret as utf8", func(t *testing.T) {
		splitter := base.Splitter{}

		shares, err := splitter.Split([]byte("my passphrase"))
		require.NoError(t, err)

		out := executeCombine(t, shares[1].Encode(), shares[2].Encode(), "--format", "utf8")
		require.Equal(t, "my passphrase\n", out)
	})

	t.Run("format from environment variable", func(t *testing.T) {
		require.NoError(t, os.Setenv(formatEnvKey, "base64"))

		defer func() { require.NoError(t, os.Unsetenv(formatEnvKey)) }()

		out := executeCombine(t, "1:Aw==", "3:BQ==")
		require.Equal(t, "AA==\n", out)
	})
}

func TestCombineCmdOutputFile(t *testing.T) {
	os.Clearenv()

	splitter := base.Splitter{}

	shares, err := splitter.Split([]byte{0xCA, 0xFE})
	require.NoError(t, err)

	t.Run("hex output file holds the formatted text", func(t *testing.T) {
		outputFile := filepath.Join(tempDir(t), "secret.txt")

		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{shares[0].Encode(), shares[1].Encode(), "--output", outputFile})
		require.NoError(t, combineCmd.Execute())

		contents, err := ioutil.ReadFile(outputFile)
		require.NoError(t, err)
		require.Equal(t, "0xcafe\n", string(contents))
	})

	t.Run("non-hex output file holds the raw bytes", func(t *testing.T) {
		outputFile := filepath.Join(tempDir(t), "secret.bin")

		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{
			shares[1].Encode(), shares[2].Encode(), "--format", "base64", "--output", outputFile,
		})
		require.NoError(t, combineCmd.Execute())

		contents, err := ioutil.ReadFile(outputFile)
		require.NoError(t, err)
		require.Equal(t, []byte{0xCA, 0xFE}, contents)
	})
}

func TestCombineCmdValidation(t *testing.T) {
	os.Clearenv()

	t.Run("wrong number of shares", func(t *testing.T) {
		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{"1:Aw=="})
		combineCmd.SetOut(&bytes.Buffer{})
		combineCmd.SetErr(&bytes.Buffer{})

		require.Error(t, combineCmd.Execute())
	})

	t.Run("malformed share", func(t *testing.T) {
		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{"not-a-share", "2:Bg=="})

		err := combineCmd.Execute()
		require.True(t, errors.Is(err, sss.ErrInvalidShare))
	})

	t.Run("duplicate share index", func(t *testing.T) {
		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{"1:Aw==", "1:Aw=="})

		err := combineCmd.Execute()
		require.True(t, errors.Is(err, sss.ErrDuplicateShare))
	})

	t.Run("mismatched share lengths", func(t *testing.T) {
		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{"1:Aw==", "2:AQID"})

		err := combineCmd.Execute()
		require.True(t, errors.Is(err, sss.ErrInvalidShare))
	})

	t.Run("unknown format", func(t *testing.T) {
		combineCmd := GetCombineCmd()
		combineCmd.SetArgs([]string{"1:Aw==", "2:Bg==", "--format", "yaml"})

		err := combineCmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown secret format")
	})
}

func executeCombine(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	combineCmd := GetCombineCmd()
	combineCmd.SetOut(&out)
	combineCmd.SetArgs(args)

	require.NoError(t, combineCmd.Execute())

	return out.String()
}

func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "combinecmd")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, os.RemoveAll(dir))
	})

	return dir
}
