/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/log"
)

func TestSetLogSpec(t *testing.T) {
	os.Clearenv()

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "sss"}
		cmd.Flags().StringP(logSpecFlagName, "", "", logSpecFlagUsage)

		return cmd
	}

	t.Run("no spec leaves levels untouched", func(t *testing.T) {
		require.NoError(t, setLogSpec(newCmd()))
	})

	t.Run("spec from flag", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set(logSpecFlagName, "sss-cli=debug:warning"))

		require.NoError(t, setLogSpec(cmd))
		require.Equal(t, log.DEBUG, log.GetLevel("sss-cli"))
	})

	t.Run("spec from environment variable", func(t *testing.T) {
		require.NoError(t, os.Setenv(logSpecEnvKey, "sss-cli/split=error:info"))

		defer func() { require.NoError(t, os.Unsetenv(logSpecEnvKey)) }()

		require.NoError(t, setLogSpec(newCmd()))
		require.Equal(t, log.ERROR, log.GetLevel("sss-cli/split"))
	})

	t.Run("invalid spec is rejected", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set(logSpecFlagName, "sss-cli=nope"))

		require.Error(t, setLogSpec(cmd))
	})
}
