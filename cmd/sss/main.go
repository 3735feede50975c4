/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// sss is a fully offline 2-of-3 secret sharing tool: it splits a secret into
// three shares, any two of which recover it exactly.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/letsgoexplore/shamir-secret-sharing/cmd/sss/combinecmd"
	"github.com/letsgoexplore/shamir-secret-sharing/cmd/sss/splitcmd"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/log"
	cmdutils "github.com/letsgoexplore/shamir-secret-sharing/pkg/utils/cmd"
)

const (
	logSpecFlagName  = "log-spec"
	logSpecEnvKey    = "SSS_LOG_SPEC"
	logSpecFlagUsage = "Log specification of the form ModuleName1=Level1:ModuleName2=Level2:DefaultLevel." +
		" Valid levels: critical, error, warning, info, debug." +
		" Alternatively, this can be set with the following environment variable: " + logSpecEnvKey
)

var logger = log.New("sss-cli") // nolint:gochecknoglobals // package logger

func main() {
	rootCmd := &cobra.Command{
		Use:          "sss",
		Short:        "2-of-3 secret sharing tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogSpec(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP(logSpecFlagName, "", "", logSpecFlagUsage)

	rootCmd.AddCommand(splitcmd.GetSplitCmd(), combinecmd.GetCombineCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("run sss: %s", err)
		os.Exit(1)
	}
}

func setLogSpec(cmd *cobra.Command) error {
	spec, err := cmdutils.GetUserSetVarFromString(cmd, logSpecFlagName, logSpecEnvKey, true)
	if err != nil {
		return err
	}

	if spec == "" {
		return nil
	}

	return log.SetSpec(spec)
}
