/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package combinecmd contains the command recovering a secret from two shares.
package combinecmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/log"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/secretfmt"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss/base"
	cmdutils "github.com/letsgoexplore/shamir-secret-sharing/pkg/utils/cmd"
)

const (
	formatFlagName  = "format"
	formatEnvKey    = "SSS_SECRET_FORMAT"
	formatFlagUsage = "Format to render the recovered secret in: hex, base64 or utf8. Defaults to hex." +
		" Alternatively, this can be set with the following environment variable: " + formatEnvKey

	outputFlagName      = "output"
	outputFlagShorthand = "o"
	outputFlagUsage     = "Path of a file to write the recovered secret to instead of stdout." +
		" The file holds the formatted text for hex, and the raw secret bytes otherwise."

	secretFilePerm = 0600
)

var logger = log.New("sss-cli/combine") // nolint:gochecknoglobals // package logger

// GetCombineCmd returns the Cobra combine command.
func GetCombineCmd() *cobra.Command {
	combineCmd := &cobra.Command{
		Use:   "combine <share> <share>",
		Short: "Recover a secret from two shares",
		Long: "Recover a secret from any two of the three shares produced by split." +
			" Shares are passed in their <index>:<base64> form.",
		Args: cobra.ExactArgs(2), // nolint:gomnd // threshold
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, args)
		},
	}

	combineCmd.Flags().StringP(formatFlagName, "", "", formatFlagUsage)
	combineCmd.Flags().StringP(outputFlagName, outputFlagShorthand, "", outputFlagUsage)

	return combineCmd
}

func runCombine(cmd *cobra.Command, args []string) error {
	shareA, err := sss.ParseShare(args[0])
	if err != nil {
		return err
	}

	shareB, err := sss.ParseShare(args[1])
	if err != nil {
		return err
	}

	splitter := base.Splitter{}

	secret, err := splitter.Combine(shareA, shareB)
	if err != nil {
		return err
	}

	format, err := getFormat(cmd)
	if err != nil {
		return err
	}

	encoded, err := secretfmt.Encode(format, secret)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString(outputFlagName)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), encoded)

		return nil
	}

	contents := secret
	if format == secretfmt.FormatHex {
		contents = []byte(encoded + "\n")
	}

	if err := ioutil.WriteFile(output, contents, secretFilePerm); err != nil {
		return fmt.Errorf("write recovered secret: %w", err)
	}

	logger.Infof("wrote recovered secret to %s", output)

	return nil
}

func getFormat(cmd *cobra.Command) (string, error) {
	format, err := cmdutils.GetUserSetVarFromString(cmd, formatFlagName, formatEnvKey, true)
	if err != nil {
		return "", err
	}

	if format == "" {
		format = secretfmt.FormatHex
	}

	return format, nil
}
