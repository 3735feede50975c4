/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package splitcmd contains the command splitting a secret into three shares.
package splitcmd

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/log"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/secretfmt"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/sss/base"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/storage"
	"github.com/letsgoexplore/shamir-secret-sharing/pkg/storage/filestore"
	cmdutils "github.com/letsgoexplore/shamir-secret-sharing/pkg/utils/cmd"
)

const (
	fileFlagName      = "file"
	fileFlagShorthand = "f"
	fileFlagUsage     = "Path of a file to read the raw secret bytes from, instead of passing the secret as an argument."

	formatFlagName  = "format"
	formatEnvKey    = "SSS_SECRET_FORMAT"
	formatFlagUsage = "Format of the secret argument: hex, base64 or utf8. Defaults to hex." +
		" Alternatively, this can be set with the following environment variable: " + formatEnvKey

	outputFlagName      = "output"
	outputFlagShorthand = "o"
	outputFlagUsage     = "Path of a file to write the three encoded shares to, one per line, instead of stdout."
)

var logger = log.New("sss-cli/split") // nolint:gochecknoglobals // package logger

type splitParameters struct {
	secret []byte
	output string
}

// GetSplitCmd returns the Cobra split command.
func GetSplitCmd() *cobra.Command {
	splitCmd := createSplitCmd()

	createFlags(splitCmd)

	return splitCmd
}

func createSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split [secret]",
		Short: "Split a secret into three shares",
		Long: "Split a secret into three shares such that any two of them recover it exactly," +
			" while a single share reveals nothing about it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := getSplitParameters(cmd, args)
			if err != nil {
				return err
			}

			return runSplit(cmd, parameters)
		},
	}
}

func createFlags(splitCmd *cobra.Command) {
	splitCmd.Flags().StringP(fileFlagName, fileFlagShorthand, "", fileFlagUsage)
	splitCmd.Flags().StringP(formatFlagName, "", "", formatFlagUsage)
	splitCmd.Flags().StringP(outputFlagName, outputFlagShorthand, "", outputFlagUsage)
}

func getSplitParameters(cmd *cobra.Command, args []string) (*splitParameters, error) {
	secret, err := getSecret(cmd, args)
	if err != nil {
		return nil, err
	}

	output, err := cmd.Flags().GetString(outputFlagName)
	if err != nil {
		return nil, err
	}

	return &splitParameters{secret: secret, output: output}, nil
}

func getSecret(cmd *cobra.Command, args []string) ([]byte, error) {
	secretFile, err := cmd.Flags().GetString(fileFlagName)
	if err != nil {
		return nil, err
	}

	if secretFile != "" {
		secret, err := ioutil.ReadFile(secretFile) // nolint:gosec // path comes from the --file flag
		if err != nil {
			return nil, fmt.Errorf("read secret file: %w", err)
		}

		return secret, nil
	}

	if len(args) == 0 {
		return nil, errors.New("no secret provided: pass it as an argument or use --" + fileFlagName)
	}

	format, err := getFormat(cmd)
	if err != nil {
		return nil, err
	}

	return secretfmt.Decode(format, args[0])
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

func runSplit(cmd *cobra.Command, parameters *splitParameters) error {
	splitter := base.Splitter{}

	shares, err := splitter.Split(parameters.secret)
	if err != nil {
		return err
	}

	if parameters.output == "" {
		for _, share := range shares {
			fmt.Fprintln(cmd.OutOrStdout(), share.Encode())
		}

		return nil
	}

	provider := filestore.NewProvider(filepath.Dir(parameters.output))

	if err := saveShares(provider, filepath.Base(parameters.output), shares); err != nil {
		return err
	}

	logger.Infof("wrote %d shares to %s", len(shares), parameters.output)

	return nil
}

// saveShares persists the given shares under their index keys, creating the
// store if it does not exist yet.
func saveShares(provider storage.Provider, name string, shares []sss.Share) error {
	err := provider.CreateStore(name)
	if err != nil && !errors.Is(err, storage.ErrDuplicateStore) {
		return fmt.Errorf("create share store: %w", err)
	}

	store, err := provider.OpenStore(name)
	if err != nil {
		return fmt.Errorf("open share store: %w", err)
	}

	for _, share := range shares {
		if err := store.Put(strconv.Itoa(int(share.Index)), share.Bytes); err != nil {
			return fmt.Errorf("store share %d: %w", share.Index, err)
		}
	}

	return nil
}
