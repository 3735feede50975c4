/*
Copyright SecureKey Technologies Inc. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

// Package cmd contains helpers for resolving command configuration from
// either command line flags or environment variables.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// GetUserSetVarFromString returns the value of the given flag if the user set it,
// otherwise the value of the given environment variable. When isOptional is
// false, a missing or empty value is an error.
func GetUserSetVarFromString(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %w", err)
		}

		if value == "" {
			return "", fmt.Errorf("%s value is empty", flagName)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional && !isSet {
		return "", nil
	}

	if !isOptional && !isSet {
		return "", fmt.Errorf("Neither %s (command line flag) nor %s (environment variable) have been set.",
			flagName, envKey)
	}

	if !isOptional && value == "" {
		return "", fmt.Errorf("%s value is empty", envKey)
	}

	return value, nil
}

// GetUserSetVarFromArrayString returns the values of the given string-array flag
// if the user set it, otherwise the value of the given environment variable
// split on commas. When isOptional is false, a missing or empty value is an error.
func GetUserSetVarFromArrayString(cmd *cobra.Command, flagName, envKey string, isOptional bool) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		values, err := cmd.Flags().GetStringArray(flagName)
		if err != nil {
			return nil, fmt.Errorf(flagName+" flag not found: %w", err)
		}

		if len(values) == 0 || (len(values) == 1 && values[0] == "") {
			return nil, fmt.Errorf("%s value is empty", flagName)
		}

		return values, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional && !isSet {
		return nil, nil
	}

	if !isOptional && !isSet {
		return nil, fmt.Errorf("Neither %s (command line flag) nor %s (environment variable) have been set.",
			flagName, envKey)
	}

	if !isOptional && value == "" {
		return nil, fmt.Errorf("%s value is empty", envKey)
	}

	return strings.Split(value, ","), nil
}
