/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const logSpecSeparator = ":"

// SetSpec sets log levels for modules from a specification string of the form
// ModuleName1=Level1:ModuleName2=Level2:AllOtherModuleDefaultLevel.
// Valid log levels: critical, error, warning, info, debug.
// Nothing is applied unless the whole specification is valid.
func SetSpec(spec string) error {
	type moduleLevel struct {
		module string
		level  Level
	}

	var levels []moduleLevel

	defaultLevelSet := false

	for _, entry := range strings.Split(spec, logSpecSeparator) {
		parts := strings.Split(entry, "=")

		switch len(parts) {
		case 1:
			if defaultLevelSet {
				return errors.New("multiple default values found")
			}

			level, err := ParseLevel(parts[0])
			if err != nil {
				return fmt.Errorf("parse default log level: %w", err)
			}

			levels = append(levels, moduleLevel{module: "", level: level})
			defaultLevelSet = true
		case 2: // nolint:gomnd // module=level
			level, err := ParseLevel(parts[1])
			if err != nil {
				return fmt.Errorf("parse log level for module [%s]: %w", parts[0], err)
			}

			levels = append(levels, moduleLevel{module: parts[0], level: level})
		default:
			return fmt.Errorf("invalid log spec entry [%s]", entry)
		}
	}

	for _, ml := range levels {
		SetLevel(ml.module, ml.level)
	}

	return nil
}

// GetSpec returns the current log specification in the same format accepted by SetSpec.
// The default level (the one for modules with no explicit setting) comes last.
func GetSpec() string {
	var entries []string

	for module, level := range GetAllLevels() {
		if module == "" {
			continue
		}

		entries = append(entries, fmt.Sprintf("%s=%s", module, ParseString(level)))
	}

	sort.Strings(entries)

	entries = append(entries, ParseString(GetLevel("")))

	return strings.Join(entries, logSpecSeparator)
}
