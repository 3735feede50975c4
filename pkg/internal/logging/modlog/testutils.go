/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/internal/logging/metadata"
)

// buffer collects output of loggers under test.
// nolint:gochecknoglobals // test sink shared between helper functions
var buffer bytes.Buffer

// SwitchLogOutputToBuffer redirects the given default logger to an internal
// buffer so tests can assert on the output.
func SwitchLogOutputToBuffer(logger Logger) {
	defLog, ok := logger.(*DefLog)
	if ok {
		defLog.logger.SetOutput(&buffer)
	}
}

// GetSampleCustomLogger returns a custom logger implementation writing to the
// internal buffer, for use in provider tests.
func GetSampleCustomLogger(module string) *SampleLog {
	return &SampleLog{logger: log.New(&buffer, fmt.Sprintf(" [%s] ", module), log.Ldate|log.Ltime|log.LUTC)}
}

// SampleLog is a trivial custom logger without level filtering of its own.
type SampleLog struct {
	logger *log.Logger
}

// Fatalf logs and exits.
func (s *SampleLog) Fatalf(msg string, args ...interface{}) {
	s.logger.Fatalf(msg, args...)
}

// Panicf logs and panics.
func (s *SampleLog) Panicf(msg string, args ...interface{}) {
	s.logger.Panicf(msg, args...)
}

// Debugf logs unconditionally.
func (s *SampleLog) Debugf(msg string, args ...interface{}) {
	s.logger.Printf(msg, args...)
}

// Infof logs unconditionally.
func (s *SampleLog) Infof(msg string, args ...interface{}) {
	s.logger.Printf(msg, args...)
}

// Warnf logs unconditionally.
func (s *SampleLog) Warnf(msg string, args ...interface{}) {
	s.logger.Printf(msg, args...)
}

// Errorf logs unconditionally.
func (s *SampleLog) Errorf(msg string, args ...interface{}) {
	s.logger.Printf(msg, args...)
}

// VerifyDefaultLogging asserts that the given logger honors module levels set
// through the given setLevel function.
func VerifyDefaultLogging(t *testing.T, logger Logger, module string, setLevel func(string, metadata.Level)) {
	t.Helper()

	setLevel(module, metadata.DEBUG)
	verifyEmitted(t, logger.Infof, "default logger info")
	verifyEmitted(t, logger.Debugf, "default logger debug")
	verifyEmitted(t, logger.Warnf, "default logger warn")
	verifyEmitted(t, logger.Errorf, "default logger error")

	setLevel(module, metadata.ERROR)
	verifySilent(t, logger.Infof, "filtered info")
	verifySilent(t, logger.Debugf, "filtered debug")
	verifySilent(t, logger.Warnf, "filtered warn")
	verifyEmitted(t, logger.Errorf, "error is still emitted")

	setLevel(module, metadata.DEBUG)
}

// VerifyCustomLogger asserts that a custom logger wrapped by ModLog honors module levels.
func VerifyCustomLogger(t *testing.T, logger Logger, module string) {
	t.Helper()

	VerifyDefaultLogging(t, logger, module, metadata.SetLevel)
}

func verifyEmitted(t *testing.T, logFn func(string, ...interface{}), msg string) {
	t.Helper()

	buffer.Reset()
	logFn(msg)
	require.Contains(t, buffer.String(), msg)
}

func verifySilent(t *testing.T, logFn func(string, ...interface{}), msg string) {
	t.Helper()

	buffer.Reset()
	logFn(msg)
	require.Empty(t, buffer.String())
}
