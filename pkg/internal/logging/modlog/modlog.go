/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog contains the default module-aware logger implementation along
// with a wrapper that adds module level filtering to custom loggers.
package modlog

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/internal/logging/metadata"
)

// Logger matches the leveled logging contract expected by the log facade.
// It is redeclared here to avoid an import cycle with the facade package.
type Logger interface {
	Fatalf(msg string, args ...interface{})
	Panicf(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// NewDefLog returns the default logger implementation for the given module,
// backed by the standard library logger.
func NewDefLog(module string) *DefLog {
	return &DefLog{
		logger: log.New(os.Stdout, fmt.Sprintf(" [%s] ", module), log.Ldate|log.Ltime|log.LUTC),
		module: module,
	}
}

// DefLog is a module-aware wrapper around the standard library logger.
type DefLog struct {
	logger *log.Logger
	module string
}

// Fatalf calls the underlying logger's Fatalf, which exits the process.
func (l *DefLog) Fatalf(msg string, args ...interface{}) {
	l.logger.Fatalf(l.decorate(metadata.CRITICAL, msg), args...)
}

// Panicf calls the underlying logger's Panicf.
func (l *DefLog) Panicf(msg string, args ...interface{}) {
	l.logger.Panicf(l.decorate(metadata.CRITICAL, msg), args...)
}

// Debugf logs at DEBUG level if enabled for the module.
func (l *DefLog) Debugf(msg string, args ...interface{}) {
	l.logMsg(metadata.DEBUG, msg, args...)
}

// Infof logs at INFO level if enabled for the module.
func (l *DefLog) Infof(msg string, args ...interface{}) {
	l.logMsg(metadata.INFO, msg, args...)
}

// Warnf logs at WARNING level if enabled for the module.
func (l *DefLog) Warnf(msg string, args ...interface{}) {
	l.logMsg(metadata.WARNING, msg, args...)
}

// Errorf logs at ERROR level if enabled for the module.
func (l *DefLog) Errorf(msg string, args ...interface{}) {
	l.logMsg(metadata.ERROR, msg, args...)
}

func (l *DefLog) logMsg(level metadata.Level, msg string, args ...interface{}) {
	if !metadata.IsEnabledFor(l.module, level) {
		return
	}

	l.logger.Printf(l.decorate(level, msg), args...)
}

func (l *DefLog) decorate(level metadata.Level, msg string) string {
	if metadata.IsCallerInfoEnabled(l.module, level) {
		return fmt.Sprintf("%s %s -> %s", callerInfo(), metadata.ParseString(level), msg)
	}

	return fmt.Sprintf("%s -> %s", metadata.ParseString(level), msg)
}

// callerInfo returns the file and line of the log call site, skipping the
// frames inside this package and the facade.
func callerInfo() string {
	const callDepth = 4

	_, file, line, ok := runtime.Caller(callDepth)
	if !ok {
		return "-"
	}

	return fmt.Sprintf("%s:%d", file, line)
}

// NewModLog returns a wrapper adding module level filtering to the given custom logger.
func NewModLog(logger Logger, module string) *ModLog {
	return &ModLog{logger: logger, module: module}
}

// ModLog applies the module's log level settings before delegating to a custom logger.
type ModLog struct {
	logger Logger
	module string
}

// Fatalf delegates unconditionally; fatal messages cannot be filtered out.
func (m *ModLog) Fatalf(msg string, args ...interface{}) {
	m.logger.Fatalf(msg, args...)
}

// Panicf delegates unconditionally.
func (m *ModLog) Panicf(msg string, args ...interface{}) {
	m.logger.Panicf(msg, args...)
}

// Debugf delegates if DEBUG is enabled for the module.
func (m *ModLog) Debugf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.DEBUG) {
		m.logger.Debugf(msg, args...)
	}
}

// Infof delegates if INFO is enabled for the module.
func (m *ModLog) Infof(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.INFO) {
		m.logger.Infof(msg, args...)
	}
}

// Warnf delegates if WARNING is enabled for the module.
func (m *ModLog) Warnf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.WARNING) {
		m.logger.Warnf(msg, args...)
	}
}

// Errorf delegates if ERROR is enabled for the module.
func (m *ModLog) Errorf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.ERROR) {
		m.logger.Errorf(msg, args...)
	}
}
