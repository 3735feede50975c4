/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"sync"

	"github.com/letsgoexplore/shamir-secret-sharing/pkg/internal/logging/modlog"
)

// Level defines a log level for logging messages.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// Logger - interface for moduled logger implementation.
type Logger interface {
	Fatalf(msg string, args ...interface{})
	Panicf(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// LoggerProvider - interface to provide custom logger implementations.
type LoggerProvider interface {
	GetLogger(module string) Logger
}

// nolint:gochecknoglobals // process-wide provider
var (
	loggerProviderInstance LoggerProvider
	loggerProviderOnce     sync.Once
)

// Initialize sets a custom logger provider. It may be called at most once,
// before any logging; later calls are ignored.
func Initialize(provider LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{custom: provider}
	})
}

func loggerProvider() LoggerProvider {
	loggerProviderOnce.Do(func() {
		// A custom provider was never supplied, fall back to the default
		// standard library backed implementation.
		loggerProviderInstance = &modlogProvider{}
	})

	return loggerProviderInstance
}

// modlogProvider wraps loggers from the custom provider (if any) with module
// level filtering, or hands out default module loggers.
type modlogProvider struct {
	custom LoggerProvider
}

// GetLogger returns a module-aware logger implementation.
func (p *modlogProvider) GetLogger(module string) Logger {
	if p.custom != nil {
		return modlog.NewModLog(p.custom.GetLogger(module), module)
	}

	return modlog.NewDefLog(module)
}
