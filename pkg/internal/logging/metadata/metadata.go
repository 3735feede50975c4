/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import "sync"

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

const defaultLogLevel = INFO

// nolint:gochecknoglobals // shared module registry
var registry = newModuleRegistry()

// SetLevel - setting log level for given module.
func SetLevel(module string, level Level) {
	registry.setLevel(module, level)
}

// GetLevel - getting log level for given module.
func GetLevel(module string) Level {
	return registry.getLevel(module)
}

// GetAllLevels - getting all registered modules and their levels.
func GetAllLevels() map[string]Level {
	return registry.getAllLevels()
}

// IsEnabledFor - checking if given log level is enabled for given module.
func IsEnabledFor(module string, level Level) bool {
	return level <= registry.getLevel(module)
}

// ShowCallerInfo - show caller info in log lines for given log level and module.
func ShowCallerInfo(module string, level Level) {
	registry.setCallerInfo(module, level, true)
}

// HideCallerInfo - do not show caller info in log lines for given log level and module.
func HideCallerInfo(module string, level Level) {
	registry.setCallerInfo(module, level, false)
}

// IsCallerInfoEnabled - returns if caller info is enabled for given log level and module.
// Caller info is enabled by default.
func IsCallerInfoEnabled(module string, level Level) bool {
	return registry.getCallerInfo(module, level)
}

type callerInfoKey struct {
	module string
	level  Level
}

type moduleRegistry struct {
	levels     map[string]Level
	callerInfo map[callerInfoKey]bool
	rwmutex    sync.RWMutex
}

func newModuleRegistry() *moduleRegistry {
	return &moduleRegistry{
		levels:     make(map[string]Level),
		callerInfo: make(map[callerInfoKey]bool),
	}
}

func (r *moduleRegistry) setLevel(module string, level Level) {
	r.rwmutex.Lock()
	defer r.rwmutex.Unlock()

	r.levels[module] = level
}

func (r *moduleRegistry) getLevel(module string) Level {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()

	level, exists := r.levels[module]
	if !exists {
		return defaultLogLevel
	}

	return level
}

func (r *moduleRegistry) getAllLevels() map[string]Level {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()

	levels := make(map[string]Level, len(r.levels))
	for module, level := range r.levels {
		levels[module] = level
	}

	return levels
}

func (r *moduleRegistry) setCallerInfo(module string, level Level, enabled bool) {
	r.rwmutex.Lock()
	defer r.rwmutex.Unlock()

	r.callerInfo[callerInfoKey{module, level}] = enabled
}

func (r *moduleRegistry) getCallerInfo(module string, level Level) bool {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()

	enabled, exists := r.callerInfo[callerInfoKey{module, level}]
	if !exists {
		return true
	}

	return enabled
}
