// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package logging

var current = New(LevelNormal)

// Configure replaces the package-level Logger every other internal
// package logs through. Called once at CLI startup with the level
// resolved from --verbose/--quiet.
func Configure(l *Logger) {
	if l != nil {
		current = l
	}
}

// Debug logs through the package-level Logger.
func Debug(msg string, keysAndValues ...interface{}) { current.Debug(msg, keysAndValues...) }

// Info logs through the package-level Logger.
func Info(msg string, keysAndValues ...interface{}) { current.Info(msg, keysAndValues...) }

// Warn logs through the package-level Logger.
func Warn(msg string, keysAndValues ...interface{}) { current.Warn(msg, keysAndValues...) }

// Error logs through the package-level Logger.
func Error(msg string, keysAndValues ...interface{}) { current.Error(msg, keysAndValues...) }
