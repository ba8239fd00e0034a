// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package logging

import "testing"

func TestLevelFromFlags(t *testing.T) {
	if LevelFromFlags(true, true) != LevelVerbose {
		t.Error("expected verbose to win when both flags are set")
	}
	if LevelFromFlags(false, true) != LevelQuiet {
		t.Error("expected quiet when only quiet is set")
	}
	if LevelFromFlags(false, false) != LevelNormal {
		t.Error("expected normal when neither flag is set")
	}
}

func TestNewDoesNotPanicAtAnyLevel(t *testing.T) {
	for _, lvl := range []Level{LevelQuiet, LevelNormal, LevelVerbose} {
		l := New(lvl)
		l.Debug("debug message", "k", "v")
		l.Info("info message")
		l.Warn("warn message")
		l.Error("error message")
		_ = l.Sync()
	}
}

func TestConfigureReplacesGlobalLogger(t *testing.T) {
	original := current
	defer func() { current = original }()

	Configure(New(LevelVerbose))
	Debug("should not panic")

	Configure(nil)
	if current == nil {
		t.Error("Configure(nil) should leave the existing logger in place")
	}
}
