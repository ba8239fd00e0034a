// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package apperrors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		wantIs error
	}{
		{
			name:   "wrap with target",
			err:    errors.New("original error"),
			target: ErrBundleNotFound,
			wantIs: ErrBundleNotFound,
		},
		{
			name:   "nil err returns target",
			err:    nil,
			target: ErrBundleNotFound,
			wantIs: ErrBundleNotFound,
		},
		{
			name:   "nil target returns err",
			err:    errors.New("original"),
			target: nil,
			wantIs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.target)
			if tt.wantIs != nil && !Is(got, tt.wantIs) {
				t.Errorf("Wrap() error should match %v", tt.wantIs)
			}
		})
	}
}

func TestWrapWithMessage(t *testing.T) {
	original := errors.New("original error")
	wrapped := WrapWithMessage(original, "context")

	if wrapped == nil {
		t.Fatal("WrapWithMessage should return non-nil error")
	}
	if !Is(wrapped, original) {
		t.Error("wrapped error should match original")
	}
	if WrapWithMessage(nil, "context") != nil {
		t.Error("WrapWithMessage(nil) should return nil")
	}
}

func TestTaxonomySentinelsDefined(t *testing.T) {
	sentinels := []error{
		ErrBundleNotFound,
		ErrInvalidSource,
		ErrCircularDependency,
		ErrDependencyNotFound,
		ErrWorkspaceNotFound,
		ErrWorkspaceLocked,
		ErrLockfileOutdated,
		ErrLockfileMissing,
		ErrNoPlatformsDetected,
	}
	for _, err := range sentinels {
		if err == nil {
			t.Error("sentinel error should not be nil")
		}
	}
}

func TestCircularDependencyError(t *testing.T) {
	err := &CircularDependencyError{Chain: []string{"a", "b", "a"}}
	if got := err.Error(); got != "circular dependency detected: a -> b -> a" {
		t.Errorf("unexpected message: %q", got)
	}
	if !Is(err, ErrCircularDependency) {
		t.Error("CircularDependencyError should match ErrCircularDependency")
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(ErrBundleNotFound) != CodeBundleNotFound {
		t.Error("CodeOf(ErrBundleNotFound) mismatch")
	}
	hm := &HashMismatchError{Name: "x"}
	if CodeOf(hm) != CodeHashMismatch {
		t.Error("CodeOf(HashMismatchError) mismatch")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("CodeOf(plain error) should be empty")
	}
}
