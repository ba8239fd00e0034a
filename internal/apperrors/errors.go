// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package apperrors defines the stable error taxonomy shared by every
// augent component. Each sentinel carries a programmatic Code (see the
// external interfaces: these codes are part of the on-disk/CLI contract)
// and participates in errors.Is/errors.As via wrapping.
package apperrors

import (
	"errors"
	"fmt"
)

// Code is a stable, "::"-namespaced identifier (e.g. "bundle::not_found")
// for programmatic consumption.
type Code string

const (
	CodeInvalidSourceURL       Code = "source::invalid_url"
	CodeSourceParseFailed      Code = "source::parse_failed"
	CodeInvalidBundleName      Code = "bundle::invalid_name"
	CodeBundleValidationFailed Code = "bundle::validation_failed"
	CodeBundleNotFound         Code = "bundle::not_found"
	CodeConfigParseFailed      Code = "config::parse_failed"
	CodeConfigInvalid          Code = "config::invalid"

	CodeGitOperationFailed  Code = "git::operation_failed"
	CodeGitCloneFailed      Code = "git::clone_failed"
	CodeGitRefResolveFailed Code = "git::ref_resolve_failed"
	CodeGitCheckoutFailed   Code = "git::checkout_failed"

	CodeCircularDependency Code = "deps::circular"
	CodeDependencyNotFound Code = "deps::not_found"

	CodeWorkspaceNotFound Code = "workspace::not_found"
	CodeWorkspaceLocked   Code = "workspace::locked"
	CodeLockfileOutdated  Code = "lockfile::outdated"
	CodeLockfileMissing   Code = "lockfile::missing"
	CodeHashMismatch      Code = "lockfile::hash_mismatch"

	CodePlatformNotSupported Code = "platform::not_supported"
	CodeNoPlatformsDetected  Code = "platform::none_detected"
	CodePlatformConfigFailed Code = "platform::config_failed"

	CodeFileNotFound     Code = "fs::not_found"
	CodeFileReadFailed   Code = "fs::read_failed"
	CodeFileWriteFailed  Code = "fs::write_failed"
	CodeIoError          Code = "fs::io_error"
	CodeCacheOperationFailed Code = "cache::operation_failed"
)

// Error is the concrete error type carried by every failure that
// crosses a component boundary. Help is optional remediation text shown
// to interactive users; it never affects Code or Is() matching.
type Error struct {
	Code    Code
	Message string
	Help    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an *Error with no cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs an *Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithHelp attaches remediation text and returns the receiver for chaining.
func (e *Error) WithHelp(help string) *Error {
	e.Help = help
	return e
}

// Wrap associates err with target so that Is(Wrap(err, target), target)
// holds, preserving err as the printable cause. A nil err yields target
// itself (so the sentinel's own message surfaces); a nil target returns
// err unchanged.
func Wrap(err, target error) error {
	if err == nil {
		return target
	}
	if target == nil {
		return err
	}
	return fmt.Errorf("%w: %w", target, err)
}

// WrapWithMessage annotates err with a contextual message while
// preserving it as the Unwrap() chain's cause. Returns nil for a nil err.
func WrapWithMessage(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether err matches target anywhere in its wrap chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

type coder interface{ Code() Code }

// CodeOf extracts the stable Code from err if it (or something it
// wraps) is an *Error or implements Code() Code; returns "" otherwise.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// Sentinel errors for conditions identified by name rather than by a
// dynamic message, per the spec's §7 taxonomy.
var (
	ErrBundleNotFound      = New(CodeBundleNotFound, "bundle not found")
	ErrInvalidSource       = New(CodeInvalidSourceURL, "invalid source")
	ErrCircularDependency  = New(CodeCircularDependency, "circular dependency")
	ErrDependencyNotFound  = New(CodeDependencyNotFound, "dependency not found")
	ErrWorkspaceNotFound   = New(CodeWorkspaceNotFound, "workspace not found")
	ErrWorkspaceLocked     = New(CodeWorkspaceLocked, "workspace already locked by another process").WithHelp("wait for the other process to finish or remove the lock file manually")
	ErrLockfileOutdated    = New(CodeLockfileOutdated, "lockfile is out of date").WithHelp("run install to update the lockfile")
	ErrLockfileMissing     = New(CodeLockfileMissing, "lockfile is missing").WithHelp("run install to generate a lockfile")
	ErrNoPlatformsDetected = New(CodeNoPlatformsDetected, "no platforms detected in workspace").WithHelp("create at least one platform directory (e.g. .cursor/, .claude/)")
)

// CircularDependencyError carries the discovered cycle chain for
// rendering (e.g. "a -> b -> a").
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	s := e.Chain[0]
	for _, n := range e.Chain[1:] {
		s += " -> " + n
	}
	return "circular dependency detected: " + s
}

func (e *CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// DependencyNotFoundError names the missing dependency.
type DependencyNotFoundError struct {
	Name string
}

func (e *DependencyNotFoundError) Error() string {
	return "dependency not found: " + e.Name
}

func (e *DependencyNotFoundError) Is(target error) bool {
	return target == ErrDependencyNotFound
}

// HashMismatchError names the bundle whose content diverged from its
// recorded lockfile hash.
type HashMismatchError struct {
	Name string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("hash mismatch for bundle %q", e.Name)
}

func (e *HashMismatchError) Code() Code { return CodeHashMismatch }
