// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package ratelimit throttles outbound remote git operations (ls-remote
// and clone) so a workspace with many git-sourced bundles doesn't hit
// a forge's abuse-detection limits during a single install.
package ratelimit

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

// DefaultPerSecond is the steady-state rate allowed for remote git
// operations when a workspace doesn't configure one explicitly.
const DefaultPerSecond = 5

// DefaultBurst lets a handful of operations fire back-to-back before
// throttling kicks in, since most installs touch only a few bundles.
const DefaultBurst = 3

// Limiter gates remote git operations with a token bucket.
type Limiter struct {
	rl *rate.Limiter
}

// New creates a Limiter allowing perSecond operations steady-state with
// room for burst operations in a row. perSecond <= 0 falls back to
// DefaultPerSecond.
func New(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		perSecond = DefaultPerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until the limiter admits one remote operation, or ctx is
// cancelled first.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.rl.Wait(ctx)
}

// Backoff computes an exponential backoff duration for the given retry
// attempt (0-indexed), capped at 60 seconds and jittered by up to 10% so
// concurrent retries after a shared failure don't all retry in lockstep.
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	backoff := time.Duration(1<<uint(attempt)) * time.Second
	if backoff > 60*time.Second {
		backoff = 60 * time.Second
	}
	jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
	return backoff + jitter
}
