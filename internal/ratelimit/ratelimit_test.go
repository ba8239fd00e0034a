// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNewFallsBackToDefaults(t *testing.T) {
	l := New(0, 0)
	if l == nil || l.rl == nil {
		t.Fatal("New returned a Limiter with no underlying rate.Limiter")
	}
}

func TestWaitReturnsImmediatelyWithinBurst(t *testing.T) {
	l := New(100, 5)
	ctx := context.Background()

	start := time.Now()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("Wait() took %v, want near-immediate within burst", elapsed)
	}
}

func TestWaitRespectsCancellation(t *testing.T) {
	l := New(0.001, 1)
	l.Wait(context.Background()) // consume the single burst token

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected an error when ctx is already cancelled")
	}
}

func TestBackoffCapsAt60Seconds(t *testing.T) {
	if d := Backoff(10); d > 66*time.Second {
		t.Errorf("Backoff(10) = %v, want capped near 60s", d)
	}
}

func TestBackoffGrowsWithAttempt(t *testing.T) {
	small := Backoff(0)
	large := Backoff(4)
	if large <= small {
		t.Errorf("Backoff(4) = %v, want greater than Backoff(0) = %v", large, small)
	}
}

func TestBackoffNegativeAttemptTreatedAsZero(t *testing.T) {
	if d := Backoff(-1); d < time.Second || d > 1100*time.Millisecond {
		t.Errorf("Backoff(-1) = %v, expected a negative attempt to behave like attempt 0 (1s to 1.1s)", d)
	}
}
