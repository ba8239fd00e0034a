// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cliutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterSuccessIncludesMessage(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Success("installed 3 resources")

	if !strings.Contains(buf.String(), "installed 3 resources") {
		t.Errorf("expected message in output, got %q", buf.String())
	}
}

func TestPrinterKeyValueFormatsBoth(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.KeyValue("hash", "abc123")

	out := buf.String()
	if !strings.Contains(out, "hash:") || !strings.Contains(out, "abc123") {
		t.Errorf("expected key and value in output, got %q", out)
	}
}
