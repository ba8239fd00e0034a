// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// Printer renders styled progress output for the command tree. The
// zero value writes to stdout.
type Printer struct {
	Out io.Writer
}

// NewPrinter returns a Printer writing to stdout.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout}
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Title prints a bold section header.
func (p *Printer) Title(msg string) {
	fmt.Fprintln(p.out(), titleStyle.Render(msg))
}

// Success prints a checkmark-prefixed message.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out(), okStyle.Render("✓ "+msg))
}

// Warning prints a warning-prefixed message.
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.out(), warnStyle.Render("! "+msg))
}

// Error prints an error-prefixed message.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out(), errStyle.Render("✗ "+msg))
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out(), dimStyle.Render(msg))
}

// KeyValue prints an indented "key: value" line with the key
// highlighted.
func (p *Printer) KeyValue(key, value string) {
	fmt.Fprintf(p.out(), "  %s %s\n", keyStyle.Render(key+":"), value)
}
