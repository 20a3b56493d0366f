// Package smartio centralizes the IO surface of the argument engine: which
// writers receive help and diagnostic text, and whether that text may carry
// ANSI color.
package smartio

import (
	stdio "io"
	"os"
)

// Manager holds the reader/writers used by the engine and the color policy.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto restores environment-based color detection.
func (m *Manager) ColorAuto() *Manager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *Manager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer. Help text goes here.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer. Diagnostics go here.
func (m *Manager) Err() stdio.Writer { return m.err }

// SupportsColor reports whether output may carry ANSI escapes. Explicit
// configuration wins over NO_COLOR/FORCE_COLOR, which win over the tty probe.
func (m *Manager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !isTerminal(m.out) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// Colorize wraps s with the given ANSI SGR code (e.g. "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *Manager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *Manager) Faint(s string) string { return m.Colorize(s, "2") }

// Underline returns s underlined when supported; otherwise s unchanged.
func (m *Manager) Underline(s string) string { return m.Colorize(s, "4") }

// isTerminal reports whether w is a character device. Buffers and pipes are
// not, which keeps test output free of escapes.
func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
