package net

import (
	"fmt"
	"io"
)

// Reporter receives progress notifications from long-running passes such as
// Train and the weight dump/load. The network holds a Reporter but never
// owns it; reporting is incidental I/O, not part of the core contract, and
// a no-op implementation is always a legal collaborator.
type Reporter interface {
	// Progress is called after each completed unit of work.
	Progress(title string, count, total int)

	// Done is called once when the pass finishes.
	Done(title string)
}

// NopReporter discards all notifications.
type NopReporter struct{}

func (NopReporter) Progress(title string, count, total int) {}
func (NopReporter) Done(title string)                       {}

// ConsoleReporter prints a single self-overwriting percentage line per
// pass, in the style "\rTraining Network: 100 / 60000 (0.17%)".
type ConsoleReporter struct {
	W io.Writer
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{W: w}
}

// Progress rewrites the current line with the count and percentage. The
// leading carriage return keeps the message on a single console line.
func (c *ConsoleReporter) Progress(title string, count, total int) {
	percent := float64(count) / float64(total) * 100
	fmt.Fprintf(c.W, "\r%s: %d / %d (%.2f%%)", title, count, total, percent)
}

// Done terminates the progress line.
func (c *ConsoleReporter) Done(title string) {
	fmt.Fprintln(c.W)
}
