package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether w is a terminal. Buffers and pipes are not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// enabled resolves a config switch: an explicit value wins, otherwise the
// feature is on for terminals.
func enabled(v *bool, w io.Writer) bool {
	if v != nil {
		return *v
	}
	return isTerminal(w)
}
