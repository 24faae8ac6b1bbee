package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// terminalView prints controller output. Status snapshots repeat every
// earlier message, so only lines not printed yet are written.
type terminalView struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	last   string
}

func newTerminalView(out, errOut io.Writer) *terminalView {
	return &terminalView{out: out, errOut: errOut}
}

// SetSubmitEnabled is a no-op: the terminal client submits a single job
func (v *terminalView) SetSubmitEnabled(bool) {}

func (v *terminalView) ClearMessage() {}

func (v *terminalView) ShowError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.errOut, "Error: %s\n", msg)
}

func (v *terminalView) ShowSuccess(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, msg)
}

func (v *terminalView) SetStatusText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	added := newLines(v.last, text)
	v.last = text
	if added != "" {
		fmt.Fprintln(v.out, added)
	}
}

// newLines returns the part of text that follows prev, or all of text when
// the backend started a new message list
func newLines(prev, text string) string {
	switch {
	case text == prev:
		return ""
	case prev != "" && strings.HasPrefix(text, prev+"\n"):
		return text[len(prev)+1:]
	default:
		return text
	}
}
