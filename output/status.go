// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/refactor/refactor"
)

const (
	ttyPrefix   = "\033[1m==>\033[0m "
	plainPrefix = ""
)

// writerIsTTY returns true if w exposes an Fd() method (e.g. *os.File) and
// that fd is a terminal. Plain io.Writer values such as *bytes.Buffer are not.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Status prints progress lines, one per call. On a terminal each line gets
// a bold "==>" marker; redirected output stays plain.
type Status struct {
	w      io.Writer
	prefix string
}

var _ refactor.Reporter = (*Status)(nil)

// NewStatus returns a Status writing to w.
func NewStatus(w io.Writer) *Status {
	prefix := plainPrefix
	if writerIsTTY(w) {
		prefix = ttyPrefix
	}
	return &Status{w: w, prefix: prefix}
}

// Status implements refactor.Reporter. Write errors are ignored; progress is
// best-effort and never fails a run.
func (s *Status) Status(msg string) {
	fmt.Fprintf(s.w, "%s%s\n", s.prefix, msg)
}
