// Package diag provides the non-fatal reporting channel used by the
// relational operators. An operator that rejects its input writes a flaw
// line and hands the caller a sentinel instead of an error value, so a
// chain of malformed queries degrades to empty results rather than
// aborting the process.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Reporter writes flaw messages to an output stream and remembers the
// most recent one so callers can inspect why an operation failed.
type Reporter struct {
	mu   sync.Mutex
	out  io.Writer
	last error
}

// NewReporter creates a Reporter writing to out. A nil out defaults to
// os.Stdout.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out}
}

// Flaw reports a recoverable failure in the named operation. It always
// returns false so boolean-returning call sites can report and bail in
// one expression.
func (r *Reporter) Flaw(op string, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = err
	fmt.Fprintf(r.out, "FLAW in %s: %v\n", op, err)
	return false
}

// LastErr returns the most recently reported failure, or nil if none
// has been reported.
func (r *Reporter) LastErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// SetOutput redirects subsequent flaw messages to out.
func (r *Reporter) SetOutput(out io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = out
}
