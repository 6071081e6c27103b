// Package quiet provides a reference-counted gate for strategy output.
//
// Strategy loggers write through a Gate. While at least one batch holds
// the gate, writes are dropped; the last release reopens it.
package quiet

import (
	"io"
	"os"
	"sync"
)

// Gate is an io.Writer that discards output while held.
type Gate struct {
	mu    sync.Mutex
	out   io.Writer
	holds int
}

// New returns an open gate writing to out.
func New(out io.Writer) *Gate {
	return &Gate{out: out}
}

var std = New(os.Stderr)

// Default returns the process-wide gate, writing to stderr.
func Default() *Gate { return std }

// Acquire closes the gate until the returned release is called. Release is
// safe to call more than once; only the first call counts.
func (g *Gate) Acquire() (release func()) {
	g.mu.Lock()
	g.holds++
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.holds--
			g.mu.Unlock()
		})
	}
}

// Suppressed reports whether any holder has the gate closed.
func (g *Gate) Suppressed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.holds > 0
}

// Holds returns the number of outstanding holds.
func (g *Gate) Holds() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.holds
}

// Write forwards p to the underlying writer unless the gate is held.
// Suppressed writes report success.
func (g *Gate) Write(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.holds > 0 {
		return len(p), nil
	}
	return g.out.Write(p)
}
