package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

// progressLine draws one progress bar per analysis on a single terminal line.
type progressLine struct {
	mu  sync.Mutex
	w   io.Writer
	bar progress.Model
}

func newProgressLine(w io.Writer) *progressLine {
	return &progressLine{
		w:   w,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Track returns a trial progress callback labelled with label.
func (p *progressLine) Track(label string) func(done, total int) {
	return func(done, total int) {
		p.mu.Lock()
		defer p.mu.Unlock()

		pct := float64(done) / float64(max(total, 1))
		fmt.Fprintf(p.w, "\r%-32s %s %d/%d", label, p.bar.ViewAs(pct), done, total)
		if done >= total {
			fmt.Fprintln(p.w)
		}
	}
}
