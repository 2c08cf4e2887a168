package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Tracker renders a spinner with a counter while a long store operation runs.
// A nil Tracker is valid and renders nothing, so library code can thread an
// optional tracker without branching.
type Tracker struct {
	mu        sync.Mutex
	out       io.Writer
	total     int
	current   int
	message   string
	startTime time.Time
	done      chan struct{}
}

// New starts a tracker writing to out. Pass a nil out to disable rendering.
func New(out io.Writer, total int, message string) *Tracker {
	if out == nil {
		return nil
	}
	p := &Tracker{
		out:       out,
		total:     total,
		message:   message,
		startTime: time.Now(),
		done:      make(chan struct{}),
	}
	go p.render()
	return p
}

func (p *Tracker) render() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-p.done:
			p.mu.Lock()
			elapsed := time.Since(p.startTime)
			fmt.Fprintf(p.out, "\r✓ %s (%d items, %s)          \n",
				p.message, p.total, elapsed.Round(time.Millisecond))
			p.mu.Unlock()
			return

		case <-ticker.C:
			p.mu.Lock()
			if p.total > 0 {
				percent := float64(p.current) / float64(p.total) * 100
				fmt.Fprintf(p.out, "\r%s %s [%d/%d] %.0f%%  ",
					spinnerFrames[frame%len(spinnerFrames)],
					p.message, p.current, p.total, percent)
			} else {
				fmt.Fprintf(p.out, "\r%s %s [%d items]  ",
					spinnerFrames[frame%len(spinnerFrames)],
					p.message, p.current)
			}
			p.mu.Unlock()
			frame++
		}
	}
}

func (p *Tracker) Increment() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.current++
	p.mu.Unlock()
}

func (p *Tracker) Finish() {
	if p == nil {
		return
	}
	close(p.done)
	time.Sleep(1 * time.Millisecond)
}
