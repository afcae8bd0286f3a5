// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"strings"
	"sync"
)

const DefaultLogSize = 1000

// RingLog keeps the last lines written to it. It is an io.Writer so a
// log.Logger can target it; writes may come from any goroutine.
type RingLog struct {
	mu      sync.Mutex
	lines   []string
	next    int
	full    bool
	partial strings.Builder
}

func NewRingLog(size int) *RingLog {
	return &RingLog{lines: make([]string, max(size, 1))}
}

func (r *RingLog) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest := string(p)
	for {
		line, after, found := strings.Cut(rest, "\n")
		if !found {
			r.partial.WriteString(line)
			break
		}
		r.partial.WriteString(line)
		r.push(r.partial.String())
		r.partial.Reset()
		rest = after
	}

	return len(p), nil
}

func (r *RingLog) push(line string) {
	r.lines[r.next] = line
	r.next = (r.next + 1) % len(r.lines)
	if r.next == 0 {
		r.full = true
	}
}

// Lines returns up to n of the most recent complete lines, oldest first.
func (r *RingLog) Lines(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := r.next
	if r.full {
		count = len(r.lines)
	}
	n = min(max(n, 0), count)

	out := make([]string, n)
	for i := range n {
		ix := (r.next - n + i + len(r.lines)) % len(r.lines)
		out[i] = r.lines[ix]
	}
	return out
}
