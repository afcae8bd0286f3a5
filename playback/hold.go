// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"log"

	"github.com/ik5/pcmextract/utils"
)

// holdState is everything the callback needs for one Play. It is owned by
// the callback closure alone; the only thing that leaves it is the
// completion rendezvous.
type holdState struct {
	window   []int16
	factor   int
	channels int

	frame     int
	signalled bool
}

// fill writes the next frames, repeating each source sample factor times
// on every channel, and silence once the window is exhausted. It reports
// whether the end of the window has been reached.
func (h *holdState) fill(out []float32) bool {
	ch := h.channels
	n := len(out) - len(out)%ch

	for i := 0; i < n; i += ch {
		var v float32
		if idx := h.frame / h.factor; idx < len(h.window) {
			v = utils.Int16ToFloat32(h.window[idx])
			h.frame++
		}
		for c := range ch {
			out[i+c] = v
		}
	}
	clear(out[n:])

	return h.frame/h.factor >= len(h.window)
}

// callback wraps fill for a device. The first time the window end is
// reached it blocks on done until the controller takes it, once.
func (h *holdState) callback(done chan<- struct{}, logger *log.Logger) Callback {
	return func(out []float32) {
		defer func() {
			if r := recover(); r != nil {
				logger.Printf("playback callback: %v, going silent", r)
				clear(out)
				h.finish(done)
			}
		}()

		if h.fill(out) {
			h.finish(done)
		}
	}
}

func (h *holdState) finish(done chan<- struct{}) {
	if h.signalled {
		return
	}
	h.signalled = true
	done <- struct{}{}
}
