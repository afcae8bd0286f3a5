// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"sync"

	"github.com/ik5/pcmextract/playback"
)

var errNotStarted = errors.New("fake device not started")

// FakeDevice is a playback.Device that pulls frames on its own goroutine, the
// way a real audio thread does, and records everything written.
type FakeDevice struct {
	StartErr error

	format playback.Format
	frames int

	mu      sync.Mutex
	written []float32
	starts  int
	stop    chan struct{}
	done    chan struct{}
}

// NewFakeDevice returns a device that hands the callback buffers of frames
// frames each.
func NewFakeDevice(rate, channels, frames int) *FakeDevice {
	return &FakeDevice{
		format: playback.Format{SampleRate: rate, Channels: channels},
		frames: frames,
	}
}

func (d *FakeDevice) Format() playback.Format { return d.format }

func (d *FakeDevice) Start(cb playback.Callback) error {
	if d.StartErr != nil {
		return d.StartErr
	}

	d.mu.Lock()
	d.starts++
	d.written = d.written[:0]
	d.mu.Unlock()

	d.stop = make(chan struct{})
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)

		buf := make([]float32, d.frames*d.format.Channels)
		for {
			select {
			case <-d.stop:
				return
			default:
			}

			cb(buf)

			d.mu.Lock()
			d.written = append(d.written, buf...)
			d.mu.Unlock()
		}
	}()

	return nil
}

func (d *FakeDevice) Stop() error {
	if d.stop == nil {
		return errNotStarted
	}
	close(d.stop)
	<-d.done
	d.stop = nil

	return nil
}

// Written returns a copy of the output recorded since the last Start.
func (d *FakeDevice) Written() []float32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]float32(nil), d.written...)
}

// Starts counts calls to Start that succeeded.
func (d *FakeDevice) Starts() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.starts
}
