// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"sync"
)

// mockDevice calls its callback from a goroutine with fixed-size buffers
// and records everything written, until Stop.
type mockDevice struct {
	format     Format
	frames     int
	startErr   error
	stopErr    error
	onCallback func(n int)

	mu       sync.Mutex
	written  []float32
	calls    int
	stop     chan struct{}
	finished chan struct{}
}

func newMockDevice(rate, channels, frames int) *mockDevice {
	return &mockDevice{
		format: Format{SampleRate: rate, Channels: channels},
		frames: frames,
	}
}

func (d *mockDevice) Format() Format { return d.format }

func (d *mockDevice) Start(cb Callback) error {
	if d.startErr != nil {
		return d.startErr
	}

	d.stop = make(chan struct{})
	d.finished = make(chan struct{})

	go func() {
		defer close(d.finished)

		buf := make([]float32, d.frames*d.format.Channels)
		for {
			select {
			case <-d.stop:
				return
			default:
			}

			cb(buf)

			d.mu.Lock()
			d.calls++
			n := d.calls
			d.written = append(d.written, buf...)
			d.mu.Unlock()

			if d.onCallback != nil {
				d.onCallback(n)
			}
		}
	}()

	return nil
}

func (d *mockDevice) Stop() error {
	if d.stop == nil {
		return errors.New("not started")
	}
	close(d.stop)
	<-d.finished
	d.stop = nil

	return d.stopErr
}

func (d *mockDevice) output() []float32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]float32(nil), d.written...)
}
