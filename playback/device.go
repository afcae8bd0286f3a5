// SPDX-License-Identifier: EPL-2.0

package playback

import "fmt"

// Format is the native stream configuration of an output device.
type Format struct {
	SampleRate int
	Channels   int
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch", f.SampleRate, f.Channels)
}

// Validate rejects formats a callback cannot be scheduled against.
func (f Format) Validate() error {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%s: %w", f, ErrInvalidFormat)
	}
	return nil
}

// Callback fills out with interleaved frames in [-1, 1]. len(out) is always
// a multiple of the channel count. It runs on the device's own goroutine
// or thread.
type Callback func(out []float32)

// Device is an audio output that pulls frames through a Callback.
type Device interface {
	// Format reports the stream configuration queried when the device was
	// opened.
	Format() Format
	// Start begins pulling frames from cb.
	Start(cb Callback) error
	// Stop halts the stream started by Start. No callback runs after Stop
	// returns.
	Stop() error
}
