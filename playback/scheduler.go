// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"log"
	"math"
	"slices"
)

// DefaultSourceRate is the logical rate of decoded buffers.
const DefaultSourceRate = 16000

// Scheduler plays windows of a decoded buffer on a Device, up-sampling by
// an integer zero-order hold to the device rate.
type Scheduler struct {
	dev        Device
	sourceRate int
	hold       int
	logger     *log.Logger
}

type Option func(*Scheduler)

// WithHoldFactor fixes how many device frames each source sample spans.
// Zero or less derives it from the device and source rates.
func WithHoldFactor(n int) Option {
	return func(s *Scheduler) { s.hold = n }
}

// WithSourceRate sets the rate the decoded buffer is meant to play at.
func WithSourceRate(hz int) Option {
	return func(s *Scheduler) { s.sourceRate = hz }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

func NewScheduler(dev Device, opts ...Option) *Scheduler {
	s := &Scheduler{
		dev:        dev,
		sourceRate: DefaultSourceRate,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.hold <= 0 {
		s.hold = holdFactor(dev.Format().SampleRate, s.sourceRate)
	}

	return s
}

// HoldFactor is the number of device frames per source sample.
func (s *Scheduler) HoldFactor() int { return s.hold }

// Format is the format of the underlying device.
func (s *Scheduler) Format() Format { return s.dev.Format() }

// Play streams samples[from:to], clamped to the buffer, and returns once
// the device callback has consumed the whole window. There is no
// cancellation; the wait is bounded by the window length.
//
// The window is copied before the device starts, so the caller may
// recompute its buffer while the device is playing.
func (s *Scheduler) Play(samples []int16, from, to int) error {
	format := s.dev.Format()
	if err := format.Validate(); err != nil {
		return err
	}

	from, to = ClampWindow(len(samples), from, to)
	st := &holdState{
		window:   slices.Clone(samples[from:to]),
		factor:   s.hold,
		channels: format.Channels,
	}

	// unbuffered: the callback and this goroutine meet here
	done := make(chan struct{})

	if err := s.dev.Start(st.callback(done, s.logger)); err != nil {
		return fmt.Errorf("start output stream: %w", err)
	}

	<-done

	if err := s.dev.Stop(); err != nil {
		return fmt.Errorf("stop output stream: %w", err)
	}

	return nil
}

// ClampWindow limits [from, to) to a buffer of n samples. An inverted
// window becomes empty.
func ClampWindow(n, from, to int) (int, int) {
	from = min(max(from, 0), n)
	to = min(max(to, from), n)
	return from, to
}

func holdFactor(deviceRate, sourceRate int) int {
	if deviceRate <= 0 || sourceRate <= 0 {
		return 1
	}
	return max(1, int(math.Round(float64(deviceRate)/float64(sourceRate))))
}
