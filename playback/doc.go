// SPDX-License-Identifier: EPL-2.0

// Package playback streams decoded 16-bit buffers to an audio output.
//
// A Device pulls interleaved float32 frames at its native rate through a
// Callback running on its own thread. The Scheduler answers those calls by
// holding each decoded sample for a fixed number of device frames (zero-order
// hold) and meets the caller in a two-party rendezvous once the window is
// used up:
//
//	dev, err := portaudio.Open(logger)
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//
//	s := playback.NewScheduler(dev, playback.WithHoldFactor(3))
//	err = s.Play(samples, 0, len(samples))
//
// Backends live in the portaudio and malgo subpackages.
package playback
