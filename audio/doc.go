// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives used to load reference clips.
//
// A Source yields interleaved float32 samples in [-1, 1]. The formats
// packages produce Sources; a Registry picks the right one by file
// extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.ForPath("clip.wav")
//
// LoadMono16 turns any Source into the 16-bit mono buffer that sits next to
// the decoded stream: channels are averaged by MonoMixer, the whole clip is
// resampled with Catmull-Rom interpolation and converted to int16.
//
// Sources return io.EOF, possibly together with the last samples, once the
// stream is exhausted.
package audio
