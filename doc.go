// SPDX-License-Identifier: EPL-2.0

// Package pcmextract is an interactive workbench for recovering audio from
// raw byte dumps that are believed to hold 8-bit PCM or a simple predictive
// variant of it.
//
// The work happens in the subpackages:
//   - decode turns bytes into 16-bit samples under a Config (bit
//     representation, predictive reconstruction, stride and window)
//   - session keeps the raw stream, the current Config and the last decoded
//     buffer, recomputing atomically on every change
//   - playback plays a window of the buffer on an output device, holding
//     each sample for several device frames
//   - shell and ui drive all of it from a terminal
//
// This package ties the file side together:
//
//	raw, _ := pcmextract.LoadRaw("dump.bin")
//	s, _ := session.New(raw, decode.DefaultConfig(len(raw)))
//	// ... tweak the config ...
//	_ = pcmextract.Export("out.wav", s.Samples(), pcmextract.SampleRate)
//
// OpenReference loads a known-good recording (WAV, AIFF, MP3 or Ogg
// Vorbis) as 16 kHz mono so it can be plotted and played next to the
// decoded stream.
package pcmextract
