// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF files through github.com/go-audio/aiff.
//
// WriteAIFF16 mirrors wav.WriteWAV16 for exports whose path ends in .aif or
// .aiff. Decoder opens 8 to 32-bit integer AIFF files as an audio.Source.
package aiff
