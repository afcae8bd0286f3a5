// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// WriteWAV16 is the export path for decoded buffers: mono, 16-bit, any
// sample rate.
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.WriteWAV16(f, 16000, samples)
//
// Decoder opens integer PCM files (8, 16, 24 or 32 bits, any channel count)
// as an audio.Source so they can serve as reference clips. 8-bit data is
// unsigned in WAV and is re-centred on zero. Float and compressed WAV are
// rejected with ErrUnsupportedEncoding.
package wav
