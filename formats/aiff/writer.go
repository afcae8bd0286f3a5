// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

const chunkSize = 8192

// WriteAIFF16 writes samples as a mono 16-bit AIFF at sampleRate.
func WriteAIFF16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := aiff.NewEncoder(w, sampleRate, 16, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, min(len(samples), chunkSize)),
	}

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing header: %w", err)
	}

	return nil
}
