// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// IntReader is the part of the go-audio wav and aiff decoders that
// IntSource needs.
type IntReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// IntSource adapts a go-audio integer PCM decoder to Source.
type IntSource struct {
	dec        IntReader
	sampleRate int
	channels   int
	scale      float32
	// go-audio hands back 8-bit WAV unsigned
	bias int

	intBuf *goaudio.IntBuffer
}

// NewIntSource wraps dec, whose samples are bitDepth wide. unsigned8 marks
// 8-bit data stored offset by 128.
func NewIntSource(dec IntReader, bitDepth int, unsigned8 bool) *IntSource {
	f := dec.Format()
	s := &IntSource{
		dec:        dec,
		sampleRate: f.SampleRate,
		channels:   f.NumChannels,
		scale:      1 / float32(int64(1)<<(max(bitDepth, 8)-1)),
	}
	if bitDepth == 8 && unsigned8 {
		s.bias = 128
	}
	return s
}

func (s *IntSource) SampleRate() int { return s.sampleRate }
func (s *IntSource) Channels() int   { return s.channels }
func (s *IntSource) Close() error    { return nil }

func (s *IntSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v-s.bias) * s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}
