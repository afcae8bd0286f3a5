// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type fakeIntReader struct {
	format *goaudio.Format
	data   []int
	err    error
}

func (f *fakeIntReader) Format() *goaudio.Format { return f.format }

func (f *fakeIntReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := copy(buf.Data, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestIntSource_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bitDepth  int
		unsigned8 bool
		in        []int
		want      []float32
	}{
		{"16 bit", 16, false, []int{16384, -32768}, []float32{0.5, -1}},
		{"24 bit", 24, false, []int{4194304}, []float32{0.5}},
		{"8 bit signed", 8, false, []int{64, -128}, []float32{0.5, -1}},
		{"8 bit unsigned", 8, true, []int{192, 0, 128}, []float32{0.5, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &fakeIntReader{
				format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
				data:   tt.in,
			}
			src := NewIntSource(r, tt.bitDepth, tt.unsigned8)

			buf := make([]float32, 8)
			n, err := src.ReadSamples(buf)
			if n != len(tt.want) || !errors.Is(err, io.EOF) {
				t.Fatalf("ReadSamples() = %d, %v; want %d, EOF", n, err, len(tt.want))
			}
			for i := range tt.want {
				if buf[i] != tt.want[i] {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want[i])
				}
			}
		})
	}
}

func TestIntSource_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewIntSource(&fakeIntReader{
		format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		err:    boom,
	}, 16, false)

	if src.Channels() != 2 || src.SampleRate() != 44100 {
		t.Fatalf("format = %d Hz x%d", src.SampleRate(), src.Channels())
	}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
}
