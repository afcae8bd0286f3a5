// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmextract/utils"
)

// ReadAllMono drains src through a MonoMixer.
func ReadAllMono(src Source, bufferSize int) ([]float32, error) {
	mono := NewMonoMixer(src)
	buf := make([]float32, max(bufferSize, 1))
	var out []float32

	for {
		n, err := mono.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source that makes no progress without reporting EOF is done
			break
		}
	}

	return out, nil
}

// LoadMono16 reads all of src, mixes it to mono, resamples it to rate and
// converts it to 16-bit PCM. The source is not closed.
func LoadMono16(src Source, rate int, bufferSize int) ([]int16, error) {
	mono, err := ReadAllMono(src, bufferSize)
	if err != nil {
		return nil, err
	}
	if len(mono) == 0 {
		return nil, ErrEmptySource
	}

	resampled, err := Resample(mono, src.SampleRate(), rate)
	if err != nil {
		return nil, err
	}

	pcm := make([]int16, len(resampled))
	for i, v := range resampled {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return pcm, nil
}
