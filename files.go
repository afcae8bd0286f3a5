// SPDX-License-Identifier: EPL-2.0

package pcmextract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pcmextract/audio"
	"github.com/ik5/pcmextract/formats/aiff"
	"github.com/ik5/pcmextract/formats/mp3"
	"github.com/ik5/pcmextract/formats/vorbis"
	"github.com/ik5/pcmextract/formats/wav"
)

// SampleRate is the rate decoded buffers are played and exported at.
const SampleRate = 16000

const readBufferSize = 4096

// NewRegistry returns a registry with every reference clip decoder.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// LoadRaw reads the whole input stream into memory.
func LoadRaw(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	return raw, nil
}

// Export writes samples as mono 16-bit PCM. Paths ending in .aif or .aiff
// get AIFF, everything else WAV.
func Export(path string, samples []int16, rate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		err = aiff.WriteAIFF16(f, rate, samples)
	default:
		err = wav.WriteWAV16(f, rate, samples)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// OpenReference decodes the clip at path and returns it as mono 16-bit PCM
// at rate.
func OpenReference(reg *audio.Registry, path string, rate int) ([]int16, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	pcm, err := audio.LoadMono16(src, rate, readBufferSize)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return pcm, nil
}
