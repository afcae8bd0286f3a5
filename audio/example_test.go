// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/pcmextract/audio"
	"github.com/ik5/pcmextract/internal/audiotest"
)

func ExampleLoadMono16() {
	// one second of stereo silence at 48 kHz
	src := audiotest.NewSilentSource(48000, 2, 48000)

	pcm, err := audio.LoadMono16(src, 16000, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(pcm), "samples")
	// Output: 16000 samples
}
