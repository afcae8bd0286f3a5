// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/pcmextract/utils"
)

// Resample converts a whole mono clip from srcRate to dstRate with
// Catmull-Rom interpolation. When downsampling, a one-pole low-pass runs
// first to tame aliasing.
func Resample(mono []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(mono) == 0 {
		return nil, nil
	}
	if srcRate == dstRate {
		return append([]float32(nil), mono...), nil
	}

	in := mono
	if srcRate > dstRate {
		in = lowPass(mono, float32(dstRate)/float32(srcRate))
	}

	ratio := float64(srcRate) / float64(dstRate)
	out := make([]float32, len(in)*dstRate/srcRate)

	at := func(i int) float32 {
		return in[min(max(i, 0), len(in)-1)]
	}

	for i := range out {
		pos := float64(i) * ratio
		k := int(pos)
		x := float32(pos - float64(k))
		out[i] = utils.CubicInterpolate(at(k-1), at(k), at(k+1), at(k+2), x)
	}

	return out, nil
}

// lowPass is a single-pole smoother; alpha is the fraction of each new
// sample kept.
func lowPass(in []float32, alpha float32) []float32 {
	out := make([]float32, len(in))
	state := in[0]
	for i, v := range in {
		state += alpha * (v - state)
		out[i] = state
	}
	return out
}
