// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"math"

	"github.com/ik5/pcmextract/utils"
)

// historyLen is the deepest prediction order.
const historyLen = 3

// noneScale lifts the 8-bit range into the 16-bit sample range.
const noneScale = 256

// Predictor reconstructs samples from decoded residuals. The predictive
// modes saturate at every step so errors cannot compound into wraparound
// over a long run; None is a plain wrapping 8 to 16-bit shift.
type Predictor struct {
	mode Compression
	gain int16

	// hist[0] is the most recent reconstructed amplitude.
	hist [historyLen]int16
}

// NewPredictor returns a predictor with zeroed history. Gains below 1 are
// treated as 1.
func NewPredictor(mode Compression, gain int) *Predictor {
	g := int16(1)
	if gain > math.MaxInt16 {
		g = math.MaxInt16
	} else if gain > 1 {
		g = int16(gain)
	}

	return &Predictor{mode: mode, gain: g}
}

// Reset zeroes the history.
func (p *Predictor) Reset() {
	p.hist = [historyLen]int16{}
}

// History returns the last three amplitudes, most recent first.
func (p *Predictor) History() [historyLen]int16 {
	return p.hist
}

// Next produces the next sample from the raw byte and its decoded residual.
func (p *Predictor) Next(raw byte, residual int16) int16 {
	h1, h2, h3 := p.hist[0], p.hist[1], p.hist[2]

	var amp int16
	switch p.mode {
	case None:
		// wraps like the byte-level stage; only prediction saturates
		amp = residual * noneScale
		p.push(amp)
		return amp

	case Order1:
		amp = utils.SatAdd16(h1, residual)

	case Order2:
		amp = utils.SatMul16(h1, 2)
		amp = utils.SatSub16(amp, h2)
		amp = utils.SatAdd16(amp, residual)

	case Order3:
		amp = utils.SatMul16(h1, 3)
		amp = utils.SatSub16(amp, utils.SatMul16(h2, 3))
		amp = utils.SatAdd16(amp, h3)
		amp = utils.SatAdd16(amp, residual)

	case SquaredDelta:
		mag := int16(raw & 0x7F)
		delta := mag * mag
		if raw&0x80 != 0 {
			amp = utils.SatSub16(h1, delta)
		} else {
			amp = utils.SatAdd16(h1, delta)
		}

	case ToggleSign:
		if raw&0x01 == 0 {
			p.Reset()
			h1 = 0
		}
		r := int64(residual)
		delta := utils.Clamp16From64(2 * r * r)
		if residual < 0 {
			amp = utils.SatSub16(h1, delta)
		} else {
			amp = utils.SatAdd16(h1, delta)
		}
	}

	p.push(amp)

	return utils.SatMul16(amp, p.gain)
}

func (p *Predictor) push(amp int16) {
	p.hist[2] = p.hist[1]
	p.hist[1] = p.hist[0]
	p.hist[0] = amp
}
