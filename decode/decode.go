// SPDX-License-Identifier: EPL-2.0

package decode

import "fmt"

// Decode walks the window of raw addressed by cfg, decoding every byte with
// DecodeOne and reconstructing it with a fresh Predictor. The result is a
// newly allocated buffer.
//
// The walk stops at the window end or at the end of raw, whichever comes
// first. It fails only when the window start itself lies outside raw.
func Decode(raw []byte, cfg Config) ([]int16, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.WindowStart >= len(raw) {
		return nil, fmt.Errorf("start %d, input length %d: %w",
			cfg.WindowStart, len(raw), ErrWindowStartOutOfRange)
	}

	out := make([]int16, 0, Count(len(raw), cfg))
	p := NewPredictor(cfg.Compression, cfg.Gain)

	walk(len(raw), cfg, func(ix int) {
		b := raw[ix]
		out = append(out, p.Next(b, DecodeOne(b, cfg)))
	})

	return out, nil
}

// span returns the first addressed index and the exclusive bound of the
// walk. ok is false when nothing is addressed. The sums are checked so
// that offsets near math.MaxInt cannot wrap negative.
func span(n int, cfg Config) (first, end int, ok bool) {
	if cfg.Stride < 1 || cfg.WindowStart < 0 || cfg.StartOffset < 0 {
		return 0, 0, false
	}
	end = min(cfg.WindowEnd, n)
	if cfg.WindowStart >= end || cfg.StartOffset >= end-cfg.WindowStart {
		return 0, 0, false
	}
	return cfg.WindowStart + cfg.StartOffset, end, true
}

// walk calls fn with every addressed index in increasing order.
func walk(n int, cfg Config, fn func(ix int)) {
	first, end, ok := span(n, cfg)
	if !ok {
		return
	}
	for ix := first; ; ix += cfg.Stride {
		fn(ix)
		if cfg.Stride >= end-ix {
			return
		}
	}
}

// Count returns how many samples Decode produces for an input of n bytes.
func Count(n int, cfg Config) int {
	first, end, ok := span(n, cfg)
	if !ok {
		return 0
	}
	return (end-first-1)/cfg.Stride + 1
}

// RawSteps returns the addressed raw bytes themselves, without decoding.
// It is what the raw waveform view plots next to the decoded one.
func RawSteps(raw []byte, cfg Config) []byte {
	if cfg.Validate() != nil {
		return nil
	}
	out := make([]byte, 0, Count(len(raw), cfg))
	walk(len(raw), cfg, func(ix int) {
		out = append(out, raw[ix])
	})
	return out
}
