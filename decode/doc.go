// SPDX-License-Identifier: EPL-2.0

// Package decode turns raw bytes of unknown 8-bit encoding into 16-bit PCM.
//
// Decoding has two stages. DecodeOne maps a single byte to a signed
// amplitude according to a Representation (two's complement, ones'
// complement, sign-magnitude, excess-K or the Custom fold transform); this
// stage wraps on overflow. A Predictor then reconstructs the output sample
// from that residual and up to three previous samples according to a
// Compression mode; this stage saturates.
//
//	cfg := decode.DefaultConfig(len(raw))
//	cfg.Representation = decode.OnesComplement
//	cfg.Compression = decode.Order1
//	samples, err := decode.Decode(raw, cfg)
//
// Decode always starts from zeroed prediction history and returns a new
// buffer, so a Config change means a full recompute.
package decode
