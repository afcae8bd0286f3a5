// SPDX-License-Identifier: EPL-2.0

package decode

// DecodeOne maps one raw byte to a signed amplitude under cfg's
// representation. The byte-level arithmetic wraps on purpose: unknown
// encodings are often produced by exactly these overflowing bit games.
func DecodeOne(b byte, cfg Config) int16 {
	switch cfg.Representation {
	case TwosComplement:
		return int16(int8(b))

	case OnesComplement:
		if b < 0x80 {
			return int16(b)
		}
		// 0xFF is the second encoding of zero
		return -int16(^b)

	case SignedMagnitude:
		var mag int16
		var negative bool
		if cfg.SignBit == SignLSB {
			mag = int16((b & 0xFE) >> 1)
			negative = b&0x01 != 0
		} else {
			mag = int16(b & 0x7F)
			negative = b&0x80 != 0
		}
		if negative {
			return -mag
		}
		return mag

	case ExcessK:
		return int16(b) - cfg.Bias

	case Custom:
		return int16(int8(fold(b, cfg.Flip, cfg.Mirror))) - cfg.Offset
	}

	return 0
}

// fold applies the mirror fold and then the flip fold, both in uint8.
func fold(b, flip, mirror uint8) uint8 {
	if b > mirror {
		b = mirror + (b - mirror)
	}
	if b < flip {
		b = flip - b
	}
	return b
}
