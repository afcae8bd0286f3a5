// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"fmt"
	"strings"
)

// Representation is the bit-level rule that maps one raw byte to a signed
// amplitude.
type Representation int

const (
	TwosComplement Representation = iota
	OnesComplement
	SignedMagnitude
	ExcessK
	Custom
)

var representationNames = [...]string{
	TwosComplement:  "twos",
	OnesComplement:  "ones",
	SignedMagnitude: "signmag",
	ExcessK:         "excess",
	Custom:          "custom",
}

func (r Representation) String() string {
	if r < 0 || int(r) >= len(representationNames) {
		return fmt.Sprintf("Representation(%d)", int(r))
	}
	return representationNames[r]
}

// ParseRepresentation accepts the names printed by Representation.String,
// case-insensitively.
func ParseRepresentation(s string) (Representation, error) {
	for i, name := range representationNames {
		if strings.EqualFold(s, name) {
			return Representation(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownRepresentation)
}

// SignBit selects which bit carries the sign in SignedMagnitude.
type SignBit int

const (
	SignMSB SignBit = iota
	SignLSB
)

func (b SignBit) String() string {
	switch b {
	case SignMSB:
		return "msb"
	case SignLSB:
		return "lsb"
	}
	return fmt.Sprintf("SignBit(%d)", int(b))
}

func ParseSignBit(s string) (SignBit, error) {
	switch strings.ToLower(s) {
	case "msb":
		return SignMSB, nil
	case "lsb":
		return SignLSB, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownSignBit)
}

// Compression selects the predictive reconstruction applied to the decoded
// residuals.
type Compression int

const (
	None Compression = iota
	Order1
	Order2
	Order3
	// SquaredDelta adds or subtracts the square of the raw byte's low 7
	// bits, the top bit being the sign.
	SquaredDelta
	// ToggleSign resets the history whenever the raw byte's low bit is
	// clear, then steps by twice the signed square of the residual.
	ToggleSign
)

var compressionNames = [...]string{
	None:         "none",
	Order1:       "order1",
	Order2:       "order2",
	Order3:       "order3",
	SquaredDelta: "sqdelta",
	ToggleSign:   "toggle",
}

func (c Compression) String() string {
	if c < 0 || int(c) >= len(compressionNames) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}
	return compressionNames[c]
}

// ParseCompression accepts the names printed by Compression.String and the
// bare orders "0" to "3".
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "0":
		return None, nil
	case "1":
		return Order1, nil
	case "2":
		return Order2, nil
	case "3":
		return Order3, nil
	}
	for i, name := range compressionNames {
		if strings.EqualFold(s, name) {
			return Compression(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownCompression)
}

// Config holds every parameter of one decode pass. It is a plain value:
// callers copy it, change the copy and hand it back whole.
type Config struct {
	Representation Representation
	SignBit        SignBit

	// Bias is subtracted by ExcessK, Offset by Custom, both wrapping.
	Bias   int16
	Offset int16

	// Fold thresholds for Custom.
	Flip   uint8
	Mirror uint8

	Compression Compression
	// Gain multiplies the output of the predictive modes.
	Gain int

	// The addressed bytes are WindowStart+StartOffset+k*Stride, for every
	// k that stays below WindowEnd and the end of the input.
	StartOffset int
	Stride      int
	WindowStart int
	WindowEnd   int
}

// DefaultConfig returns a plain two's complement configuration that
// addresses all n bytes of the input.
func DefaultConfig(n int) Config {
	return Config{
		Representation: TwosComplement,
		SignBit:        SignMSB,
		Compression:    None,
		Gain:           1,
		Stride:         1,
		WindowStart:    0,
		WindowEnd:      n,
	}
}

// Validate checks the invariants that do not depend on the input length.
func (c Config) Validate() error {
	if c.Representation < TwosComplement || c.Representation > Custom {
		return fmt.Errorf("%d: %w", int(c.Representation), ErrUnknownRepresentation)
	}
	if c.SignBit != SignMSB && c.SignBit != SignLSB {
		return fmt.Errorf("%d: %w", int(c.SignBit), ErrUnknownSignBit)
	}
	if c.Compression < None || c.Compression > ToggleSign {
		return fmt.Errorf("%d: %w", int(c.Compression), ErrUnknownCompression)
	}
	if c.Stride < 1 {
		return ErrInvalidStride
	}
	if c.WindowStart < 0 || c.WindowStart > c.WindowEnd {
		return ErrInvalidWindow
	}
	if c.StartOffset < 0 {
		return ErrInvalidStartOffset
	}
	if c.Gain < 1 {
		return ErrInvalidGain
	}
	return nil
}

func (c Config) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "repr=%s", c.Representation)
	switch c.Representation {
	case SignedMagnitude:
		fmt.Fprintf(&b, " sign=%s", c.SignBit)
	case ExcessK:
		fmt.Fprintf(&b, " bias=%d", c.Bias)
	case Custom:
		fmt.Fprintf(&b, " flip=%d mirror=%d offset=%d", c.Flip, c.Mirror, c.Offset)
	}
	fmt.Fprintf(&b, " comp=%s", c.Compression)
	if c.Compression != None {
		fmt.Fprintf(&b, " gain=%d", c.Gain)
	}
	fmt.Fprintf(&b, " window=[%d,%d) start=%d stride=%d",
		c.WindowStart, c.WindowEnd, c.StartOffset, c.Stride)

	return b.String()
}
