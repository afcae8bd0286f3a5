// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	// ErrWindowStartOutOfRange means there is no raw data at the window start.
	ErrWindowStartOutOfRange = errors.New("window start beyond end of input")

	ErrInvalidStride      = errors.New("stride must be at least 1")
	ErrInvalidWindow      = errors.New("window start must not be negative or past window end")
	ErrInvalidStartOffset = errors.New("start offset must not be negative")
	ErrInvalidGain        = errors.New("gain must be at least 1")

	ErrUnknownRepresentation = errors.New("unknown representation")
	ErrUnknownCompression    = errors.New("unknown compression")
	ErrUnknownSignBit        = errors.New("unknown sign bit position")
)
