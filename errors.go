// SPDX-License-Identifier: EPL-2.0

package pcmextract

import "errors"

var (
	ErrEmptyInput        = errors.New("input file is empty")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
