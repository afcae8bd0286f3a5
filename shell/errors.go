// SPDX-License-Identifier: EPL-2.0

package shell

import "errors"

var (
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoPlayer       = errors.New("no output device")
	ErrInvalidRange   = errors.New("plot range must satisfy 0 <= x0 < x1")
)
