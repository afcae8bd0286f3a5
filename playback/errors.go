// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrNoOutputDevice is returned by backends when the system reports no
	// default output device.
	ErrNoOutputDevice = errors.New("no output device")

	// ErrUnsupportedFormat is returned by backends when the device's native
	// sample format cannot be produced.
	ErrUnsupportedFormat = errors.New("unsupported output sample format")

	ErrInvalidFormat = errors.New("device reported an invalid stream format")
)
