// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	ErrNoReference = errors.New("no reference clip loaded")
)
