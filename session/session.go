// SPDX-License-Identifier: EPL-2.0

// Package session owns the state of one interactive decoding session: the
// raw input, the current decode configuration and the buffer decoded from
// them.
package session

import (
	"fmt"
	"slices"

	"github.com/ik5/pcmextract/decode"
)

// Session keeps Config and the decoded buffer in step. Every accepted
// configuration change recomputes the whole buffer before returning; a
// rejected change leaves both untouched.
//
// A Session is owned by a single controlling goroutine and is not safe for
// concurrent use. Readers on other goroutines get copies via Samples.
type Session struct {
	raw []byte
	cfg decode.Config
	buf []int16

	// optional clip to compare against, already at the decode rate
	ref []int16
}

// New decodes raw under cfg. An addressing error here is fatal: there is no
// previous buffer to fall back to.
func New(raw []byte, cfg decode.Config) (*Session, error) {
	buf, err := decode.Decode(raw, cfg)
	if err != nil {
		return nil, fmt.Errorf("initial decode: %w", err)
	}

	return &Session{raw: raw, cfg: cfg, buf: buf}, nil
}

// Config returns a copy of the current configuration.
func (s *Session) Config() decode.Config { return s.cfg }

// Raw returns the input stream. Callers must not modify it.
func (s *Session) Raw() []byte { return s.raw }

// Len is the number of decoded samples.
func (s *Session) Len() int { return len(s.buf) }

// SetConfig replaces the configuration and recomputes the buffer.
func (s *Session) SetConfig(cfg decode.Config) error {
	buf, err := decode.Decode(s.raw, cfg)
	if err != nil {
		return fmt.Errorf("decode with %s: %w", cfg, err)
	}

	s.cfg = cfg
	s.buf = buf

	return nil
}

// Update applies fn to a copy of the configuration and submits the result
// through SetConfig.
func (s *Session) Update(fn func(*decode.Config)) error {
	cfg := s.cfg
	fn(&cfg)

	return s.SetConfig(cfg)
}

// Samples returns an independent copy of the decoded buffer.
func (s *Session) Samples() []int16 {
	return slices.Clone(s.buf)
}

// View returns the decoded buffer itself for read-only use on the
// controlling goroutine, e.g. plotting. It is replaced, never modified, by
// the next SetConfig.
func (s *Session) View() []int16 {
	return s.buf
}

// RawSteps returns the raw bytes addressed by the current configuration.
func (s *Session) RawSteps() []byte {
	return decode.RawSteps(s.raw, s.cfg)
}

// SetReference installs a comparison clip.
func (s *Session) SetReference(samples []int16) {
	s.ref = samples
}

// Reference returns a copy of the comparison clip.
func (s *Session) Reference() ([]int16, error) {
	if s.ref == nil {
		return nil, ErrNoReference
	}
	return slices.Clone(s.ref), nil
}

// HasReference reports whether a comparison clip is installed.
func (s *Session) HasReference() bool { return s.ref != nil }
