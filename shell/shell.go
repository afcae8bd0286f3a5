// SPDX-License-Identifier: EPL-2.0

// Package shell interprets the line commands that drive a decoding session.
//
// Every setter parses and range-checks its arguments before the session
// sees them, and the session itself rejects a configuration it cannot
// decode, so a failed command never changes anything.
package shell

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ik5/pcmextract"
	"github.com/ik5/pcmextract/audio"
	"github.com/ik5/pcmextract/session"
)

// Action tells the caller what to do after a command.
type Action int

const (
	Continue Action = iota
	Quit
)

// Player plays samples[from:to].
type Player interface {
	Play(samples []int16, from, to int) error
}

// Default plotted range, in samples.
const (
	DefaultRangeStart = 0
	DefaultRangeEnd   = 128
)

// Shell runs commands against a session.
type Shell struct {
	sess   *session.Session
	player Player
	reg    *audio.Registry
	out    io.Writer

	output     string
	x0, x1     int
	sampleRate int
}

type Option func(*Shell)

// WithPlayer enables play and playref.
func WithPlayer(p Player) Option {
	return func(s *Shell) { s.player = p }
}

// WithOutput sets the default path of save.
func WithOutput(path string) Option {
	return func(s *Shell) { s.output = path }
}

// WithRegistry replaces the decoders used by ref.
func WithRegistry(reg *audio.Registry) Option {
	return func(s *Shell) { s.reg = reg }
}

// New returns a shell over sess writing command output to out.
func New(sess *session.Session, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		sess:       sess,
		out:        out,
		reg:        pcmextract.NewRegistry(),
		output:     "out.wav",
		x0:         DefaultRangeStart,
		x1:         DefaultRangeEnd,
		sampleRate: pcmextract.SampleRate,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Session is the session the shell drives.
func (s *Shell) Session() *session.Session { return s.sess }

// Range is the plotted sample range [x0, x1).
func (s *Shell) Range() (int, int) { return s.x0, s.x1 }

// Output is the path save writes to when given none.
func (s *Shell) Output() string { return s.output }

// Exec runs one command line. Blank lines and lines starting with # do
// nothing.
func (s *Shell) Exec(line string) (Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Continue, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := lookup(name)
	if !ok {
		return Continue, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}

	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return Continue, fmt.Errorf("%w: %s %s", ErrUsage, cmd.name, cmd.usage)
	}

	return cmd.run(s, args)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

// Names lists the commands and their aliases.
func Names() []string {
	var names []string
	for _, c := range commands {
		names = append(names, c.name)
		names = append(names, c.aliases...)
	}
	slices.Sort(names)
	return names
}
