// SPDX-License-Identifier: EPL-2.0

package shell

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ik5/pcmextract"
	"github.com/ik5/pcmextract/decode"
)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string

	minArgs, maxArgs int
	run              func(s *Shell, args []string) (Action, error)
}

var commands []command

func init() {
	commands = []command{
		{name: "flip", usage: "<0-255>", help: "fold bytes below the threshold (custom)",
			minArgs: 1, maxArgs: 1, run: setUint8(func(c *decode.Config, v uint8) { c.Flip = v })},
		{name: "mirror", usage: "<0-255>", help: "fold bytes above the threshold (custom)",
			minArgs: 1, maxArgs: 1, run: setUint8(func(c *decode.Config, v uint8) { c.Mirror = v })},
		{name: "offset", usage: "<int16>", help: "subtract after decoding (custom)",
			minArgs: 1, maxArgs: 1, run: setInt16(decode.Custom, func(c *decode.Config, v int16) { c.Offset = v })},
		{name: "bias", usage: "<int16>", help: "excess-K bias",
			minArgs: 1, maxArgs: 1, run: setInt16(decode.ExcessK, func(c *decode.Config, v int16) { c.Bias = v })},
		{name: "repr", usage: "twos|ones|signmag|excess|custom", help: "bit representation",
			minArgs: 1, maxArgs: 1, run: cmdRepr},
		{name: "sign", usage: "msb|lsb", help: "sign bit position (signmag)",
			minArgs: 1, maxArgs: 1, run: cmdSign},
		{name: "comp", usage: "none|order1|order2|order3|sqdelta|toggle", help: "predictive reconstruction",
			minArgs: 1, maxArgs: 1, run: cmdComp},
		{name: "gain", usage: "<n>=1>", help: "output gain of the predictive modes",
			minArgs: 1, maxArgs: 1, run: setInt(1, func(c *decode.Config, v int) { c.Gain = v })},
		{name: "stride", aliases: []string{"step"}, usage: "<n>=1>", help: "distance between addressed bytes",
			minArgs: 1, maxArgs: 1, run: setInt(1, func(c *decode.Config, v int) { c.Stride = v })},
		{name: "start", usage: "<n>=0>", help: "phase added to the window start",
			minArgs: 1, maxArgs: 1, run: setInt(0, func(c *decode.Config, v int) { c.StartOffset = v })},
		{name: "window", usage: "[from to]", help: "byte window of the input, all of it without arguments",
			minArgs: 0, maxArgs: 2, run: cmdWindow},
		{name: "range", usage: "<x0> <x1>", help: "plotted sample range",
			minArgs: 2, maxArgs: 2, run: cmdRange},
		{name: "play", usage: "[from [to]]", help: "play decoded samples",
			minArgs: 0, maxArgs: 2, run: cmdPlay},
		{name: "ref", usage: "<path>", help: "load a reference clip (wav, aiff, mp3, ogg)",
			minArgs: 1, maxArgs: 1, run: cmdRef},
		{name: "playref", usage: "[from [to]]", help: "play the reference clip",
			minArgs: 0, maxArgs: 2, run: cmdPlayRef},
		{name: "save", usage: "[path]", help: "write decoded samples (wav, or aiff by extension)",
			minArgs: 0, maxArgs: 1, run: cmdSave},
		{name: "show", help: "print the current configuration",
			run: cmdShow},
		{name: "help", aliases: []string{"?"}, help: "list commands",
			run: cmdHelp},
		{name: "quit", aliases: []string{"exit", "q"}, help: "save and leave",
			run: func(*Shell, []string) (Action, error) { return Quit, nil }},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name || slices.Contains(c.aliases, name) {
			return c, true
		}
	}
	return command{}, false
}

// apply submits a config change and reports the result.
func (s *Shell) apply(fn func(*decode.Config)) (Action, error) {
	if err := s.sess.Update(fn); err != nil {
		return Continue, err
	}
	s.printf("%s -> %d samples", s.sess.Config(), s.sess.Len())
	return Continue, nil
}

// flip and mirror only mean something to custom, so setting them selects it.
func setUint8(set func(*decode.Config, uint8)) func(*Shell, []string) (Action, error) {
	return func(s *Shell, args []string) (Action, error) {
		v, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			return Continue, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return s.apply(func(c *decode.Config) {
			c.Representation = decode.Custom
			set(c, uint8(v))
		})
	}
}

func setInt16(repr decode.Representation, set func(*decode.Config, int16)) func(*Shell, []string) (Action, error) {
	return func(s *Shell, args []string) (Action, error) {
		v, err := strconv.ParseInt(args[0], 0, 16)
		if err != nil {
			return Continue, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return s.apply(func(c *decode.Config) {
			c.Representation = repr
			set(c, int16(v))
		})
	}
}

func setInt(least int, set func(*decode.Config, int)) func(*Shell, []string) (Action, error) {
	return func(s *Shell, args []string) (Action, error) {
		v, err := parseInt(args[0])
		if err != nil {
			return Continue, err
		}
		if v < least {
			return Continue, fmt.Errorf("%w: %d is below %d", ErrUsage, v, least)
		}
		return s.apply(func(c *decode.Config) { set(c, v) })
	}
}

func parseInt(arg string) (int, error) {
	v, err := strconv.ParseInt(arg, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return int(v), nil
}

func cmdRepr(s *Shell, args []string) (Action, error) {
	r, err := decode.ParseRepresentation(args[0])
	if err != nil {
		return Continue, err
	}
	return s.apply(func(c *decode.Config) { c.Representation = r })
}

func cmdSign(s *Shell, args []string) (Action, error) {
	b, err := decode.ParseSignBit(args[0])
	if err != nil {
		return Continue, err
	}
	return s.apply(func(c *decode.Config) { c.SignBit = b })
}

func cmdComp(s *Shell, args []string) (Action, error) {
	m, err := decode.ParseCompression(args[0])
	if err != nil {
		return Continue, err
	}
	return s.apply(func(c *decode.Config) { c.Compression = m })
}

func cmdWindow(s *Shell, args []string) (Action, error) {
	switch len(args) {
	case 0:
		n := len(s.sess.Raw())
		return s.apply(func(c *decode.Config) { c.WindowStart, c.WindowEnd = 0, n })
	case 2:
		from, err := parseInt(args[0])
		if err != nil {
			return Continue, err
		}
		to, err := parseInt(args[1])
		if err != nil {
			return Continue, err
		}
		return s.apply(func(c *decode.Config) { c.WindowStart, c.WindowEnd = from, to })
	}
	return Continue, fmt.Errorf("%w: window [from to]", ErrUsage)
}

func cmdRange(s *Shell, args []string) (Action, error) {
	x0, err := parseInt(args[0])
	if err != nil {
		return Continue, err
	}
	x1, err := parseInt(args[1])
	if err != nil {
		return Continue, err
	}
	if x0 < 0 || x1 <= x0 {
		return Continue, fmt.Errorf("[%d, %d): %w", x0, x1, ErrInvalidRange)
	}

	s.x0, s.x1 = x0, x1
	return Continue, nil
}

// playArgs reads the optional [from [to]] of play and playref; the defaults
// cover the whole buffer.
func playArgs(args []string, n int) (int, int, error) {
	from, to := 0, n
	var err error
	if len(args) > 0 {
		if from, err = parseInt(args[0]); err != nil {
			return 0, 0, err
		}
	}
	if len(args) > 1 {
		if to, err = parseInt(args[1]); err != nil {
			return 0, 0, err
		}
	}
	return from, to, nil
}

func (s *Shell) play(samples []int16, args []string) (Action, error) {
	if s.player == nil {
		return Continue, ErrNoPlayer
	}

	from, to, err := playArgs(args, len(samples))
	if err != nil {
		return Continue, err
	}
	if err := s.player.Play(samples, from, to); err != nil {
		return Continue, fmt.Errorf("play: %w", err)
	}
	return Continue, nil
}

func cmdPlay(s *Shell, args []string) (Action, error) {
	return s.play(s.sess.View(), args)
}

func cmdPlayRef(s *Shell, args []string) (Action, error) {
	ref, err := s.sess.Reference()
	if err != nil {
		return Continue, err
	}
	return s.play(ref, args)
}

func cmdRef(s *Shell, args []string) (Action, error) {
	ref, err := pcmextract.OpenReference(s.reg, args[0], s.sampleRate)
	if err != nil {
		return Continue, err
	}

	s.sess.SetReference(ref)
	s.printf("reference %s: %d samples (%.2fs)", args[0], len(ref), float64(len(ref))/float64(s.sampleRate))
	return Continue, nil
}

func cmdSave(s *Shell, args []string) (Action, error) {
	path := s.output
	if len(args) == 1 {
		path = args[0]
	}

	if err := pcmextract.Export(path, s.sess.Samples(), s.sampleRate); err != nil {
		return Continue, err
	}
	s.printf("wrote %d samples to %s", s.sess.Len(), path)
	return Continue, nil
}

func cmdShow(s *Shell, _ []string) (Action, error) {
	s.printf("%s", s.sess.Config())
	s.printf("input %d bytes, decoded %d samples (%.2fs), plot [%d,%d)",
		len(s.sess.Raw()), s.sess.Len(), float64(s.sess.Len())/float64(s.sampleRate), s.x0, s.x1)

	if ref, err := s.sess.Reference(); err == nil {
		s.printf("reference %d samples", len(ref))
	}
	return Continue, nil
}

func cmdHelp(s *Shell, _ []string) (Action, error) {
	width := 0
	for _, c := range commands {
		width = max(width, len(c.name)+len(c.usage)+1)
	}
	for _, c := range commands {
		s.printf("%-*s  %s", width, c.name+" "+c.usage, c.help)
	}
	return Continue, nil
}
