// SPDX-License-Identifier: EPL-2.0

// Command pcmextract loads a raw byte dump and lets you try bit
// representations and predictive schemes on it until it sounds like audio.
// The last decoded buffer is written out as 16 kHz mono on exit.
//
//	pcmextract -i dump.bin -o voice.wav
//	pcmextract -i dump.bin -device none -batch < commands.txt
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell"

	"github.com/ik5/pcmextract"
	"github.com/ik5/pcmextract/decode"
	"github.com/ik5/pcmextract/playback"
	"github.com/ik5/pcmextract/playback/malgo"
	"github.com/ik5/pcmextract/playback/portaudio"
	"github.com/ik5/pcmextract/session"
	"github.com/ik5/pcmextract/shell"
	"github.com/ik5/pcmextract/ui"
)

var (
	errNoInput       = errors.New("no input file given")
	errUnknownDevice = errors.New("unknown device backend")
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	input  string
	output string
	device string
	ref    string
	hold   int
	batch  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	flagSet := flag.NewFlagSet("pcmextract", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	flagSet.StringVar(&o.input, "input", "", "raw file to decode")
	flagSet.StringVar(&o.input, "i", "", "shorthand for -input")
	flagSet.StringVar(&o.output, "output", "out.wav", "file written on exit (.aif/.aiff for AIFF)")
	flagSet.StringVar(&o.output, "o", "out.wav", "shorthand for -output")
	flagSet.StringVar(&o.device, "device", "portaudio", "audio backend: portaudio, malgo or none")
	flagSet.StringVar(&o.ref, "ref", "", "reference clip to compare against")
	flagSet.IntVar(&o.hold, "hold", 0, "device frames per sample, 0 derives it from the device rate")
	flagSet.BoolVar(&o.batch, "batch", false, "read commands from stdin instead of the terminal UI")

	if err := flagSet.Parse(args); err != nil {
		return o, err
	}

	if o.input == "" && flagSet.NArg() > 0 {
		o.input = flagSet.Arg(0)
	}
	if o.input == "" {
		return o, errNoInput
	}
	if o.hold < 0 {
		return o, fmt.Errorf("-hold %d: must not be negative", o.hold)
	}

	return o, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "pcmextract: ", log.LstdFlags)

	raw, err := pcmextract.LoadRaw(o.input)
	if err != nil {
		return err
	}

	sess, err := session.New(raw, decode.DefaultConfig(len(raw)))
	if err != nil {
		return err
	}
	logger.Printf("loaded %s: %d bytes", o.input, len(raw))

	if o.ref != "" {
		ref, err := pcmextract.OpenReference(pcmextract.NewRegistry(), o.ref, pcmextract.SampleRate)
		if err != nil {
			return err
		}
		sess.SetReference(ref)
	}

	shellOpts := []shell.Option{shell.WithOutput(o.output)}

	dev, closeDev, err := openDevice(o.device, logger)
	switch {
	case errors.Is(err, errUnknownDevice):
		return err
	case err != nil:
		// decoding and saving still work without sound
		logger.Printf("audio disabled: %v", err)
	case dev != nil:
		defer closeDev()
		sched := playback.NewScheduler(dev,
			playback.WithHoldFactor(o.hold),
			playback.WithLogger(logger))
		logger.Printf("playback at %s, hold factor %d", dev.Format(), sched.HoldFactor())
		shellOpts = append(shellOpts, shell.WithPlayer(sched))
	}

	if o.batch {
		err = runBatch(sess, stdin, stdout, logger, shellOpts)
	} else {
		err = runTUI(sess, stderr, logger, shellOpts)
	}
	if err != nil {
		return err
	}

	if err := pcmextract.Export(o.output, sess.Samples(), pcmextract.SampleRate); err != nil {
		return err
	}
	logger.Printf("wrote %d samples to %s", sess.Len(), o.output)

	return nil
}

// openDevice returns a nil device for "none".
func openDevice(name string, logger *log.Logger) (playback.Device, func(), error) {
	closer := func(c io.Closer) func() {
		return func() {
			if err := c.Close(); err != nil {
				logger.Printf("closing audio device: %v", err)
			}
		}
	}

	switch name {
	case "none":
		return nil, nil, nil
	case "portaudio":
		d, err := portaudio.Open(logger)
		if err != nil {
			return nil, nil, err
		}
		return d, closer(d), nil
	case "malgo":
		d, err := malgo.Open(logger)
		if err != nil {
			return nil, nil, err
		}
		return d, closer(d), nil
	}

	return nil, nil, fmt.Errorf("%q: %w", name, errUnknownDevice)
}

// runBatch executes one command per input line. Failed commands are logged
// and skipped, as they would be interactively.
func runBatch(sess *session.Session, stdin io.Reader, stdout io.Writer, logger *log.Logger, opts []shell.Option) error {
	sh := shell.New(sess, stdout, opts...)

	scanner := bufio.NewScanner(stdin)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		act, err := sh.Exec(line)
		if err != nil {
			logger.Printf("line %d: %s: %v", lineNo, line, err)
		}
		if act == shell.Quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

func runTUI(sess *session.Session, stderr io.Writer, logger *log.Logger, opts []shell.Option) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("opening screen: %w", err)
	}

	rl := ui.NewRingLog(ui.DefaultLogSize)
	logger.SetOutput(rl)
	logger.SetFlags(log.Ltime)

	defer func() {
		screen.Fini()
		logger.SetOutput(stderr)
		logger.SetFlags(log.LstdFlags)
	}()

	sh := shell.New(sess, rl, opts...)
	logger.Printf("type help for commands")

	ui.NewApp(screen, sh, rl, logger).Run()

	return nil
}
