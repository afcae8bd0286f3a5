// SPDX-License-Identifier: EPL-2.0

// Package portaudio implements playback.Device on the default PortAudio
// output device.
package portaudio

import (
	"errors"
	"fmt"
	"log"

	pa "github.com/gordonklaus/portaudio"
	"github.com/ik5/pcmextract/playback"
)

// maxChannels caps what is requested from surround devices; every channel
// carries the same mono signal anyway.
const maxChannels = 2

// Device is the default output device, queried once by Open.
type Device struct {
	params pa.StreamParameters
	format playback.Format
	stream *pa.Stream
	logger *log.Logger
}

// Open initializes PortAudio and picks the default output device and its
// native rate. Close must be called to release PortAudio.
func Open(logger *log.Logger) (*Device, error) {
	if logger == nil {
		logger = log.Default()
	}

	if err := pa.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}
	logger.Println(pa.VersionText())

	out, err := pa.DefaultOutputDevice()
	if err != nil {
		_ = pa.Terminate()
		return nil, fmt.Errorf("%w: %w", playback.ErrNoOutputDevice, err)
	}
	if out == nil || out.MaxOutputChannels < 1 {
		_ = pa.Terminate()
		return nil, playback.ErrNoOutputDevice
	}

	params := pa.HighLatencyParameters(nil, out)
	params.Output.Channels = channelsFor(out.MaxOutputChannels)

	d := &Device{
		params: params,
		format: playback.Format{
			SampleRate: int(params.SampleRate),
			Channels:   params.Output.Channels,
		},
		logger: logger,
	}
	logger.Printf("output device %q: %s, latency %s", out.Name, d.format, params.Output.Latency)

	if err := d.format.Validate(); err != nil {
		_ = pa.Terminate()
		return nil, err
	}

	return d, nil
}

func (d *Device) Format() playback.Format { return d.format }

// Start opens a float32 interleaved stream that pulls from cb.
func (d *Device) Start(cb playback.Callback) error {
	if d.stream != nil {
		return errors.New("portaudio: stream already running")
	}

	stream, err := pa.OpenStream(d.params, func(out []float32) {
		cb(out)
	})
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		return fmt.Errorf("start stream: %w", err)
	}
	d.stream = stream

	return nil
}

// Stop lets queued buffers drain, then closes the stream.
func (d *Device) Stop() error {
	if d.stream == nil {
		return nil
	}

	stream := d.stream
	d.stream = nil

	if err := stream.Stop(); err != nil {
		_ = stream.Close()
		return fmt.Errorf("stop stream: %w", err)
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("close stream: %w", err)
	}

	return nil
}

// Close stops any running stream and terminates PortAudio.
func (d *Device) Close() error {
	stopErr := d.Stop()
	if err := pa.Terminate(); err != nil {
		return errors.Join(stopErr, fmt.Errorf("terminate portaudio: %w", err))
	}
	return stopErr
}

func channelsFor(maxOut int) int {
	return max(1, min(maxOut, maxChannels))
}
