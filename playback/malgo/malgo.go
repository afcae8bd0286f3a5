// SPDX-License-Identifier: EPL-2.0

// Package malgo implements playback.Device on the default miniaudio output
// device, writing whatever sample format the device natively uses.
package malgo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	ma "github.com/gen2brain/malgo"
	"github.com/ik5/pcmextract/playback"
	"github.com/ik5/pcmextract/utils"
)

// Device is the default playback device of a miniaudio context.
type Device struct {
	ctx    *ma.AllocatedContext
	native ma.FormatType
	format playback.Format
	dev    *ma.Device
	logger *log.Logger
}

// Open creates a miniaudio context and probes the default playback device
// for its native rate, channel count and sample format.
func Open(logger *log.Logger) (*Device, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, err := ma.InitContext(nil, ma.ContextConfig{}, func(msg string) {
		logger.Printf("miniaudio: %s", strings.TrimSpace(msg))
	})
	if err != nil {
		return nil, fmt.Errorf("init miniaudio context: %w", err)
	}

	d := &Device{ctx: ctx, logger: logger}
	if err := d.probe(); err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return nil, err
	}
	logger.Printf("output device: %s, %s", d.format, formatName(d.native))

	return d, nil
}

// probe opens the device with everything left native and reads back what
// it settled on.
func (d *Device) probe() error {
	cfg := ma.DefaultDeviceConfig(ma.Playback)
	cfg.Playback.Format = ma.FormatUnknown
	cfg.Playback.Channels = 0
	cfg.SampleRate = 0

	dev, err := ma.InitDevice(d.ctx.Context, cfg, ma.DeviceCallbacks{})
	if err != nil {
		return fmt.Errorf("%w: %w", playback.ErrNoOutputDevice, err)
	}
	defer dev.Uninit()

	d.native = dev.PlaybackFormat()
	d.format = playback.Format{
		SampleRate: int(dev.SampleRate()),
		Channels:   int(dev.PlaybackChannels()),
	}

	if bytesPerSample(d.native) == 0 {
		return fmt.Errorf("%s: %w", formatName(d.native), playback.ErrUnsupportedFormat)
	}

	return d.format.Validate()
}

func (d *Device) Format() playback.Format { return d.format }

// Start initializes the device in its native configuration and begins
// pulling frames from cb.
func (d *Device) Start(cb playback.Callback) error {
	if d.dev != nil {
		return errors.New("malgo: device already running")
	}

	cfg := ma.DefaultDeviceConfig(ma.Playback)
	cfg.Playback.Format = d.native
	cfg.Playback.Channels = uint32(d.format.Channels)
	cfg.SampleRate = uint32(d.format.SampleRate)

	native := d.native
	channels := d.format.Channels
	// sized for a generous period; grown only if the device asks for more
	scratch := make([]float32, 4096*channels)

	onData := func(out, _ []byte, frames uint32) {
		n := int(frames) * channels
		if cap(scratch) < n {
			scratch = make([]float32, n)
		}
		buf := scratch[:n]
		cb(buf)
		encode(out, buf, native)
	}

	dev, err := ma.InitDevice(d.ctx.Context, cfg, ma.DeviceCallbacks{Data: onData})
	if err != nil {
		return fmt.Errorf("init device: %w", err)
	}
	if err := dev.Start(); err != nil {
		dev.Uninit()
		return fmt.Errorf("start device: %w", err)
	}
	d.dev = dev

	return nil
}

func (d *Device) Stop() error {
	if d.dev == nil {
		return nil
	}

	dev := d.dev
	d.dev = nil
	defer dev.Uninit()

	if err := dev.Stop(); err != nil {
		return fmt.Errorf("stop device: %w", err)
	}
	return nil
}

// Close stops any running stream and releases the context.
func (d *Device) Close() error {
	stopErr := d.Stop()
	if err := d.ctx.Uninit(); err != nil {
		stopErr = errors.Join(stopErr, fmt.Errorf("uninit context: %w", err))
	}
	d.ctx.Free()
	return stopErr
}

// encode writes normalized samples into out in the device's format.
func encode(out []byte, in []float32, format ma.FormatType) {
	size := bytesPerSample(format)
	if size == 0 {
		clear(out)
		return
	}
	n := min(len(in), len(out)/size)

	switch format {
	case ma.FormatF32:
		for i := range n {
			binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(in[i]))
		}
	case ma.FormatS16:
		for i := range n {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(utils.Float32ToInt16(in[i])))
		}
	}
	clear(out[n*size:])
}

func bytesPerSample(format ma.FormatType) int {
	switch format {
	case ma.FormatF32:
		return 4
	case ma.FormatS16:
		return 2
	}
	return 0
}

func formatName(format ma.FormatType) string {
	switch format {
	case ma.FormatU8:
		return "u8"
	case ma.FormatS16:
		return "s16"
	case ma.FormatS24:
		return "s24"
	case ma.FormatS32:
		return "s32"
	case ma.FormatF32:
		return "f32"
	}
	return "unknown"
}
