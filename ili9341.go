// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/ili9341/image16bit"
)

// Opts defines the display configuration.
type Opts struct {
	Width  int
	Height int

	// Analog bias codes for this board revision.
	GVDD  GVDD
	VCOMH VCOMH
	VCOML VCOML
	VMF   VMF

	// Access selects the frame memory scan direction and channel order.
	Access MemoryAccess

	// Format is the pixel format committed to the panel during Init.
	Format PixelFormat
}

// TFT32 contains the configuration for the common 3.2" 240x320 panel.
var TFT32 = Opts{
	Width:  240,
	Height: 320,
	GVDD:   GVDD4V6,
	VCOMH:  VCOMH4V25,
	VCOML:  VCOMLNeg1V5,
	VMF:    VMFNeg58,
	Access: MemoryAccess{BGR: true, ReverseColumns: true},
	Format: PixelFormat16bit,
}

// Dev is a handle to an ILI9341 controller.
//
// A Dev is not safe for concurrent use; callers on multi-threaded targets
// must serialize access externally.
type Dev struct {
	t Transport

	dc  gpio.PinOut
	cs  gpio.PinOut
	rst gpio.PinOut

	opts   Opts
	format PixelFormat

	// sleep is swappable so tests do not spend wall clock time on the
	// fixed post-command delays.
	sleep func(time.Duration)
}

// New opens the controller behind an SPI port.
//
// dc, cs and rst are the data/command, chip-select and reset lines of the
// panel.
func New(p spi.Port, dc, cs, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return NewTransport(&connTransport{c: c}, dc, cs, rst, opts), nil
}

// NewTransport creates a handle on an arbitrary transport. It is meant for
// engines with their own queueing, such as DMA backed SPI, that cannot be
// expressed as a conn.Conn.
func NewTransport(t Transport, dc, cs, rst gpio.PinOut, opts *Opts) *Dev {
	return &Dev{
		t:      t,
		dc:     dc,
		cs:     cs,
		rst:    rst,
		opts:   *opts,
		format: opts.Format,
		sleep:  time.Sleep,
	}
}

// Init resets the panel and runs the fixed bring-up sequence: software
// reset, power and VCOM configuration, memory access control, pixel format,
// display function control, sleep out and display on. The first failing step
// aborts the sequence and its verdict is returned.
//
// Init must be called exactly once per hardware reset. Calling it again on a
// live panel without resetting it first is undefined.
func (d *Dev) Init() error {
	if _, ok := d.opts.Format.encode(); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, d.opts.Format)
	}
	d.format = d.opts.Format

	eh := errorHandler{d: d}

	// The panel must be deselected while it is reset.
	eh.csOut(gpio.High)
	d.reset(&eh)
	if eh.err != nil {
		return eh.err
	}

	initSequence(&eh, &d.opts)
	return eh.err
}

// reset pulses the RST line. The panel treats any low pulse longer than 10µs
// as a hardware reset and accepts commands 5ms after the line is released.
func (d *Dev) reset(eh *errorHandler) {
	eh.rstOut(gpio.High)
	eh.wait(1 * time.Millisecond)
	eh.rstOut(gpio.Low)
	eh.wait(1 * time.Millisecond)
	eh.rstOut(gpio.High)
	eh.wait(5 * time.Millisecond)
}

// SetPixelFormat selects how color values handed to the driver are
// interpreted. It only updates driver state; the panel keeps the format
// committed by Init.
func (d *Dev) SetPixelFormat(f PixelFormat) error {
	if _, ok := f.encode(); !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}
	d.format = f
	return nil
}

// PixelFormat returns the active pixel format.
func (d *Dev) PixelFormat() PixelFormat {
	return d.format
}

// ColorModel returns the color model matching the active pixel format.
func (d *Dev) ColorModel() color.Model {
	switch d.format {
	case PixelFormat18bit:
		return image16bit.RGB666Model
	default:
		return image16bit.RGB565Model
	}
}

// Bounds returns the panel dimensions.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.Width, d.opts.Height)
}

// Sleep puts the controller in sleep mode. Waking it up requires a hardware
// reset followed by Init.
func (d *Dev) Sleep() error {
	eh := errorHandler{d: d}
	eh.sendCommand(sleepIn)
	eh.wait(5 * time.Millisecond)
	return eh.err
}

// Halt turns the display off. The backlight keeps shining; only the frame
// memory output stops.
//
// It implements conn.Resource.
func (d *Dev) Halt() error {
	eh := errorHandler{d: d}
	eh.sendCommand(displayOff)
	return eh.err
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9341.Dev{%s, %s, Width: %d, Height: %d}", d.t, d.dc, d.opts.Width, d.opts.Height)
}

var _ conn.Resource = &Dev{}
