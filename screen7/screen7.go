// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen7 emulates a 4 digit 7-segment display at the terminal
// (stdout) using ANSI color codes.
//
// It stands in for the real shift register chain: Dev is the serial end of
// the chain and Latch is the strobe line, so firmware written against
// segment7 runs unchanged on a development host.
//
// Useful while you are waiting for your display module to come by mail.
package screen7

import (
	"bytes"
	"errors"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

const numDigits = 4

var ErrNotImplemented = errors.New("screen7: not implemented")

// Opts represents the options available for this display.
type Opts struct {
	// Writer overrides the colorable stdout default. Handy for tests.
	Writer  io.Writer
	Palette *ansi256.Palette
	// On and Off are the colors of lit and dark segments.
	On, Off color.NRGBA

	_ struct{}
}

// Dev emulates the serial end of the register chain and draws the digits
// at the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	on, off color.NRGBA

	// shift models the two 8-bit registers: shift[0] is the far one on the
	// segment lines, shift[1] the near one on the digit drivers.
	shift  [2]byte
	digits [numDigits]byte
	latch  Latch
	frames int
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console. A nil opts picks the
// defaults: stdout, the default palette, red segments.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	on := opts.On
	if on == (color.NRGBA{}) {
		on = color.NRGBA{R: 0xe8, G: 0x20, B: 0x20, A: 0xff}
	}
	off := opts.Off
	if off == (color.NRGBA{}) {
		off = color.NRGBA{R: 0x38, G: 0x10, B: 0x10, A: 0xff}
	}
	d := &Dev{
		w:       w,
		palette: *p,
		on:      on,
		off:     off,
	}
	for i := range d.digits {
		d.digits[i] = 0xff
	}
	d.latch.dev = d
	return d
}

func (d *Dev) String() string {
	return "Screen7"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the shell prompt is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Tx implements conn.Conn and models the serial input of the chain: each
// byte pushes the previous one into the far register, and anything older
// falls off the end, exactly like bits clocked past the last stage. Reads
// are not wired up on this hardware.
func (d *Dev) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("screen7: read requests are not supported")
	}
	for _, b := range w {
		d.shift[0], d.shift[1] = d.shift[1], b
	}
	return nil
}

// Duplex implements conn.Conn.
func (d *Dev) Duplex() conn.Duplex {
	return conn.Half
}

// LatchPin returns the strobe line of the emulated chain. A rising edge
// commits the shifted bytes to the digits and redraws the terminal.
func (d *Dev) LatchPin() *Latch {
	return &d.latch
}

// Digits returns the currently latched pattern of each digit, leftmost
// first.
func (d *Dev) Digits() [numDigits]byte {
	return d.digits
}

// latched applies the shifted pattern to every digit the select mask
// names. More than one set bit lights several digits with the same
// pattern, which is precisely the ghosting the real hardware would show.
func (d *Dev) latched() error {
	pattern, mask := d.shift[0], d.shift[1]
	for i := range d.digits {
		if mask&(1<<(numDigits-1-i)) != 0 {
			d.digits[i] = pattern
		}
	}
	return d.render()
}

// cells maps each character cell of a digit to the segment bit shown
// there, or -1 for a gap. Three rows of blocks per digit, the decimal
// point in the last column.
var cells = [3][4]int{
	{-1, 0, -1, -1},
	{5, 6, 1, -1},
	{4, 3, 2, 7},
}

func (d *Dev) render() error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	if d.frames > 0 {
		// Redraw over the previous frame.
		d.buf.WriteString("\033[3F")
	}
	d.frames++
	for row := range cells {
		_, _ = d.buf.WriteString("\r")
		for _, pattern := range d.digits {
			for _, seg := range cells[row] {
				switch {
				case seg < 0:
					_ = d.buf.WriteByte(' ')
				case pattern&(1<<seg) == 0:
					_, _ = io.WriteString(&d.buf, d.palette.Block(d.on))
				default:
					_, _ = io.WriteString(&d.buf, d.palette.Block(d.off))
				}
			}
			_ = d.buf.WriteByte(' ')
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Conn = &Dev{}
