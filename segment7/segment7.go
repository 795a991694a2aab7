// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segment7 drives a 4 digit 7-segment LED display multiplexed
// through a pair of daisy-chained shift registers (74HC595 or similar) on
// a synchronous serial bus plus a latch line.
//
// Writes go to a 4 byte back buffer and do no I/O. Each Refresh call
// shifts out one digit's segment pattern together with a one-hot digit
// select mask and latches both; calling Refresh steadily above roughly
// 400Hz makes all four digits appear lit at once.
//
// # Datasheet
//
// https://www.nexperia.com/product/74HC595D
package segment7

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	devName   = "segment7"
	numDigits = 4

	// Settle pause used by RefreshWithDelay between the bus write and the
	// latch rising edge.
	settleTime = 100 * time.Microsecond
)

// TransportError reports a failed write on the serial bus.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return devName + ": transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PinError reports a failed level change on the latch line.
type PinError struct {
	Err error
}

func (e *PinError) Error() string {
	return devName + ": latch pin: " + e.Err.Error()
}

func (e *PinError) Unwrap() error {
	return e.Err
}

// Sleeper blocks the caller for at least the given duration.
// clockwork.Clock satisfies it.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Dev represents a 4 digit display behind a shift register chain. It owns
// the serial connection and the latch pin until Release or Halt.
//
// The back buffer and cursor are guarded, so buffer writes may come from
// a different goroutine than the one calling Refresh or Scan.
type Dev struct {
	mu    sync.Mutex
	buf   [numDigits]byte
	digit int
	c     conn.Conn
	latch gpio.PinOut
}

// New returns a Dev driving a display behind c and latch. The back buffer
// starts blank and the leftmost digit is shifted out first.
func New(c conn.Conn, latch gpio.PinOut) *Dev {
	d := &Dev{c: c, latch: latch}
	for i := range d.buf {
		d.buf[i] = Blank
	}
	return d
}

// NewSPI connects to the port at the 4MHz Mode0 setup the register chain
// is comfortable with and returns a Dev on the resulting connection.
func NewSPI(p spi.Port, latch gpio.PinOut) (*Dev, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", devName, err)
	}
	return New(c, latch), nil
}

// Release hands the connection and the latch pin back to the caller for
// reuse or reconfiguration. The Dev must not be used afterwards.
func (d *Dev) Release() (conn.Conn, gpio.PinOut) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, latch := d.c, d.latch
	d.c = nil
	d.latch = nil
	return c, latch
}

// WriteChars encodes chars and overwrites the back buffer slot by slot,
// leftmost first. No I/O happens until the next Refresh.
func (d *Dev) WriteChars(chars [numDigits]rune) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, c := range chars {
		d.buf[i] = EncodeChar(c)
	}
}

// WriteString blanks the back buffer and encodes up to the first four
// runes of s; a shorter string leaves the trailing digits dark. Anything
// past the fourth rune does not fit on the display and is dropped.
func (d *Dev) WriteString(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.buf {
		d.buf[i] = Blank
	}
	i := 0
	for _, c := range s {
		if i == numDigits {
			break
		}
		d.buf[i] = EncodeChar(c)
		i++
	}
}

// WriteNumber shows n right aligned with leading zeros, so 7 reads as
// "0007". n is clamped to what four digits can show, 0 through 9999.
func (d *Dev) WriteNumber(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > 9999 {
		n = 9999
	}
	for i, div := range [numDigits]int{1000, 100, 10, 1} {
		d.buf[i] = EncodeDigit(n / div)
		n %= div
	}
}

// Refresh shifts out the current digit's pattern together with its one-hot
// select mask and latches both onto the output pins. Exactly one digit is
// lit per call; the caller keeps calling Refresh at a steady rate so
// persistence of vision fills in the other three. The driver never
// schedules refreshes itself.
//
// The digit cursor advances before any I/O, so a failed cycle does not
// show the same digit again once the caller moves on. A failure while
// raising the latch leaves the line low; no compensating write is
// attempted and the caller decides whether to retry or force the pin high.
func (d *Dev) Refresh() error {
	return d.refresh(nil)
}

// RefreshWithDelay is Refresh with a 100µs settle pause between the bus
// write and the latch rising edge, for chains that need the shifted bits
// stable ahead of the edge. A nil s pauses via time.Sleep.
func (d *Dev) RefreshWithDelay(s Sleeper) error {
	if s == nil {
		s = timeSleeper{}
	}
	return d.refresh(s)
}

func (d *Dev) refresh(s Sleeper) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	pattern := d.buf[d.digit]
	mask := byte(1) << (numDigits - 1 - d.digit)
	d.digit = (d.digit + 1) % numDigits
	return d.strobe(pattern, mask, s)
}

// strobe clocks one pattern/mask pair through the chain and latches it.
func (d *Dev) strobe(pattern, mask byte, s Sleeper) error {
	if err := d.latch.Out(gpio.Low); err != nil {
		return &PinError{Err: err}
	}
	// The pattern goes first so it ends up in the far register driving the
	// shared segment lines; the mask stays in the near register on the
	// digit driver transistors.
	if err := d.c.Tx([]byte{pattern, mask}, nil); err != nil {
		return &TransportError{Err: err}
	}
	if s != nil {
		s.Sleep(settleTime)
	}
	if err := d.latch.Out(gpio.High); err != nil {
		return &PinError{Err: err}
	}
	return nil
}

// Halt blanks the physical display and drops the owned handles. It
// implements conn.Resource; the Dev cannot be used afterwards.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.buf {
		d.buf[i] = Blank
	}
	err := d.strobe(Blank, 0, nil)
	d.c = nil
	d.latch = nil
	return err
}

func (d *Dev) String() string {
	return devName
}

type timeSleeper struct{}

func (timeSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

var _ conn.Resource = &Dev{}
