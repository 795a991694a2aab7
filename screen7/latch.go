// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen7

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Latch is the strobe line of the emulated shift register chain. The
// shifted bytes are committed to the digits on the rising edge, matching
// the ST_CP behavior of a 74HC595.
type Latch struct {
	dev   *Dev
	level gpio.Level
}

// Halt implements conn.Resource.
func (l *Latch) Halt() error {
	return nil
}

// Name returns the name of the GPIO pin.
func (l *Latch) Name() string {
	return "SCREEN7_LATCH"
}

// Number returns the number of the GPIO pin.
func (l *Latch) Number() int {
	return 0
}

// Deprecated: returns "Out"
func (l *Latch) Function() string {
	return "Out"
}

// Out drives the latch line. A Low to High transition commits the shift
// state to the display; everything else only tracks the level.
func (l *Latch) Out(level gpio.Level) error {
	rising := level == gpio.High && l.level == gpio.Low
	l.level = level
	if rising {
		return l.dev.latched()
	}
	return nil
}

// Not implemented.
func (l *Latch) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrNotImplemented
}

func (l *Latch) String() string {
	return l.Name()
}

var _ gpio.PinOut = &Latch{}
