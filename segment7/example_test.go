// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment7

import (
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	// Open the SPI bus the shift registers are clocked from.
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()
	// The latch/strobe line is an ordinary GPIO.
	latch := gpioreg.ByName("GPIO24")
	if latch == nil {
		log.Fatal("latch pin not found")
	}
	dev, err := NewSPI(p, latch)
	if err != nil {
		log.Fatal(err)
	}

	dev.WriteString("HELO")
	// Multiplex forever; Scan lights one digit per cycle.
	if err := dev.Scan(make(chan struct{}), nil); err != nil {
		log.Fatal(err)
	}
}
