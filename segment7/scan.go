// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment7

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultScanPeriod spaces Refresh calls so each digit cycles at 125Hz,
// comfortably above the flicker threshold.
const DefaultScanPeriod = 2 * time.Millisecond

// ScanOpts adjusts Scan. The zero value refreshes every DefaultScanPeriod
// on the wall clock.
type ScanOpts struct {
	// Period is the spacing between Refresh calls.
	Period time.Duration
	// Clock supplies the timing source. Tests substitute a
	// clockwork.FakeClock.
	Clock clockwork.Clock
}

// Scan calls Refresh on a steady cadence until stop is closed or a cycle
// fails, whichever comes first. It blocks the calling goroutine; run it
// from a dedicated one when the firmware has other work to do. The Write
// methods may keep mutating the back buffer from other goroutines while
// Scan runs.
func (d *Dev) Scan(stop <-chan struct{}, opts *ScanOpts) error {
	period := DefaultScanPeriod
	var clk clockwork.Clock
	if opts != nil {
		if opts.Period > 0 {
			period = opts.Period
		}
		clk = opts.Clock
	}
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	for {
		select {
		case <-stop:
			return nil
		case <-clk.After(period):
			if err := d.Refresh(); err != nil {
				return err
			}
		}
	}
}
