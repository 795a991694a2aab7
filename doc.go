// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segmentdisplay is a container for the 4 digit 7-segment display
// driver and its host-side companions.
//
// The driver itself lives in segment7. screen7 emulates the display at the
// terminal and image7 renders it into images.
package segmentdisplay
