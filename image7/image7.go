// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image7 renders 4 digit 7-segment patterns into images.
//
// It complements screen7 for the cases where a picture beats a terminal:
// documentation, web previews, golden files. The patterns use the same
// active-low bit layout as segment7 (bit 7 decimal point, bits 6..0
// segments G..A).
package image7

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const numDigits = 4

// Base geometry at Scale 1, in pixels.
const (
	thickness = 8
	cellW     = 48
	cellH     = 80
	margin    = 8
	labelH    = 24
)

// Opts represents the rendering options.
type Opts struct {
	// Scale multiplies the base 48x80 digit cell. Zero means 1.
	Scale int
	// On, Off and Background override the default colors.
	On, Off, Background color.Color
	// Label is drawn centered under the digits when not empty.
	Label string

	_ struct{}
}

// Render draws the four patterns as a 7-segment display image. The error
// is only ever non-nil when a Label is requested and the embedded font
// fails to parse.
func Render(patterns [4]byte, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &Opts{}
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	on := opts.On
	if on == nil {
		on = color.NRGBA{R: 0xe8, G: 0x20, B: 0x20, A: 0xff}
	}
	off := opts.Off
	if off == nil {
		off = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	}
	bg := opts.Background
	if bg == nil {
		bg = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	}

	s := float64(scale)
	t := thickness * s
	w := cellW * s
	h := cellH * s
	m := margin * s
	pitch := w + t + m

	imgW := int(m + numDigits*pitch)
	imgH := int(h + 2*m)
	if opts.Label != "" {
		imgH += labelH * scale
	}

	dc := gg.NewContext(imgW, imgH)
	dc.SetColor(bg)
	dc.Clear()

	for i, p := range patterns {
		ox := m + float64(i)*pitch
		oy := m
		for seg := 0; seg < 7; seg++ {
			if p&(1<<seg) == 0 {
				dc.SetColor(on)
			} else {
				dc.SetColor(off)
			}
			x, y, sw, sh := segRect(ox, oy, t, w, h, seg)
			dc.DrawRoundedRectangle(x, y, sw, sh, t/2)
			dc.Fill()
		}
		if p&0x80 == 0 {
			dc.SetColor(on)
		} else {
			dc.SetColor(off)
		}
		dc.DrawCircle(ox+w+t, oy+h-t/2, t/2)
		dc.Fill()
	}

	if opts.Label != "" {
		face, err := labelFace(14 * s)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(on)
		dc.DrawStringAnchored(opts.Label, float64(imgW)/2, h+2*m+labelH*s/2, 0.5, 0.5)
	}
	return dc.Image(), nil
}

// segRect returns the bar for one of the segments A-G of a digit whose
// top left corner is at (ox, oy).
func segRect(ox, oy, t, w, h float64, seg int) (float64, float64, float64, float64) {
	vh := (h - 3*t) / 2
	switch seg {
	case 0: // A
		return ox + t, oy, w - 2*t, t
	case 1: // B
		return ox + w - t, oy + t, t, vh
	case 2: // C
		return ox + w - t, oy + (h+t)/2, t, vh
	case 3: // D
		return ox + t, oy + h - t, w - 2*t, t
	case 4: // E
		return ox, oy + (h+t)/2, t, vh
	case 5: // F
		return ox, oy + t, t, vh
	default: // G
		return ox + t, oy + (h-t)/2, w - 2*t, t
	}
}

var (
	fontOnce  sync.Once
	labelFont *truetype.Font
	fontErr   error
)

func labelFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		labelFont, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return truetype.NewFace(labelFont, &truetype.Options{Size: size}), nil
}
