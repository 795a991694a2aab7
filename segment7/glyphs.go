// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment7

// Segment naming and bit layout. Bit 7 is the decimal point, bits 6..0 are
// segments G..A. The patterns are active low: a cleared bit lights the
// segment, which is what the common-anode wiring of these modules expects.
//
//	     A
//	    ===
//	F ||   || B
//	    =G=
//	E ||   || C
//	    ===
//	     D

// Blank is the pattern with every segment off.
const Blank byte = 0xff

const (
	minus      byte = 0b1011_1111
	underscore byte = 0b1111_0111
)

// numerals holds the digit patterns, indexed by value.
var numerals = [10]byte{
	//.GFE_DCBA
	0b1100_0000, // 0
	0b1111_1001, // 1
	0b1010_0100, // 2
	0b1011_0000, // 3
	0b1001_1001, // 4
	0b1001_0010, // 5
	0b1000_0010, // 6
	0b1111_1000, // 7
	0b1000_0000, // 8
	0b1001_1000, // 9
}

// letters approximates the alphabet. Seven segments cannot tell some
// letters apart, so a few shapes are shared ('U' and 'V', 'S' and '5').
var letters = [26]byte{
	//.GFE_DCBA
	0b1000_1000, // A
	0b1000_0011, // B
	0b1100_0110, // C
	0b1010_0001, // D
	0b1000_0110, // E
	0b1000_1110, // F
	0b1100_0010, // G
	0b1000_1001, // H
	0b1100_1111, // I
	0b1110_0001, // J
	0b1000_1010, // K
	0b1100_0111, // L
	0b1110_1010, // M
	0b1100_1000, // N
	0b1100_0000, // O
	0b1000_1100, // P
	0b1001_0100, // Q
	0b1100_1100, // R
	0b1001_0010, // S
	0b1000_0111, // T
	0b1100_0001, // U
	0b1100_0001, // V
	0b1101_0101, // W
	0b1000_1001, // X
	0b1001_0001, // Y
	0b1010_0100, // Z
}

// EncodeDigit returns the pattern for a decimal digit. Values outside 0-9
// come back blank.
func EncodeDigit(n int) byte {
	if n < 0 || n > 9 {
		return Blank
	}
	return numerals[n]
}

// EncodeChar returns the pattern approximating c on one 7-segment digit.
// Digits and letters (case-insensitive) use the lookup tables; space, '-'
// and '_' map to their obvious shapes. Everything else comes back blank,
// so EncodeChar never fails.
func EncodeChar(c rune) byte {
	switch {
	case c >= '0' && c <= '9':
		return numerals[c-'0']
	case c >= 'A' && c <= 'Z':
		return letters[c-'A']
	case c >= 'a' && c <= 'z':
		return letters[c-'a']
	case c == ' ':
		return Blank
	case c == '-':
		return minus
	case c == '_':
		return underscore
	}
	return Blank
}
