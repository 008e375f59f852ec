// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

// Analog bias codes.
//
// The mapping from physical voltage to register code is fixed by the board
// revision; only the codes validated against this panel are defined. Deriving
// other codes at runtime is not supported.

// GVDD is the reference level for the grayscale voltage generator
// (Power Control 1). GVDD must stay at or below AVDD - 0.5V.
type GVDD byte

// GVDD4V6 sets GVDD to 4.6V.
const GVDD4V6 GVDD = 0x23

func (g GVDD) String() string {
	if g == GVDD4V6 {
		return "GVDD=4.6V"
	}
	return "GVDD=unknown"
}

// VCOMH is the high level of the VCOM drive (VCOM Control 1, first byte).
type VCOMH byte

// VCOMH4V25 sets VCOMH to 4.25V.
const VCOMH4V25 VCOMH = 0x3E

func (v VCOMH) String() string {
	if v == VCOMH4V25 {
		return "VCOMH=4.25V"
	}
	return "VCOMH=unknown"
}

// VCOML is the low level of the VCOM drive (VCOM Control 1, second byte).
type VCOML byte

// VCOMLNeg1V5 sets VCOML to -1.5V.
const VCOMLNeg1V5 VCOML = 0x28

func (v VCOML) String() string {
	if v == VCOMLNeg1V5 {
		return "VCOML=-1.5V"
	}
	return "VCOML=unknown"
}

// VMF offsets both VCOMH and VCOML from their programmed levels
// (VCOM Control 2).
type VMF byte

// VMFNeg58 offsets VCOMH and VCOML by -58 each.
const VMFNeg58 VMF = 0x86

func (v VMF) String() string {
	if v == VMFNeg58 {
		return "VMF=-58"
	}
	return "VMF=unknown"
}

// MADCTL (Memory Access Control) bit positions. Bits 0 and 1 are reserved
// and must stay zero.
const (
	madctlMH  byte = 1 << 2 // horizontal refresh order
	madctlBGR byte = 1 << 3 // color filter panel order
	madctlML  byte = 1 << 4 // vertical refresh order
	madctlMV  byte = 1 << 5 // row/column exchange
	madctlMX  byte = 1 << 6 // column address order
	madctlMY  byte = 1 << 7 // row address order
)

// MemoryAccess selects the read/write scanning direction of the frame memory
// and the color channel order.
type MemoryAccess struct {
	// RefreshRightToLeft refreshes columns from right to left (MH).
	RefreshRightToLeft bool
	// BGR selects a BGR color filter panel instead of RGB.
	BGR bool
	// RefreshBottomToTop refreshes rows from bottom to top (ML).
	RefreshBottomToTop bool
	// RowColumnExchange swaps the row and column addressing (MV).
	RowColumnExchange bool
	// ReverseColumns reverses the column address order (MX).
	ReverseColumns bool
	// ReverseRows reverses the row address order (MY).
	ReverseRows bool
}

// encode packs the scan direction flags into a MADCTL data byte.
func (m MemoryAccess) encode() byte {
	var b byte
	if m.RefreshRightToLeft {
		b |= madctlMH
	}
	if m.BGR {
		b |= madctlBGR
	}
	if m.RefreshBottomToTop {
		b |= madctlML
	}
	if m.RowColumnExchange {
		b |= madctlMV
	}
	if m.ReverseColumns {
		b |= madctlMX
	}
	if m.ReverseRows {
		b |= madctlMY
	}
	return b
}

// PixelFormat selects how color values are packed for the controller.
type PixelFormat uint8

// Supported pixel formats.
const (
	// PixelFormat16bit packs a pixel as 5/6/5 bits in 16 (65k colors).
	PixelFormat16bit PixelFormat = iota
	// PixelFormat18bit packs a pixel as 6/6/6 bits (262k colors).
	PixelFormat18bit
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormat16bit:
		return "16bpp"
	case PixelFormat18bit:
		return "18bpp"
	default:
		return "unknown"
	}
}

// COLMOD interface format codes. The same code is used for the DBI (MCU
// interface, bits 0-2) and DPI (RGB interface, bits 4-6) fields; bits 3 and
// 7 stay zero.
const (
	ifpf16bit byte = 0x05
	ifpf18bit byte = 0x06
)

// encode packs the format into a COLMOD data byte, DPI in the high nibble
// and DBI in the low one. ok is false for formats the controller does not
// know.
func (f PixelFormat) encode() (b byte, ok bool) {
	var code byte
	switch f {
	case PixelFormat16bit:
		code = ifpf16bit
	case PixelFormat18bit:
		code = ifpf18bit
	default:
		return 0, false
	}
	return code<<4 | code, true
}
