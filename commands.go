// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

// Commands (ILI9341 datasheet, pp. 83-88).
const (
	nop                    byte = 0x00
	softwareReset          byte = 0x01
	sleepIn                byte = 0x10
	sleepOut               byte = 0x11
	displayOff             byte = 0x28
	displayOn              byte = 0x29
	columnAddressSet       byte = 0x2A
	pageAddressSet         byte = 0x2B
	memoryWrite            byte = 0x2C
	memoryAccessControl    byte = 0x36
	pixelFormatSet         byte = 0x3A
	displayFunctionControl byte = 0xB6
	powerControl1          byte = 0xC0
	vcomControl1           byte = 0xC5
	vcomControl2           byte = 0xC7
)
