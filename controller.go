// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

import "time"

type controller interface {
	sendCommand(cmd byte, data ...byte)
	wait(time.Duration)
}

// initSequence walks the controller through the fixed bring-up. The handler
// behind ctrl stops transmitting after the first failed step, so a failure
// aborts the remainder of the sequence.
//
// A hardware reset must have completed before this runs.
func initSequence(ctrl controller, opts *Opts) {
	// Software reset. The panel needs 5ms before the next command.
	ctrl.sendCommand(softwareReset)
	ctrl.wait(5 * time.Millisecond)

	// Power Control 1: GVDD level.
	ctrl.sendCommand(powerControl1, byte(opts.GVDD))

	// VCOM Control 1: VCOMH, VCOML.
	ctrl.sendCommand(vcomControl1, byte(opts.VCOMH), byte(opts.VCOML))

	// VCOM Control 2: VMF offset.
	ctrl.sendCommand(vcomControl2, byte(opts.VMF))

	// Memory Access Control: frame memory scan direction and channel order.
	ctrl.sendCommand(memoryAccessControl, opts.Access.encode())

	// Interface Pixel Format, both the MCU and RGB interfaces.
	colmod, _ := opts.Format.encode()
	ctrl.sendCommand(pixelFormatSet, colmod)

	// Display Function Control, power-on defaults except the source and
	// VCOM outputs on non-display area: source V63/V0, VCOM VCOML/VCOMH.
	ctrl.sendCommand(displayFunctionControl, 0x08, 0x82, 0x27)

	// Sleep Out. 5ms before the next command, 120ms before Display On may
	// follow (datasheet 8.2.12).
	ctrl.sendCommand(sleepOut)
	ctrl.wait(5 * time.Millisecond)
	ctrl.wait(120 * time.Millisecond)

	ctrl.sendCommand(displayOn)
}
