// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management.
//
// Once an operation fails every later one becomes a no-op and the first
// error is what the caller gets back. The exception is chip-select release,
// which runs on failed frames too.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.cs.Out(l)
}

// csRelease de-asserts chip-select even when an earlier operation failed.
// A failed frame must not leave the panel selected.
func (eh *errorHandler) csRelease() {
	if err := eh.d.cs.Out(gpio.High); err != nil && eh.err == nil {
		eh.err = err
	}
}

// transmit spins until the engine is idle, then hands it p. The wait happens
// before issuing the transfer, not after: a nil verdict means accepted, not
// physically complete. Every accessor of a shared engine must honor the same
// discipline.
func (eh *errorHandler) transmit(p []byte) {
	if eh.err != nil {
		return
	}
	for eh.d.t.Busy() {
	}
	eh.err = verdict(eh.d.t.Transmit(p))
}

func (eh *errorHandler) wait(d time.Duration) {
	if eh.err != nil {
		return
	}
	eh.d.sleep(d)
}

// sendCommand sends one opcode, followed by its payload when data is not
// empty, under a single chip-select assertion. D/C is low for the opcode and
// high for the payload.
func (eh *errorHandler) sendCommand(cmd byte, data ...byte) {
	if eh.err != nil {
		return
	}
	eh.dcOut(gpio.Low)
	eh.csOut(gpio.Low)
	eh.transmit([]byte{cmd})
	if len(data) > 0 {
		eh.dcOut(gpio.High)
		eh.transmit(data)
	}
	eh.csRelease()
}
