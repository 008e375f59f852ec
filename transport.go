// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
)

// Transport is the serial engine the driver writes through.
//
// Transmit hands p to the engine. A nil return means the transfer was
// accepted, not that it physically completed; Busy reports whether an
// accepted transfer is still draining. Engines report a transient inability
// to accept the transfer with ErrBusy or ErrTimeout. Once a transfer is
// accepted it cannot be aborted.
type Transport interface {
	Transmit(p []byte) error
	Busy() bool
}

var (
	// ErrBusy is reported by a Transport that is mid-transmission.
	ErrBusy = errors.New("ili9341: transport busy")
	// ErrTimeout is reported by a Transport that gave up waiting on the bus.
	ErrTimeout = errors.New("ili9341: transport timeout")
	// ErrNoResponse is returned when the panel did not take the transfer.
	// The condition is transient; the driver does not retry.
	ErrNoResponse = errors.New("ili9341: no response from display")
	// ErrInvalidFormat is returned for a pixel format the controller does
	// not support.
	ErrInvalidFormat = errors.New("ili9341: unsupported pixel format")
)

// verdict translates a transport result into the driver-level outcome.
// Busy and timeout collapse into ErrNoResponse; anything else, including
// hard transport failures, is handed back unchanged.
func verdict(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrBusy), errors.Is(err, ErrTimeout):
		return fmt.Errorf("%w (%v)", ErrNoResponse, err)
	default:
		return err
	}
}

// connTransport adapts a synchronous conn.Conn. Tx only returns once the
// transfer is on the wire, so the engine is never busy afterwards.
type connTransport struct {
	c conn.Conn
}

func (t *connTransport) Transmit(p []byte) error {
	return t.c.Tx(p, nil)
}

func (t *connTransport) Busy() bool {
	return false
}

func (t *connTransport) String() string {
	return t.c.String()
}
