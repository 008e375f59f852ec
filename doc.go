// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ili9341 controls the ILI9341 240x320 262k color TFT LCD controller
// over SPI.
//
// The driver performs the panel bring-up: hardware and software reset, the
// analog bias configuration (power control, VCOM), memory access control,
// pixel format and display function control, then exits sleep mode and turns
// the display on. Frame memory writes are not implemented.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
package ili9341
