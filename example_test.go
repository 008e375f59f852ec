// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341_test

import (
	"log"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ili9341"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dc := gpioreg.ByName("GPIO25")
	cs := gpioreg.ByName("GPIO8")
	rst := gpioreg.ByName("GPIO24")

	dev, err := ili9341.New(b, dc, cs, rst, &ili9341.TFT32)
	if err != nil {
		log.Fatalf("failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}

	log.Printf("%s is up, pixel format %s", dev, dev.PixelFormat())
}

func Example_sleep() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ili9341.New(b, gpioreg.ByName("GPIO25"), gpioreg.ByName("GPIO8"), gpioreg.ByName("GPIO24"), &ili9341.TFT32)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}

	// Put the panel to sleep; waking it up again needs a hardware reset
	// followed by Init.
	if err := dev.Sleep(); err != nil {
		log.Fatal(err)
	}
}
