// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image16bit provides the pixel encodings native to the ILI9341
// frame memory interface.
//
// RGB565 packs a pixel as 5/6/5 bits in a uint16 (65k colors); RGB666 packs
// 6/6/6 bits in a uint32 container with 2-bit gaps between the channels
// (262k colors). Which one a display accepts depends on the pixel format
// committed to the controller.
package image16bit

import (
	"image"
	"image/color"
)

// RGB565 is a 16 bit per pixel color: blue in bits 0-4, green in bits 5-10,
// red in bits 11-15.
type RGB565 uint16

// NewRGB565 packs 8 bit color channels into an RGB565 value, dropping the
// low bits of each channel.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA implements color.Color. Channels are expanded by bit replication so
// full scale maps to full scale.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c >> 11 & 0x1F)
	g6 := uint32(c >> 5 & 0x3F)
	b5 := uint32(c & 0x1F)
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

func toRGB565(c color.Color) color.Color {
	if c565, ok := c.(RGB565); ok {
		return c565
	}
	r, g, b, _ := c.RGBA()
	return NewRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// RGB666 is an 18 bit per pixel color in a 32 bit container: blue in bits
// 2-7, green in bits 10-15, red in bits 18-23. Bits 0-1, 8-9 and 16-17 are
// reserved and stay zero.
type RGB666 uint32

// NewRGB666 packs 8 bit color channels into an RGB666 value, dropping the
// two low bits of each channel.
func NewRGB666(r, g, b uint8) RGB666 {
	return RGB666(uint32(r>>2)<<18 | uint32(g>>2)<<10 | uint32(b>>2)<<2)
}

// RGBA implements color.Color.
func (c RGB666) RGBA() (r, g, b, a uint32) {
	r6 := uint32(c >> 18 & 0x3F)
	g6 := uint32(c >> 10 & 0x3F)
	b6 := uint32(c >> 2 & 0x3F)
	r8 := r6<<2 | r6>>4
	g8 := g6<<2 | g6>>4
	b8 := b6<<2 | b6>>4
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

func toRGB666(c color.Color) color.Color {
	if c666, ok := c.(RGB666); ok {
		return c666
	}
	r, g, b, _ := c.RGBA()
	return NewRGB666(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB666Model converts colors to RGB666.
var RGB666Model = color.ModelFunc(toRGB666)

// Image is an in-memory RGB565 image laid out in the controller's wire
// order: two bytes per pixel, high byte first.
type Image struct {
	// Pix holds the pixels, in wire order.
	Pix []byte
	// Stride is the Pix stride between vertically adjacent pixels, in
	// bytes.
	Stride int
	// Rect is the image bounds.
	Rect image.Rectangle
}

// NewImage returns an initialized, all black Image.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := 2 * w
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model {
	return RGB565Model
}

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y). Points outside
// the bounds are black.
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.pixOffset(x, y)
	return RGB565(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y). Points outside the bounds are
// dropped.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.pixOffset(x, y)
	p.Pix[i] = byte(c >> 8)
	p.Pix[i+1] = byte(c)
}

func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

var _ image.Image = &Image{}
