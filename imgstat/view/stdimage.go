// Copyright 2026 go-imgstat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package view

import (
	"image"
	"image/color"

	"github.com/ajroetker/go-imgstat/imgstat/pixel"
)

// Converter maps a Go color to a pixel.
type Converter[P any] func(c color.Color) P

// StdImage presents a Go image.Image as a single-plane View without copying.
// Every read goes through image.Image.At and the converter, so Load the
// view first if it will be reduced more than once.
type StdImage[P any] struct {
	img      image.Image
	bounds   image.Rectangle
	conv     Converter[P]
	channels int
}

// FromImage wraps img. The channel count is taken from the converted
// top-left pixel, or from the zero pixel when img is empty.
func FromImage[P any](img image.Image, conv Converter[P]) *StdImage[P] {
	b := img.Bounds()
	v := &StdImage[P]{img: img, bounds: b, conv: conv}
	if b.Empty() {
		var zero P
		v.channels = channelsOf(zero)
	} else {
		v.channels = channelsOf(conv(img.At(b.Min.X, b.Min.Y)))
	}
	return v
}

func (v *StdImage[P]) Planes() int {
	if v.bounds.Empty() {
		return 0
	}
	return 1
}

func (v *StdImage[P]) Rows() int     { return v.bounds.Dy() }
func (v *StdImage[P]) Cols() int     { return v.bounds.Dx() }
func (v *StdImage[P]) Channels() int { return v.channels }

// At converts the color at (col, row) relative to the image bounds.
func (v *StdImage[P]) At(col, row, plane int) P {
	if plane != 0 || col < 0 || col >= v.Cols() || row < 0 || row >= v.Rows() {
		var zero P
		return zero
	}
	return v.conv(v.img.At(v.bounds.Min.X+col, v.bounds.Min.Y+row))
}

func (v *StdImage[P]) Origin() Accessor[P] {
	return NewIndexAccessor[P](v)
}

// Image returns the wrapped image.
func (v *StdImage[P]) Image() image.Image {
	return v.img
}

// IsGray reports whether img stores a single gray channel.
func IsGray(img image.Image) bool {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	}
	return false
}

// GrayConverter reads colors as 16-bit gray and scales the value with f.
func GrayConverter[C pixel.Channel](f func(uint16) C) Converter[pixel.Gray[C]] {
	return func(c color.Color) pixel.Gray[C] {
		g := color.Gray16Model.Convert(c).(color.Gray16)
		return pixel.Gray[C]{V: f(g.Y)}
	}
}

// RGBConverter reads straight (non-premultiplied) 16-bit color and drops
// alpha.
func RGBConverter[C pixel.Channel](f func(uint16) C) Converter[pixel.RGB[C]] {
	return func(c color.Color) pixel.RGB[C] {
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		return pixel.RGB[C]{R: f(n.R), G: f(n.G), B: f(n.B)}
	}
}

// RGBAConverter reads straight (non-premultiplied) 16-bit color. Alpha is
// kept as a fourth channel and is not applied to the others.
func RGBAConverter[C pixel.Channel](f func(uint16) C) Converter[pixel.RGBA[C]] {
	return func(c color.Color) pixel.RGBA[C] {
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		return pixel.RGBA[C]{R: f(n.R), G: f(n.G), B: f(n.B), A: f(n.A)}
	}
}
