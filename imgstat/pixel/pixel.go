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

package pixel

import "fmt"

// Pixel is a value with Channels() homogeneous scalar channels.
// Channel panics for an index outside [0, Channels()).
type Pixel[C Channel] interface {
	Channels() int
	Channel(i int) C
}

// PackedChannels reports whether p is one of the fixed-size encodings of
// this package over C, whose in-memory layout is exactly Channels()
// consecutive channel values with no padding, and returns that count. A
// slice of such pixels can be read as a flat slice of channels.
//
// The match is on the exact type: named types that embed an encoding, and
// pointers to encodings, are not packed.
func PackedChannels[C Channel](p any) (int, bool) {
	switch p.(type) {
	case Gray[C]:
		return 1, true
	case GrayA[C]:
		return 2, true
	case RGB[C], HSV[C], XYZ[C]:
		return 3, true
	case RGBA[C]:
		return 4, true
	}
	return 0, false
}

func channelPanic(encoding string, i, n int) {
	panic(fmt.Sprintf("pixel: channel index %d out of range for %s with %d channels", i, encoding, n))
}

// Gray is a single-channel pixel, the scalar case of Pixel.
type Gray[C Channel] struct {
	V C
}

func (Gray[C]) Channels() int { return 1 }

func (p Gray[C]) Channel(i int) C {
	if i != 0 {
		channelPanic("Gray", i, 1)
	}
	return p.V
}

// GrayA is a gray value with an alpha channel. Alpha is reduced like any
// other channel.
type GrayA[C Channel] struct {
	V, A C
}

func (GrayA[C]) Channels() int { return 2 }

func (p GrayA[C]) Channel(i int) C {
	switch i {
	case 0:
		return p.V
	case 1:
		return p.A
	}
	channelPanic("GrayA", i, 2)
	return p.V
}

// RGB is a red, green, blue pixel.
type RGB[C Channel] struct {
	R, G, B C
}

func (RGB[C]) Channels() int { return 3 }

func (p RGB[C]) Channel(i int) C {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	}
	channelPanic("RGB", i, 3)
	return p.R
}

// RGBA is a red, green, blue, alpha pixel.
type RGBA[C Channel] struct {
	R, G, B, A C
}

func (RGBA[C]) Channels() int { return 4 }

func (p RGBA[C]) Channel(i int) C {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	case 3:
		return p.A
	}
	channelPanic("RGBA", i, 4)
	return p.R
}

// HSV is a hue, saturation, value pixel.
type HSV[C Channel] struct {
	H, S, V C
}

func (HSV[C]) Channels() int { return 3 }

func (p HSV[C]) Channel(i int) C {
	switch i {
	case 0:
		return p.H
	case 1:
		return p.S
	case 2:
		return p.V
	}
	channelPanic("HSV", i, 3)
	return p.H
}

// XYZ is a CIE 1931 XYZ pixel.
type XYZ[C Channel] struct {
	X, Y, Z C
}

func (XYZ[C]) Channels() int { return 3 }

func (p XYZ[C]) Channel(i int) C {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	channelPanic("XYZ", i, 3)
	return p.X
}

// Vector is a pixel with any number of channels, for example one band per
// wavelength of a multispectral sample. Every pixel of a view must have the
// same length.
type Vector[C Channel] []C

func (p Vector[C]) Channels() int { return len(p) }

func (p Vector[C]) Channel(i int) C {
	if i < 0 || i >= len(p) {
		channelPanic("Vector", i, len(p))
	}
	return p[i]
}
