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

import "github.com/ajroetker/go-imgstat/imgstat/lanes"

// Image is a multi-plane pixel grid that owns its storage.
//
// Within a plane, rows are stored one after another and each row is padded
// to a multiple of the vector lane count for P, so a row never starts in the
// middle of a vector. Planes follow each other in the same buffer.
type Image[P any] struct {
	data     []P
	cols     int
	rows     int
	planes   int
	channels int
	stride   int // pixels per row, including padding
}

// NewImage creates a zero-filled image. Non-positive dimensions give an
// empty image with no planes, rows or columns.
//
// The channel count is taken from the zero pixel, which is right for every
// fixed-size encoding. Use NewImageChannels for pixel.Vector.
func NewImage[P any](cols, rows, planes int) *Image[P] {
	var zero P
	return NewImageChannels[P](cols, rows, planes, channelsOf(zero))
}

// NewImageChannels creates a zero-filled image whose pixels report the given
// number of channels.
func NewImageChannels[P any](cols, rows, planes, channels int) *Image[P] {
	if channels < 0 {
		channels = 0
	}
	if cols <= 0 || rows <= 0 || planes <= 0 {
		return &Image[P]{channels: channels}
	}

	// Round the row length up to the vector width.
	n := lanes.MaxLanes[P]()
	stride := ((cols + n - 1) / n) * n

	return &Image[P]{
		data:     make([]P, stride*rows*planes),
		cols:     cols,
		rows:     rows,
		planes:   planes,
		channels: channels,
		stride:   stride,
	}
}

// Cols returns the image width in pixels.
func (img *Image[P]) Cols() int { return img.cols }

// Rows returns the image height in pixels.
func (img *Image[P]) Rows() int { return img.rows }

// Planes returns the number of planes.
func (img *Image[P]) Planes() int { return img.planes }

// Channels returns the number of channels per pixel.
func (img *Image[P]) Channels() int { return img.channels }

// Stride returns the number of pixels per row, including padding.
func (img *Image[P]) Stride() int { return img.stride }

func (img *Image[P]) index(col, row, plane int) int {
	return (plane*img.rows+row)*img.stride + col
}

func (img *Image[P]) inside(col, row, plane int) bool {
	return col >= 0 && col < img.cols &&
		row >= 0 && row < img.rows &&
		plane >= 0 && plane < img.planes
}

// At returns the pixel at (col, row, plane), or the zero pixel outside the
// image.
func (img *Image[P]) At(col, row, plane int) P {
	if !img.inside(col, row, plane) {
		var zero P
		return zero
	}
	return img.data[img.index(col, row, plane)]
}

// Set stores a pixel. Writes outside the image are ignored.
func (img *Image[P]) Set(col, row, plane int, p P) {
	if !img.inside(col, row, plane) {
		return
	}
	img.data[img.index(col, row, plane)] = p
}

// Row returns a mutable slice holding the Cols() pixels of a row.
func (img *Image[P]) Row(row, plane int) []P {
	if row < 0 || row >= img.rows || plane < 0 || plane >= img.planes {
		return nil
	}
	start := img.index(0, row, plane)
	return img.data[start : start+img.cols]
}

// PaddedRow is like Row but extends to Stride() pixels. The padding can be
// read and written but is not part of the image.
func (img *Image[P]) PaddedRow(row, plane int) []P {
	if row < 0 || row >= img.rows || plane < 0 || plane >= img.planes {
		return nil
	}
	start := img.index(0, row, plane)
	return img.data[start : start+img.stride]
}

// Plane returns a single-plane image sharing storage with plane p, or nil
// if p is out of range.
func (img *Image[P]) Plane(p int) *Image[P] {
	if p < 0 || p >= img.planes {
		return nil
	}
	size := img.stride * img.rows
	return &Image[P]{
		data:     img.data[p*size : (p+1)*size : (p+1)*size],
		cols:     img.cols,
		rows:     img.rows,
		planes:   1,
		channels: img.channels,
		stride:   img.stride,
	}
}

// Fill sets every pixel, padding included, to p.
func (img *Image[P]) Fill(p P) {
	for i := range img.data {
		img.data[i] = p
	}
}

// Clone returns a deep copy of the pixel buffer. Pixels that hold
// references, such as pixel.Vector, still share their backing arrays.
func (img *Image[P]) Clone() *Image[P] {
	clone := *img
	clone.data = make([]P, len(img.data))
	copy(clone.data, img.data)
	return &clone
}

// Origin returns a cursor at (0, 0, 0).
func (img *Image[P]) Origin() Accessor[P] {
	return &imageAccessor[P]{
		data:      img.data,
		rowStep:   img.stride,
		planeStep: img.stride * img.rows,
	}
}

// imageAccessor walks an Image by offset arithmetic.
type imageAccessor[P any] struct {
	data      []P
	offset    int
	rowStep   int
	planeStep int
}

func (a *imageAccessor[P]) NextCol()   { a.offset++ }
func (a *imageAccessor[P]) PrevCol()   { a.offset-- }
func (a *imageAccessor[P]) NextRow()   { a.offset += a.rowStep }
func (a *imageAccessor[P]) PrevRow()   { a.offset -= a.rowStep }
func (a *imageAccessor[P]) NextPlane() { a.offset += a.planeStep }
func (a *imageAccessor[P]) PrevPlane() { a.offset -= a.planeStep }

func (a *imageAccessor[P]) Advance(dc, dr, dp int) {
	a.offset += dc + dr*a.rowStep + dp*a.planeStep
}

func (a *imageAccessor[P]) Pixel() P {
	return a.data[a.offset]
}

// Load copies any view into a new Image, one row at a time when the source
// is a RowView.
func Load[P any](v View[P]) *Image[P] {
	img := NewImageChannels[P](v.Cols(), v.Rows(), v.Planes(), v.Channels())
	rv, _ := v.(RowView[P])
	for p := 0; p < img.planes; p++ {
		for r := 0; r < img.rows; r++ {
			dst := img.Row(r, p)
			if rv != nil {
				if src := rv.Row(r, p); len(src) == len(dst) {
					copy(dst, src)
					continue
				}
			}
			for c := range dst {
				dst[c] = v.At(c, r, p)
			}
		}
	}
	return img
}
