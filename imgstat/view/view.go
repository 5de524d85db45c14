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

// View is a read-only grid of Planes() x Rows() x Cols() pixels, each with
// Channels() channels. All counts are non-negative.
type View[P any] interface {
	Planes() int
	Rows() int
	Cols() int
	Channels() int

	// At returns the pixel at the given position. Positions outside the
	// view yield the zero pixel.
	At(col, row, plane int) P

	// Origin returns a new Accessor positioned at (0, 0, 0).
	Origin() Accessor[P]
}

// Accessor is a cursor over a View. Moving it never changes the view, and a
// full walk of Planes() x Cols() x Rows() steps visits each pixel once.
// Dereferencing a cursor that has left the view is undefined.
type Accessor[P any] interface {
	NextCol()
	PrevCol()
	NextRow()
	PrevRow()
	NextPlane()
	PrevPlane()

	// Advance moves by dc columns, dr rows and dp planes.
	Advance(dc, dr, dp int)

	// Pixel returns the pixel under the cursor.
	Pixel() P
}

// RowView is implemented by views that can hand out a row of pixels
// without copying.
type RowView[P any] interface {
	View[P]

	// Row returns the Cols() pixels of the given row and plane, or nil
	// when the row is out of range or not addressable.
	Row(row, plane int) []P
}

// SameSize reports whether a and b have the same number of planes, rows
// and columns.
func SameSize[P, Q any](a View[P], b View[Q]) bool {
	return a.Planes() == b.Planes() && a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// channelsOf returns the channel count of a pixel value. Values without a
// Channels method are scalars.
func channelsOf(p any) int {
	if c, ok := p.(interface{ Channels() int }); ok {
		return c.Channels()
	}
	return 1
}

// IndexAccessor is an Accessor for any view with random access. It tracks
// a position and reads through View.At.
type IndexAccessor[P any] struct {
	view            View[P]
	col, row, plane int
}

// NewIndexAccessor returns a cursor at (0, 0, 0) of v.
func NewIndexAccessor[P any](v View[P]) *IndexAccessor[P] {
	return &IndexAccessor[P]{view: v}
}

func (a *IndexAccessor[P]) NextCol()   { a.col++ }
func (a *IndexAccessor[P]) PrevCol()   { a.col-- }
func (a *IndexAccessor[P]) NextRow()   { a.row++ }
func (a *IndexAccessor[P]) PrevRow()   { a.row-- }
func (a *IndexAccessor[P]) NextPlane() { a.plane++ }
func (a *IndexAccessor[P]) PrevPlane() { a.plane-- }

func (a *IndexAccessor[P]) Advance(dc, dr, dp int) {
	a.col += dc
	a.row += dr
	a.plane += dp
}

func (a *IndexAccessor[P]) Pixel() P {
	return a.view.At(a.col, a.row, a.plane)
}

// Position returns the current column, row and plane.
func (a *IndexAccessor[P]) Position() (col, row, plane int) {
	return a.col, a.row, a.plane
}
