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
	"testing"

	"github.com/ajroetker/go-imgstat/imgstat/lanes"
	"github.com/ajroetker/go-imgstat/imgstat/pixel"
)

func TestNewImage(t *testing.T) {
	img := NewImage[pixel.Gray[float32]](100, 50, 3)

	if img.Cols() != 100 || img.Rows() != 50 || img.Planes() != 3 {
		t.Errorf("dimensions: got %dx%dx%d, want 100x50x3", img.Cols(), img.Rows(), img.Planes())
	}
	if img.Channels() != 1 {
		t.Errorf("Channels: got %d, want 1", img.Channels())
	}

	// Stride should be >= width and aligned to the lane count.
	n := lanes.MaxLanes[pixel.Gray[float32]]()
	if img.Stride() < 100 {
		t.Errorf("Stride: got %d, want >= 100", img.Stride())
	}
	if img.Stride()%n != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", img.Stride(), n)
	}

	if got := NewImage[pixel.RGBA[uint8]](1, 1, 1).Channels(); got != 4 {
		t.Errorf("RGBA Channels: got %d, want 4", got)
	}
	if got := NewImage[float64](1, 1, 1).Channels(); got != 1 {
		t.Errorf("scalar Channels: got %d, want 1", got)
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	for _, dims := range [][3]int{{0, 0, 0}, {-1, 10, 1}, {10, 0, 1}, {10, 10, 0}} {
		img := NewImage[pixel.Gray[uint8]](dims[0], dims[1], dims[2])
		if !Empty[pixel.Gray[uint8]](img) {
			t.Errorf("NewImage(%v): want empty image", dims)
		}
		if img.Row(0, 0) != nil {
			t.Errorf("NewImage(%v).Row(0, 0): want nil", dims)
		}
	}
}

func TestImage_SetAt(t *testing.T) {
	img := NewImage[pixel.RGB[int16]](4, 3, 2)
	want := pixel.RGB[int16]{R: 1, G: -2, B: 3}
	img.Set(3, 2, 1, want)

	if got := img.At(3, 2, 1); got != want {
		t.Errorf("At(3, 2, 1): got %v, want %v", got, want)
	}
	if got := img.At(3, 2, 0); got != (pixel.RGB[int16]{}) {
		t.Errorf("At(3, 2, 0): got %v, want zero", got)
	}

	// Out of bounds reads give zero and writes are ignored.
	img.Set(4, 0, 0, want)
	img.Set(0, 0, 2, want)
	for _, pos := range [][3]int{{-1, 0, 0}, {4, 0, 0}, {0, 3, 0}, {0, 0, 2}} {
		if got := img.At(pos[0], pos[1], pos[2]); got != (pixel.RGB[int16]{}) {
			t.Errorf("At(%v): got %v, want zero", pos, got)
		}
	}
}

func TestImage_Rows(t *testing.T) {
	img := NewImage[pixel.Gray[uint8]](10, 5, 2)

	row := img.Row(1, 1)
	if len(row) != 10 {
		t.Fatalf("Row length: got %d, want 10", len(row))
	}
	for i := range row {
		row[i] = pixel.Gray[uint8]{V: uint8(i)}
	}
	if got := img.At(7, 1, 1).V; got != 7 {
		t.Errorf("At after Row write: got %d, want 7", got)
	}
	if img.At(7, 1, 0).V != 0 {
		t.Error("Row write leaked into another plane")
	}

	if got := len(img.PaddedRow(1, 1)); got != img.Stride() {
		t.Errorf("PaddedRow length: got %d, want %d", got, img.Stride())
	}
	for _, pos := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 2}} {
		if img.Row(pos[0], pos[1]) != nil || img.PaddedRow(pos[0], pos[1]) != nil {
			t.Errorf("Row(%d, %d): want nil", pos[0], pos[1])
		}
	}
}

func TestImage_Plane(t *testing.T) {
	img := NewImage[pixel.Gray[uint16]](3, 2, 3)
	img.Set(2, 1, 2, pixel.Gray[uint16]{V: 42})

	p := img.Plane(2)
	if p.Planes() != 1 || p.Cols() != 3 || p.Rows() != 2 {
		t.Fatalf("Plane dims: got %dx%dx%d", p.Cols(), p.Rows(), p.Planes())
	}
	if got := p.At(2, 1, 0).V; got != 42 {
		t.Errorf("Plane(2).At(2, 1, 0): got %d, want 42", got)
	}

	// Planes share storage with the parent.
	p.Set(0, 0, 0, pixel.Gray[uint16]{V: 7})
	if got := img.At(0, 0, 2).V; got != 7 {
		t.Errorf("parent after Plane write: got %d, want 7", got)
	}
	if img.Plane(3) != nil || img.Plane(-1) != nil {
		t.Error("Plane out of range: want nil")
	}
}

func TestImage_FillClone(t *testing.T) {
	img := NewImage[pixel.Gray[float32]](5, 5, 1)
	img.Fill(pixel.Gray[float32]{V: 3.5})

	clone := img.Clone()
	img.Set(0, 0, 0, pixel.Gray[float32]{V: 1})

	if got := clone.At(0, 0, 0).V; got != 3.5 {
		t.Errorf("Clone is not independent: got %v, want 3.5", got)
	}
	if got := clone.At(4, 4, 0).V; got != 3.5 {
		t.Errorf("Clone value: got %v, want 3.5", got)
	}
}

func TestImage_Accessor(t *testing.T) {
	img := NewImage[pixel.Gray[int32]](4, 3, 2)
	for p := range 2 {
		for r := range 3 {
			for c := range 4 {
				img.Set(c, r, p, pixel.Gray[int32]{V: int32(100*p + 10*r + c)})
			}
		}
	}

	acc := img.Origin()
	if got := acc.Pixel().V; got != 0 {
		t.Errorf("Origin: got %d, want 0", got)
	}
	acc.NextCol()
	acc.NextRow()
	acc.NextPlane()
	if got := acc.Pixel().V; got != 111 {
		t.Errorf("after Next*: got %d, want 111", got)
	}
	acc.Advance(2, 1, -1)
	if got := acc.Pixel().V; got != 23 {
		t.Errorf("after Advance(2, 1, -1): got %d, want 23", got)
	}
	acc.PrevCol()
	acc.PrevRow()
	if got := acc.Pixel().V; got != 12 {
		t.Errorf("after Prev*: got %d, want 12", got)
	}
	acc.NextPlane()
	acc.PrevPlane()
	if got := acc.Pixel().V; got != 12 {
		t.Errorf("after NextPlane/PrevPlane: got %d, want 12", got)
	}
}

// A full walk must visit each cell once, whatever the view.
func TestAccessorWalkVisitsEachCellOnce(t *testing.T) {
	img := NewImage[pixel.Gray[int32]](5, 4, 3)
	for p := range 3 {
		for r := range 4 {
			for c := range 5 {
				img.Set(c, r, p, pixel.Gray[int32]{V: int32(p*20 + r*5 + c)})
			}
		}
	}

	for name, v := range map[string]View[pixel.Gray[int32]]{
		"image": img,
		"index": indexOnly[pixel.Gray[int32]]{img},
	} {
		seen := make(map[int32]int)
		acc := v.Origin()
		for p := 0; p < v.Planes(); p++ {
			for c := 0; c < v.Cols(); c++ {
				for r := 0; r < v.Rows(); r++ {
					seen[acc.Pixel().V]++
					acc.NextRow()
				}
				acc.Advance(1, -v.Rows(), 0)
			}
			acc.Advance(-v.Cols(), 0, 1)
		}
		if len(seen) != 60 {
			t.Errorf("%s: visited %d distinct cells, want 60", name, len(seen))
		}
		for val, n := range seen {
			if n != 1 {
				t.Errorf("%s: cell %d visited %d times", name, val, n)
			}
		}
	}
}

// indexOnly wraps a view so that it uses IndexAccessor and hides Row.
type indexOnly[P any] struct {
	View[P]
}

func (v indexOnly[P]) Origin() Accessor[P] {
	return NewIndexAccessor[P](v)
}

func TestLoad(t *testing.T) {
	img := NewImage[pixel.RGB[uint8]](3, 2, 2)
	img.Set(1, 1, 1, pixel.RGB[uint8]{R: 9, G: 8, B: 7})

	for name, src := range map[string]View[pixel.RGB[uint8]]{
		"rows":  img,
		"index": indexOnly[pixel.RGB[uint8]]{img},
	} {
		dst := Load(src)
		if !SameSize[pixel.RGB[uint8], pixel.RGB[uint8]](dst, img) {
			t.Errorf("%s: Load size mismatch", name)
		}
		if got := dst.At(1, 1, 1); got != (pixel.RGB[uint8]{R: 9, G: 8, B: 7}) {
			t.Errorf("%s: Load pixel: got %v", name, got)
		}
		if dst.Channels() != 3 {
			t.Errorf("%s: Load channels: got %d, want 3", name, dst.Channels())
		}
	}
}

func TestIndexAccessorPosition(t *testing.T) {
	a := NewIndexAccessor[pixel.Gray[uint8]](NewImage[pixel.Gray[uint8]](2, 2, 1))
	a.Advance(1, 1, 0)
	a.NextPlane()
	a.PrevRow()
	if c, r, p := a.Position(); c != 1 || r != 0 || p != 1 {
		t.Errorf("Position: got (%d, %d, %d), want (1, 0, 1)", c, r, p)
	}
}
