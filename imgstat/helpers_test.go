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

package imgstat

import (
	"math/rand/v2"

	"github.com/ajroetker/go-imgstat/imgstat/pixel"
	"github.com/ajroetker/go-imgstat/imgstat/view"
)

// gridView is an accessor-only view with explicit dimensions, so tests can
// build shapes view.Image never produces (rows == 0 with cols > 0, etc).
type gridView[P any] struct {
	planes, rows, cols, channels int
	at                           func(col, row, plane int) P
}

func (g *gridView[P]) Planes() int   { return g.planes }
func (g *gridView[P]) Rows() int     { return g.rows }
func (g *gridView[P]) Cols() int     { return g.cols }
func (g *gridView[P]) Channels() int { return g.channels }

func (g *gridView[P]) At(col, row, plane int) P {
	return g.at(col, row, plane)
}

func (g *gridView[P]) Origin() view.Accessor[P] {
	return view.NewIndexAccessor[P](g)
}

// accessorOnly hides the RowView methods of an image.
func accessorOnly[P any](img *view.Image[P]) view.View[P] {
	return &gridView[P]{
		planes:   img.Planes(),
		rows:     img.Rows(),
		cols:     img.Cols(),
		channels: img.Channels(),
		at:       img.At,
	}
}

// grayImage builds a single-plane image from row-major values.
func grayImage[C pixel.Channel](cols, rows int, vals ...C) *view.Image[pixel.Gray[C]] {
	img := view.NewImage[pixel.Gray[C]](cols, rows, 1)
	for i, v := range vals {
		img.Set(i%cols, i/cols, 0, pixel.Gray[C]{V: v})
	}
	return img
}

// randomRGB fills a multi-plane RGB image with values from gen and returns
// every channel value as float64.
func randomRGB[C pixel.Channel](r *rand.Rand, cols, rows, planes int, gen func(*rand.Rand) C) (*view.Image[pixel.RGB[C]], []C) {
	img := view.NewImage[pixel.RGB[C]](cols, rows, planes)
	var vals []C
	for p := range planes {
		for y := range rows {
			for x := range cols {
				px := pixel.RGB[C]{R: gen(r), G: gen(r), B: gen(r)}
				img.Set(x, y, p, px)
				vals = append(vals, px.R, px.G, px.B)
			}
		}
	}
	return img, vals
}

func genUint8(r *rand.Rand) uint8     { return uint8(r.UintN(256)) }
func genInt16(r *rand.Rand) int16     { return int16(r.IntN(65536) - 32768) }
func genFloat32(r *rand.Rand) float32 { return r.Float32()*200 - 100 }
func genFloat16(r *rand.Rand) pixel.Float16 {
	return pixel.NewFloat16(r.Float32()*20 - 10)
}
