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
	"unsafe"

	"github.com/ajroetker/go-imgstat/imgstat/lanes"
	"github.com/ajroetker/go-imgstat/imgstat/pixel"
	"github.com/ajroetker/go-imgstat/imgstat/view"
)

// reduction is a set of statistics to fold.
type reduction uint8

const (
	opMin reduction = 1 << iota
	opMax
	opSum
)

// accumulator holds the running statistics of one reduction.
type accumulator[C pixel.Channel, P pixel.Pixel[C]] struct {
	ops      reduction
	tr       pixel.Traits[C]
	channels int
	count    int
	min, max C
	sum      float64
}

func (a *accumulator[C, P]) mean() C {
	return a.tr.FromFloat64(a.sum / float64(a.count))
}

func (a *accumulator[C, P]) addPixel(p P) {
	for ch := 0; ch < a.channels; ch++ {
		v := p.Channel(ch)
		if a.ops&opMin != 0 && a.tr.Less(v, a.min) {
			a.min = v
		}
		if a.ops&opMax != 0 && a.tr.Less(a.max, v) {
			a.max = v
		}
		if a.ops&opSum != 0 {
			a.sum += a.tr.Float64(v)
		}
	}
}

// addFlat folds channel values laid out back to back. Only valid when
// a.tr.Native is set.
func (a *accumulator[C, P]) addFlat(data []C) {
	switch a.ops {
	case opMin:
		a.min = minFlat(data, a.min)
	case opMax:
		a.max = maxFlat(data, a.max)
	case opMin | opMax:
		a.min, a.max = minMaxFlat(data, a.min, a.max)
	case opSum:
		a.sum += sumFlat(data)
	default:
		a.min, a.max = minMaxFlat(data, a.min, a.max)
		a.sum += sumFlat(data)
	}
}

// flattenable reports whether a row of P can be read as a []C of
// Channels() values per pixel.
func (a *accumulator[C, P]) flattenable() bool {
	if !a.tr.Native {
		return false
	}
	var zp P
	if n, ok := pixel.PackedChannels[C](zp); !ok || n != a.channels {
		return false
	}
	var zc C
	return unsafe.Sizeof(zp) == uintptr(a.channels)*unsafe.Sizeof(zc)
}

// walkAccessor visits plane, column, row, channel. The cursor is rewound
// with Advance at the end of each column and plane instead of being copied.
func walkAccessor[C pixel.Channel, P pixel.Pixel[C]](v view.View[P], s shape, a *accumulator[C, P]) {
	acc := v.Origin()
	for p := 0; p < s.planes; p++ {
		for c := 0; c < s.cols; c++ {
			for r := 0; r < s.rows; r++ {
				a.addPixel(acc.Pixel())
				acc.NextRow()
			}
			acc.Advance(1, -s.rows, 0)
		}
		acc.Advance(-s.cols, 0, 1)
	}
}

// walkRows visits plane, row, column, channel a row at a time. Rows the
// view cannot hand out are read pixel by pixel through At.
func walkRows[C pixel.Channel, P pixel.Pixel[C]](v view.RowView[P], s shape, a *accumulator[C, P]) {
	flat := a.flattenable()
	for p := 0; p < s.planes; p++ {
		for r := 0; r < s.rows; r++ {
			row := v.Row(r, p)
			switch {
			case len(row) != s.cols:
				for c := 0; c < s.cols; c++ {
					a.addPixel(v.At(c, r, p))
				}
			case flat:
				data := unsafe.Slice((*C)(unsafe.Pointer(&row[0])), len(row)*s.channels)
				a.addFlat(data)
			default:
				for _, px := range row {
					a.addPixel(px)
				}
			}
		}
	}
}

// maxKernelLanes bounds the accumulator arrays below; 64 one-byte lanes fill
// an AVX-512 register.
const maxKernelLanes = 64

func kernelLanes[C pixel.Channel]() int {
	return min(lanes.MaxLanes[C](), maxKernelLanes)
}

// The flat kernels keep one accumulator per lane and fold them at the end,
// then finish the tail with scalar code. C must be a native type so that
// < orders it. Each lane also records where its extreme was seen; among
// lanes tied under == the earliest wins, so -0 and +0 come out as a
// sequential walk returns them. A lane leaves its seed only on a strict
// improvement, so position -1 always means the seed.

func minFlat[C pixel.Channel](data []C, lo C) C {
	n := kernelLanes[C]()
	var acc [maxKernelLanes]C
	var pos [maxKernelLanes]int
	for j := range n {
		acc[j], pos[j] = lo, -1
	}
	i := 0
	for ; i+n <= len(data); i += n {
		for j, v := range data[i : i+n] {
			if v < acc[j] {
				acc[j], pos[j] = v, i+j
			}
		}
	}
	at := -1
	for j := range n {
		if acc[j] < lo || (acc[j] == lo && pos[j] < at) {
			lo, at = acc[j], pos[j]
		}
	}
	for _, v := range data[i:] {
		if v < lo {
			lo = v
		}
	}
	return lo
}

func maxFlat[C pixel.Channel](data []C, hi C) C {
	n := kernelLanes[C]()
	var acc [maxKernelLanes]C
	var pos [maxKernelLanes]int
	for j := range n {
		acc[j], pos[j] = hi, -1
	}
	i := 0
	for ; i+n <= len(data); i += n {
		for j, v := range data[i : i+n] {
			if v > acc[j] {
				acc[j], pos[j] = v, i+j
			}
		}
	}
	at := -1
	for j := range n {
		if acc[j] > hi || (acc[j] == hi && pos[j] < at) {
			hi, at = acc[j], pos[j]
		}
	}
	for _, v := range data[i:] {
		if v > hi {
			hi = v
		}
	}
	return hi
}

func minMaxFlat[C pixel.Channel](data []C, lo, hi C) (C, C) {
	n := kernelLanes[C]()
	var mins, maxs [maxKernelLanes]C
	var minPos, maxPos [maxKernelLanes]int
	for j := range n {
		mins[j], maxs[j] = lo, hi
		minPos[j], maxPos[j] = -1, -1
	}
	i := 0
	for ; i+n <= len(data); i += n {
		for j, v := range data[i : i+n] {
			if v < mins[j] {
				mins[j], minPos[j] = v, i+j
			}
			if v > maxs[j] {
				maxs[j], maxPos[j] = v, i+j
			}
		}
	}
	loAt, hiAt := -1, -1
	for j := range n {
		if mins[j] < lo || (mins[j] == lo && minPos[j] < loAt) {
			lo, loAt = mins[j], minPos[j]
		}
		if maxs[j] > hi || (maxs[j] == hi && maxPos[j] < hiAt) {
			hi, hiAt = maxs[j], maxPos[j]
		}
	}
	for _, v := range data[i:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func sumFlat[C pixel.Channel](data []C) float64 {
	n := kernelLanes[C]()
	var acc [maxKernelLanes]float64
	i := 0
	for ; i+n <= len(data); i += n {
		for j, v := range data[i : i+n] {
			acc[j] += float64(v)
		}
	}
	var sum float64
	for _, s := range acc[:n] {
		sum += s
	}
	for _, v := range data[i:] {
		sum += float64(v)
	}
	return sum
}
