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
	"github.com/ajroetker/go-imgstat/imgstat/pixel"
	"github.com/ajroetker/go-imgstat/imgstat/view"
)

// MinChannelValue returns the smallest channel value in v, across all
// planes and all channels.
func MinChannelValue[C pixel.Channel, P pixel.Pixel[C]](v view.View[P], opts ...Option) (C, error) {
	a, err := reduce[C, P]("MinChannelValue", v, opMin, opts)
	if err != nil {
		var zero C
		return zero, err
	}
	return a.min, nil
}

// MaxChannelValue returns the largest channel value in v, across all
// planes and all channels.
func MaxChannelValue[C pixel.Channel, P pixel.Pixel[C]](v view.View[P], opts ...Option) (C, error) {
	a, err := reduce[C, P]("MaxChannelValue", v, opMax, opts)
	if err != nil {
		var zero C
		return zero, err
	}
	return a.max, nil
}

// MinMaxChannelValues returns the results of MinChannelValue and
// MaxChannelValue from a single walk over v.
func MinMaxChannelValues[C pixel.Channel, P pixel.Pixel[C]](v view.View[P], opts ...Option) (lo, hi C, err error) {
	a, err := reduce[C, P]("MinMaxChannelValues", v, opMin|opMax, opts)
	if err != nil {
		return lo, hi, err
	}
	return a.min, a.max, nil
}

// MeanChannelValue returns the mean of every channel value in v.
//
// The sum is kept in float64 and the quotient converted back to C, so
// integer channel types truncate toward zero and Float16/BFloat16 round to
// nearest.
func MeanChannelValue[C pixel.Channel, P pixel.Pixel[C]](v view.View[P], opts ...Option) (C, error) {
	a, err := reduce[C, P]("MeanChannelValue", v, opSum, opts)
	if err != nil {
		var zero C
		return zero, err
	}
	return a.mean(), nil
}

// Summary holds every statistic of one view.
type Summary[C pixel.Channel] struct {
	Min   C
	Max   C
	Mean  C
	Sum   float64 // sum of all channel values
	Count int     // planes * rows * cols * channels
}

// Summarize computes Min, Max and Mean in one walk over v.
func Summarize[C pixel.Channel, P pixel.Pixel[C]](v view.View[P], opts ...Option) (Summary[C], error) {
	a, err := reduce[C, P]("Summarize", v, opMin|opMax|opSum, opts)
	if err != nil {
		return Summary[C]{}, err
	}
	return Summary[C]{
		Min:   a.min,
		Max:   a.max,
		Mean:  a.mean(),
		Sum:   a.sum,
		Count: a.count,
	}, nil
}

// reduce validates v, seeds the extremes from channel 0 of the first pixel
// and folds the whole view.
func reduce[C pixel.Channel, P pixel.Pixel[C]](op string, v view.View[P], ops reduction, opts []Option) (*accumulator[C, P], error) {
	s, err := validate(op, v)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	first := v.At(0, 0, 0).Channel(0)
	a := &accumulator[C, P]{
		ops:      ops,
		tr:       pixel.TraitsOf[C](),
		channels: s.channels,
		count:    s.count(),
		min:      first,
		max:      first,
	}

	if cfg.order == StorageOrder {
		if rv, ok := v.(view.RowView[P]); ok && rv.Row(0, 0) != nil {
			walkRows(rv, s, a)
			return a, nil
		}
	}
	walkAccessor(v, s, a)
	return a, nil
}
