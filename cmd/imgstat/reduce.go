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

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ajroetker/go-imgstat/imgstat"
	"github.com/ajroetker/go-imgstat/imgstat/pixel"
	"github.com/ajroetker/go-imgstat/imgstat/view"
)

// result is the statistics of one view. Unrequested statistics are nil.
type result struct {
	Name     string   `json:"name"`
	Planes   int      `json:"planes"`
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Channels int      `json:"channels"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Mean     *float64 `json:"mean,omitempty"`
}

// reduceFiles dispatches on the requested channel type. Values are read as
// 16-bit and scaled into the channel type.
func reduceFiles(imgs []decoded, o *options, order imgstat.Order) ([]result, error) {
	switch o.channelType {
	case "u8":
		return reduceAs(imgs, o, order, func(v uint16) uint8 { return uint8(v >> 8) })
	case "u16":
		return reduceAs(imgs, o, order, func(v uint16) uint16 { return v })
	case "f32":
		return reduceAs(imgs, o, order, func(v uint16) float32 { return float32(v) / 0xFFFF })
	case "f16":
		return reduceAs(imgs, o, order, func(v uint16) pixel.Float16 {
			return pixel.NewFloat16(float32(v) / 0xFFFF)
		})
	}
	return nil, fmt.Errorf("channel type: unknown type %q", o.channelType)
}

// reduceAs picks the pixel encoding of each file: gray for gray models,
// otherwise RGB or RGBA. Stacked files become one view, so they must all
// share an encoding.
func reduceAs[C pixel.Channel](imgs []decoded, o *options, order imgstat.Order, scale func(uint16) C) ([]result, error) {
	isGray := func(d decoded) bool { return view.IsGray(d.img) }
	if o.stack {
		gray := lo.CountBy(imgs, isGray)
		if gray != 0 && gray != len(imgs) {
			return nil, fmt.Errorf("stack: %d of %d files are gray, want all or none", gray, len(imgs))
		}
		return reduceEncoded(imgs, o, order, gray > 0, scale)
	}

	results := make([]result, 0, len(imgs))
	for _, d := range imgs {
		r, err := reduceEncoded([]decoded{d}, o, order, isGray(d), scale)
		if err != nil {
			return nil, err
		}
		results = append(results, r...)
	}
	return results, nil
}

func reduceEncoded[C pixel.Channel](imgs []decoded, o *options, order imgstat.Order, gray bool, scale func(uint16) C) ([]result, error) {
	switch {
	case gray:
		return reduceViews[C](imgs, o, order, view.GrayConverter(scale))
	case o.dropAlpha:
		return reduceViews[C](imgs, o, order, view.RGBConverter(scale))
	default:
		return reduceViews[C](imgs, o, order, view.RGBAConverter(scale))
	}
}

func reduceViews[C pixel.Channel, P pixel.Pixel[C]](imgs []decoded, o *options, order imgstat.Order, conv view.Converter[P]) ([]result, error) {
	views := lo.Map(imgs, func(d decoded, _ int) view.View[P] {
		v := view.FromImage(d.img, conv)
		if o.lazy {
			return v
		}
		return view.Load[P](v)
	})
	names := lo.Map(imgs, func(d decoded, _ int) string { return d.path })

	if o.stack {
		s, err := view.Stack(views...)
		if err != nil {
			return nil, fmt.Errorf("stack: %w", err)
		}
		r, err := reduceView[C, P](fmt.Sprintf("stack(%d)", len(views)), s, o.op, order)
		if err != nil {
			return nil, err
		}
		return []result{r}, nil
	}

	results := make([]result, 0, len(views))
	for i, v := range views {
		r, err := reduceView[C, P](names[i], v, o.op, order)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func reduceView[C pixel.Channel, P pixel.Pixel[C]](name string, v view.View[P], op string, order imgstat.Order) (result, error) {
	tr := pixel.TraitsOf[C]()
	f := func(c C) *float64 {
		x := tr.Float64(c)
		return &x
	}
	r := result{
		Name:     name,
		Planes:   v.Planes(),
		Rows:     v.Rows(),
		Cols:     v.Cols(),
		Channels: v.Channels(),
	}
	opt := imgstat.WithOrder(order)

	var err error
	switch op {
	case "min":
		var minV C
		minV, err = imgstat.MinChannelValue[C](v, opt)
		r.Min = f(minV)
	case "max":
		var maxV C
		maxV, err = imgstat.MaxChannelValue[C](v, opt)
		r.Max = f(maxV)
	case "minmax":
		var minV, maxV C
		minV, maxV, err = imgstat.MinMaxChannelValues[C](v, opt)
		r.Min, r.Max = f(minV), f(maxV)
	case "mean":
		var meanV C
		meanV, err = imgstat.MeanChannelValue[C](v, opt)
		r.Mean = f(meanV)
	default:
		var s imgstat.Summary[C]
		s, err = imgstat.Summarize[C](v, opt)
		r.Min, r.Max, r.Mean = f(s.Min), f(s.Max), f(s.Mean)
	}
	if err != nil {
		return result{}, fmt.Errorf("reduce %s: %w", name, err)
	}
	log.Debug().
		Str("name", name).
		Int("planes", r.Planes).
		Int("channels", r.Channels).
		Msg("reduced view")
	return r, nil
}
