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

import "fmt"

// PlaneStack combines same-sized single-plane views into one multi-plane
// view. Plane i of the stack is plane 0 of the i-th view.
type PlaneStack[P any] struct {
	layers []View[P]
	rows   int
	cols   int
	chans  int
}

// Stack builds a PlaneStack. Every layer must have exactly one plane and
// the same rows, columns and channel count as the first.
func Stack[P any](layers ...View[P]) (*PlaneStack[P], error) {
	s := &PlaneStack[P]{layers: layers}
	for i, l := range layers {
		if l.Planes() != 1 {
			return nil, fmt.Errorf("view: stack layer %d has %d planes, want 1", i, l.Planes())
		}
		if i == 0 {
			s.rows, s.cols, s.chans = l.Rows(), l.Cols(), l.Channels()
			continue
		}
		if l.Rows() != s.rows || l.Cols() != s.cols {
			return nil, fmt.Errorf("view: stack layer %d is %dx%d, want %dx%d",
				i, l.Cols(), l.Rows(), s.cols, s.rows)
		}
		if l.Channels() != s.chans {
			return nil, fmt.Errorf("view: stack layer %d has %d channels, want %d",
				i, l.Channels(), s.chans)
		}
	}
	return s, nil
}

func (s *PlaneStack[P]) Planes() int   { return len(s.layers) }
func (s *PlaneStack[P]) Rows() int     { return s.rows }
func (s *PlaneStack[P]) Cols() int     { return s.cols }
func (s *PlaneStack[P]) Channels() int { return s.chans }

func (s *PlaneStack[P]) At(col, row, plane int) P {
	if plane < 0 || plane >= len(s.layers) {
		var zero P
		return zero
	}
	return s.layers[plane].At(col, row, 0)
}

func (s *PlaneStack[P]) Origin() Accessor[P] {
	return NewIndexAccessor[P](s)
}

// Row forwards to the layer when it is a RowView and returns nil otherwise.
func (s *PlaneStack[P]) Row(row, plane int) []P {
	if plane < 0 || plane >= len(s.layers) {
		return nil
	}
	if rv, ok := s.layers[plane].(RowView[P]); ok {
		return rv.Row(row, 0)
	}
	return nil
}
