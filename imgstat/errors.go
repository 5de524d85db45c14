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
	"errors"
	"fmt"

	"github.com/ajroetker/go-imgstat/imgstat/view"
)

// ErrInvalidInput is matched by every error returned for a view that cannot
// be reduced.
var ErrInvalidInput = errors.New("imgstat: invalid input")

// InvalidInputError describes a view rejected by a reduction.
type InvalidInputError struct {
	Op       string // reduction name, e.g. "MeanChannelValue"
	Planes   int
	Rows     int
	Cols     int
	Channels int
	Reason   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("imgstat: %s: %s (planes=%d rows=%d cols=%d channels=%d)",
		e.Op, e.Reason, e.Planes, e.Rows, e.Cols, e.Channels)
}

// Is makes errors.Is(err, ErrInvalidInput) true.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// shape holds the dimensions of a validated view.
type shape struct {
	planes, rows, cols, channels int
}

// count is the number of channel values in the view.
func (s shape) count() int {
	return s.planes * s.rows * s.cols * s.channels
}

func validate[P any](op string, v view.View[P]) (shape, error) {
	if v == nil {
		return shape{}, &InvalidInputError{Op: op, Reason: "nil view"}
	}
	s := shape{planes: v.Planes(), rows: v.Rows(), cols: v.Cols(), channels: v.Channels()}
	fail := func(reason string) (shape, error) {
		return shape{}, &InvalidInputError{
			Op:       op,
			Planes:   s.planes,
			Rows:     s.rows,
			Cols:     s.cols,
			Channels: s.channels,
			Reason:   reason,
		}
	}
	switch {
	case s.planes <= 0 || s.rows <= 0 || s.cols <= 0:
		return fail("view has no pixels")
	case s.channels <= 0:
		return fail("pixels have no channels")
	}
	return s, nil
}
