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

// Package imgstat computes whole-image channel statistics over any view.
//
// The four reductions fold every channel of every pixel of every plane into
// one scalar (or a pair, for MinMaxChannelValues):
//
//	img := view.NewImage[pixel.RGB[uint8]](640, 480, 1)
//	lo, err := imgstat.MinChannelValue[uint8](img)
//	hi, err := imgstat.MaxChannelValue[uint8](img)
//	lo, hi, err = imgstat.MinMaxChannelValues[uint8](img) // one pass
//	mean, err := imgstat.MeanChannelValue[uint8](img)
//
// The results are not per channel or per plane: an RGB image yields a single
// minimum across R, G and B. The mean is accumulated in float64 whatever the
// channel type and converted back at the end, so integer means truncate.
//
// # Traversal
//
// All reductions are associative and commutative, so the visiting order
// only matters for speed and for bit-exact float sums. StorageOrder (the
// default) streams rows of views that implement view.RowView; rows of packed
// pixels over native channel types are read as flat channel slices with one
// accumulator per vector lane. ReferenceOrder walks plane, column, row,
// channel through the view's Accessor.
//
// # Errors
//
// A view with no planes, rows, columns or channels has no first value to
// start from and no element count to divide by. Every reduction returns an
// error matching ErrInvalidInput for it instead of reading out of range.
package imgstat
