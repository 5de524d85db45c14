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

// Package view provides the read-only image views consumed by imgstat.
//
// A View is a planes x rows x cols grid of pixels. Every view can be walked
// with an Accessor, a cursor that moves independently along the column, row
// and plane axes:
//
//	acc := v.Origin()
//	acc.NextPlane()
//	acc.Advance(2, 1, 0) // two columns right, one row down
//	p := acc.Pixel()
//
// Views whose rows are contiguous in memory also implement RowView, which
// lets the reduction engine stream a row at a time.
//
// # Views
//
//	Image[P]      owned multi-plane storage with lane-aligned rows
//	StdImage[P]   lazy adapter over a Go image.Image
//	PlaneStack[P] same-sized views stacked as the planes of one view
//
// Image is the only view that owns its pixels. Load copies any View into
// one, which is worthwhile when a view is reduced more than once.
package view
