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

// Package pixel defines the channel types and pixel encodings understood by
// the imgstat reduction engine.
//
// A pixel is any value with a fixed number of homogeneous scalar channels:
//
//	type Pixel[C Channel] interface {
//	    Channels() int
//	    Channel(i int) C
//	}
//
// Gray is the single-channel encoding; GrayA, RGB, RGBA, HSV and XYZ are the
// fixed-size compound encodings and Vector holds any number of channels.
//
// # Channel Types
//
// Channel admits the native integer and floating-point types plus the two
// 16-bit float formats Float16 (IEEE 754 binary16) and BFloat16. The half
// formats are stored as raw bits, so ordering and arithmetic on them must go
// through Traits:
//
//	tr := pixel.TraitsOf[pixel.Float16]()
//	tr.Less(pixel.NewFloat16(-1), pixel.NewFloat16(0.5)) // true
package pixel
