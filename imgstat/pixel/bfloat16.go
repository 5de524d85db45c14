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

package pixel

import (
	"math"
	"strconv"
)

// BFloat16 is a brain floating-point channel value: a float32 with the low
// 16 mantissa bits removed, stored as raw bits.
//
//	S | EEEEEEEE | MMMMMMM
//
// It keeps the float32 exponent range with about 2.4 decimal digits of
// precision.
type BFloat16 uint16

// BFloat16 bit patterns for special values.
const (
	BFloat16Zero    BFloat16 = 0x0000
	BFloat16NegZero BFloat16 = 0x8000
	BFloat16One     BFloat16 = 0x3F80
	BFloat16Inf     BFloat16 = 0x7F80
	BFloat16NegInf  BFloat16 = 0xFF80
	BFloat16NaN     BFloat16 = 0x7FC0
)

// NewBFloat16 rounds f to the nearest BFloat16, ties to even.
func NewBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		// Keep the sign, force a quiet NaN.
		return BFloat16((bits >> 16) | 0x0040)
	}
	bits += 0x7FFF + ((bits >> 16) & 1)
	return BFloat16(bits >> 16)
}

// NewBFloat16FromFloat64 rounds f to the nearest BFloat16.
func NewBFloat16FromFloat64(f float64) BFloat16 {
	return NewBFloat16(float32(f))
}

// Float32 widens b to float32 exactly.
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float64 widens b to float64 exactly.
func (b BFloat16) Float64() float64 {
	return float64(b.Float32())
}

// IsNaN reports whether b is a NaN.
func (b BFloat16) IsNaN() bool {
	return (b>>7)&0xFF == 0xFF && b&0x7F != 0
}

// IsInf reports whether b is an infinity of either sign.
func (b BFloat16) IsInf() bool {
	return (b>>7)&0xFF == 0xFF && b&0x7F == 0
}

// String formats b like a float32.
func (b BFloat16) String() string {
	return formatFloat32(b.Float32())
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
