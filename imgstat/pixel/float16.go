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

import "math"

// Float16 is an IEEE 754 half-precision (binary16) channel value stored as
// its raw bits.
//
//	S | EEEEE | MMMMMMMMMM
//
// Range is ±65504 with about 3.3 decimal digits of precision, which is why
// imgstat never accumulates sums in this type.
type Float16 uint16

// Float16 bit patterns for special values.
const (
	Float16Zero     Float16 = 0x0000
	Float16NegZero  Float16 = 0x8000
	Float16One      Float16 = 0x3C00
	Float16MaxValue Float16 = 0x7BFF // 65504
	Float16Inf      Float16 = 0x7C00
	Float16NegInf   Float16 = 0xFC00
	Float16NaN      Float16 = 0x7E00 // canonical quiet NaN
)

// NewFloat16 rounds f to the nearest Float16, ties to even. Values beyond
// the finite range become infinities and tiny values flush through the
// denormals to zero.
func NewFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	switch {
	case exp == 0xFF-127+15:
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint16(mant>>13))
		}
		return Float16(sign | 0x7C00)
	case exp >= 31:
		return Float16(sign | 0x7C00)
	case exp <= 0:
		if exp < -10 {
			return Float16(sign)
		}
		// Denormal: restore the implicit leading one before shifting.
		mant = (mant | 0x800000) >> uint(1-exp)
		if mant&0x1000 != 0 && mant&0x2FFF != 0 {
			mant += 0x2000
		}
		return Float16(sign | uint16(mant>>13))
	}

	// Bit 12 is the rounding bit; bits 0-11 are dropped.
	if mant&0x1000 != 0 && mant&0x2FFF != 0 {
		mant += 0x2000
		if mant&0x800000 != 0 {
			mant = 0
			exp++
			if exp >= 31 {
				return Float16(sign | 0x7C00)
			}
		}
	}
	return Float16(sign | uint16(exp<<10) | uint16(mant>>13))
}

// NewFloat16FromFloat64 rounds f to the nearest Float16.
func NewFloat16FromFloat64(f float64) Float16 {
	return NewFloat16(float32(f))
}

// Float32 widens h to float32 exactly.
func (h Float16) Float32() float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := (bits >> 10) & 0x1F
	mant := bits & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign << 31)
		}
		// Normalise the denormal by shifting out leading zeros.
		exp = 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
		exp = uint32(int32(exp) + 127 - 15)
	case 31:
		if mant == 0 {
			return math.Float32frombits((sign << 31) | 0x7F800000)
		}
		return math.Float32frombits((sign << 31) | 0x7FC00000 | (mant << 13))
	default:
		exp = exp + 127 - 15
	}
	return math.Float32frombits((sign << 31) | (exp << 23) | (mant << 13))
}

// Float64 widens h to float64 exactly.
func (h Float16) Float64() float64 {
	return float64(h.Float32())
}

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return (h>>10)&0x1F == 31 && h&0x3FF != 0
}

// IsInf reports whether h is an infinity of either sign.
func (h Float16) IsInf() bool {
	return (h>>10)&0x1F == 31 && h&0x3FF == 0
}

// String formats h like a float32.
func (h Float16) String() string {
	return formatFloat32(h.Float32())
}
