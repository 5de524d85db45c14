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
	"testing"
)

func TestFloat16Constants(t *testing.T) {
	tests := []struct {
		name  string
		value Float16
		want  float32
	}{
		{"Zero", Float16Zero, 0},
		{"One", Float16One, 1},
		{"MaxValue", Float16MaxValue, 65504},
	}
	for _, tt := range tests {
		if got := tt.value.Float32(); got != tt.want {
			t.Errorf("Float16%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
	if !Float16Inf.IsInf() || Float16Inf.Float32() < 0 {
		t.Error("Float16Inf should be positive infinity")
	}
	if !Float16NegInf.IsInf() || Float16NegInf.Float32() > 0 {
		t.Error("Float16NegInf should be negative infinity")
	}
	if !Float16NaN.IsNaN() {
		t.Error("Float16NaN should be NaN")
	}
	if !math.Signbit(float64(Float16NegZero.Float32())) {
		t.Error("Float16NegZero should keep its sign")
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 2, 10, 20, 30, 1024, -65504, 65504}
	for _, v := range values {
		if got := NewFloat16(v).Float32(); got != v {
			t.Errorf("NewFloat16(%v).Float32(): got %v, want %v", v, got, v)
		}
	}
}

func TestFloat16Rounding(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want Float16
	}{
		{"Overflow", 1e6, Float16Inf},
		{"NegOverflow", -1e6, Float16NegInf},
		{"Underflow", 1e-10, Float16Zero},
		{"SmallestDenormal", 5.9604645e-8, 0x0001},
		// 1 + 2^-11 is exactly halfway between 1 and the next half value;
		// ties go to the even mantissa.
		{"TieToEven", 1 + 1.0/2048, Float16One},
		{"NaN", float32(math.NaN()), Float16NaN},
	}
	for _, tt := range tests {
		got := NewFloat16(tt.in)
		if tt.want.IsNaN() {
			if !got.IsNaN() {
				t.Errorf("%s: got %#04x, want NaN", tt.name, uint16(got))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %#04x, want %#04x", tt.name, uint16(got), uint16(tt.want))
		}
	}
}

func TestFloat16Denormals(t *testing.T) {
	for bits := uint16(1); bits < 0x400; bits <<= 1 {
		h := Float16(bits)
		want := float32(bits) * float32(math.Pow(2, -24))
		if got := h.Float32(); got != want {
			t.Errorf("Float16(%#04x).Float32(): got %v, want %v", bits, got, want)
		}
		if back := NewFloat16(want); back != h {
			t.Errorf("NewFloat16(%v): got %#04x, want %#04x", want, uint16(back), bits)
		}
	}
}

func TestBFloat16(t *testing.T) {
	if got := BFloat16One.Float32(); got != 1 {
		t.Errorf("BFloat16One: got %v, want 1", got)
	}
	if !BFloat16Inf.IsInf() || !BFloat16NegInf.IsInf() {
		t.Error("BFloat16Inf and BFloat16NegInf should be infinities")
	}
	if !BFloat16NaN.IsNaN() {
		t.Error("BFloat16NaN should be NaN")
	}
	if !NewBFloat16(float32(math.NaN())).IsNaN() {
		t.Error("NewBFloat16(NaN) should be NaN")
	}
	for _, v := range []float32{0, 1, -2, 0.5, 3, 96, -0.125} {
		want := math.Float32frombits(math.Float32bits(v) &^ 0xFFFF)
		if got := NewBFloat16(v).Float32(); got != want {
			t.Errorf("NewBFloat16(%v): got %v, want %v", v, got, want)
		}
	}
	// 1 + 2^-8 is halfway between 1 and 1 + 2^-7; ties go to even.
	if got := NewBFloat16(1 + 1.0/256); got != BFloat16One {
		t.Errorf("NewBFloat16 tie: got %#04x, want %#04x", uint16(got), uint16(BFloat16One))
	}
}

func TestHalfString(t *testing.T) {
	if got := NewFloat16(2.5).String(); got != "2.5" {
		t.Errorf("Float16.String: got %q, want %q", got, "2.5")
	}
	if got := NewBFloat16(-4).String(); got != "-4" {
		t.Errorf("BFloat16.String: got %q, want %q", got, "-4")
	}
}
