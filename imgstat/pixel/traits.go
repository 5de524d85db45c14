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

import "unsafe"

// Traits bundles the operations the reduction engine needs on a channel
// type. Resolve it once per reduction with TraitsOf; the functions are
// safe to call for every channel value.
type Traits[C Channel] struct {
	// Native is true when Go's own operators order and convert C
	// correctly, so C values may be compared with < directly.
	Native bool

	// Less reports whether a orders before b. NaN is unordered.
	Less func(a, b C) bool

	// Float64 widens a channel value to float64.
	Float64 func(c C) float64

	// FromFloat64 converts back to C. Integers truncate toward zero;
	// the half formats round to nearest even.
	FromFloat64 func(f float64) C
}

// TraitsOf returns the Traits for channel type C.
func TraitsOf[C Channel]() Traits[C] {
	var zero C
	switch any(zero).(type) {
	case Float16:
		return Traits[C]{
			Less: func(a, b C) bool {
				return as[Float16](a).Float32() < as[Float16](b).Float32()
			},
			Float64: func(c C) float64 {
				return as[Float16](c).Float64()
			},
			FromFloat64: func(f float64) C {
				return as[C](NewFloat16FromFloat64(f))
			},
		}
	case BFloat16:
		return Traits[C]{
			Less: func(a, b C) bool {
				return as[BFloat16](a).Float32() < as[BFloat16](b).Float32()
			},
			Float64: func(c C) float64 {
				return as[BFloat16](c).Float64()
			},
			FromFloat64: func(f float64) C {
				return as[C](NewBFloat16FromFloat64(f))
			},
		}
	}
	return Traits[C]{
		Native:      true,
		Less:        func(a, b C) bool { return a < b },
		Float64:     func(c C) float64 { return float64(c) },
		FromFloat64: func(f float64) C { return C(f) },
	}
}

// as reinterprets v as T. Callers guarantee T and V are the same type,
// which the type switch in TraitsOf establishes; it avoids boxing each
// value in an interface.
func as[T, V any](v V) T {
	return *(*T)(unsafe.Pointer(&v))
}
