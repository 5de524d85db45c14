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

// Floats is a constraint for the native floating-point channel types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for the native signed integer channel types.
type SignedInts interface {
	int | int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for the native unsigned integer channel types.
type UnsignedInts interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all native integer channel types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Native is a constraint for channel types whose Go operators already
// implement numeric ordering and conversion.
type Native interface {
	Floats | Integers
}

// Channel is the constraint for the scalar type stored in each channel of a
// pixel.
//
// The terms are exact types rather than ~T approximations: Float16 and
// BFloat16 share uint16 as their underlying type and would otherwise be
// ambiguous with it.
type Channel interface {
	Native | Float16 | BFloat16
}
