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

// Package lanes reports the vector width available on the running CPU.
//
// The reduction kernels in imgstat do not emit SIMD instructions directly.
// They keep one independent accumulator per lane of the widest vector
// register, which lets the compiler and the CPU overlap the comparisons and
// additions of neighbouring channel values. The lane count also sets the row
// alignment of view.Image.
//
// Setting IMGSTAT_NO_SIMD to a true value forces the 16-byte baseline width:
//
//	IMGSTAT_NO_SIMD=1 go test ./...
package lanes

import (
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the vector instruction set detected at startup.
type Level int

const (
	// Scalar indicates no usable vector extension, or IMGSTAT_NO_SIMD.
	Scalar Level = iota

	// AVX2 indicates 256-bit x86 vectors.
	AVX2

	// AVX512 indicates 512-bit x86 vectors.
	AVX512

	// NEON indicates 128-bit ARM vectors.
	NEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// baselineWidth is used in scalar mode so lane counts stay greater than one.
const baselineWidth = 16

// currentLevel and currentWidth are set by init() in detect_*.go files.
var (
	currentLevel Level
	currentWidth = baselineWidth
)

// CurrentLevel returns the detected vector level.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for NEON or scalar mode, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// NoSimdEnv reports whether IMGSTAT_NO_SIMD asks for the baseline width.
// Any non-empty value that does not parse as a bool counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("IMGSTAT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many values of type T fit in one vector register.
//
// For example, with AVX2 (32 bytes):
//   - uint8: 32 lanes
//   - float32: 8 lanes
//   - float64: 4 lanes
//
// The result is never less than 1.
func MaxLanes[T any]() int {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if size == 0 || size >= currentWidth {
		return 1
	}
	return currentWidth / size
}

func setScalarMode() {
	currentLevel = Scalar
	currentWidth = baselineWidth
}
