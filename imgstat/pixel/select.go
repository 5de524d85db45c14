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

// SelectChannel extracts channel i of p as a C.
//
// p may be a bare C, which is treated as a one-channel pixel, or any
// Pixel[C]. The second result is false when p is neither or when i is out
// of range. Use it where the pixel type is only known at run time; generic
// code should call Pixel.Channel directly.
func SelectChannel[C Channel](p any, i int) (C, bool) {
	switch v := p.(type) {
	case C:
		if i == 0 {
			return v, true
		}
	case Pixel[C]:
		if i >= 0 && i < v.Channels() {
			return v.Channel(i), true
		}
	}
	var zero C
	return zero, false
}

// ChannelCount reports how many C channels p has: 1 for a bare C, the
// pixel's own count for a Pixel[C], and 0 otherwise.
func ChannelCount[C Channel](p any) int {
	switch v := p.(type) {
	case C:
		return 1
	case Pixel[C]:
		return v.Channels()
	}
	return 0
}
