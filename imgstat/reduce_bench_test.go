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

package imgstat

import (
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/ajroetker/go-imgstat/imgstat/pixel"
)

var benchSizes = []struct {
	name   string
	width  int
	height int
}{
	{"64x64", 64, 64},
	{"256x256", 256, 256},
	{"1080p", 1920, 1080},
}

func BenchmarkMinMaxChannelValues(b *testing.B) {
	r := rand.New(rand.NewPCG(5, 6))
	for _, size := range benchSizes {
		img, _ := randomRGB(r, size.width, size.height, 1, genUint8)
		for _, order := range orders {
			b.Run(size.name+"/"+order.String(), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size.width * size.height * int(unsafe.Sizeof(pixel.RGB[uint8]{}))))
				for i := 0; i < b.N; i++ {
					_, _, _ = MinMaxChannelValues[uint8](img, WithOrder(order))
				}
			})
		}
	}
}

func BenchmarkMeanChannelValue(b *testing.B) {
	r := rand.New(rand.NewPCG(7, 8))
	for _, size := range benchSizes {
		img, _ := randomRGB(r, size.width, size.height, 1, genFloat32)
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size.width * size.height * 3 * 4))
			for i := 0; i < b.N; i++ {
				_, _ = MeanChannelValue[float32](img)
			}
		})
	}
}
