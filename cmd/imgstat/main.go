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

// Command imgstat prints whole-image channel statistics for image files.
//
// Usage:
//
//	imgstat photo.png                      # min, max and mean over R, G, B, A
//	imgstat -t f32 --drop-alpha photo.jpg  # normalised RGB values in [0, 1]
//	imgstat --stack --op mean band1.tif band2.tif band3.tif
//	imgstat --format json *.png
//
// Each file is one single-plane view unless --stack is given, in which case
// the files become the planes of one view and must share their size.
// Statistics cover every channel of every plane together; they are not per
// channel.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("imgstat failed")
		os.Exit(1)
	}
}
