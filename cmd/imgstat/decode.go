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

package main

import (
	"fmt"
	"image"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog/log"
)

// decoded is one input file.
type decoded struct {
	path   string
	format string
	img    image.Image
}

func decodeFile(path string) (decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return decoded{}, fmt.Errorf("decode: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return decoded{}, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	log.Debug().
		Str("path", path).
		Str("format", format).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("decoded image")
	return decoded{path: path, format: format, img: img}, nil
}

func decodeAll(paths []string) ([]decoded, error) {
	out := make([]decoded, 0, len(paths))
	for _, p := range paths {
		d, err := decodeFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
