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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func writeResults(w io.Writer, format string, results []result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("output: %w", err)
		}
		return nil
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, formatText(r)); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}
	return nil
}

func formatText(r result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %dx%dx%d ch=%d", r.Name, r.Cols, r.Rows, r.Planes, r.Channels)
	for _, s := range []struct {
		name string
		v    *float64
	}{{"min", r.Min}, {"max", r.Max}, {"mean", r.Mean}} {
		if s.v != nil {
			fmt.Fprintf(&b, " %s=%s", s.name, strconv.FormatFloat(*s.v, 'g', -1, 64))
		}
	}
	return b.String()
}
