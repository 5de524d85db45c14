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

import "fmt"

// Order selects how a reduction walks the view. Both orders visit every
// (plane, row, col, channel) cell exactly once.
type Order int

const (
	// StorageOrder walks plane, row, column, channel using view.RowView
	// rows when the view provides them, and ReferenceOrder otherwise.
	StorageOrder Order = iota

	// ReferenceOrder walks plane, column, row, channel through the view's
	// Accessor. Use it to reproduce float sums from other implementations
	// of the same traversal bit for bit.
	ReferenceOrder
)

func (o Order) String() string {
	switch o {
	case StorageOrder:
		return "storage"
	case ReferenceOrder:
		return "reference"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses the String form of an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "storage":
		return StorageOrder, nil
	case "reference":
		return ReferenceOrder, nil
	}
	return 0, fmt.Errorf("imgstat: unknown traversal order %q", s)
}

type config struct {
	order Order
}

// Option configures a reduction.
type Option func(*config)

// WithOrder sets the traversal order.
func WithOrder(o Order) Option {
	return func(c *config) {
		c.order = o
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
