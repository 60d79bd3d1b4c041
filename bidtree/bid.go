// Copyright 2025 Naren Yellavula
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

// Package bidtree holds auction bids in an ordered binary search tree keyed
// by bid ID.
//
// Bid IDs are compared as base-10 integers, so "9" sorts before "10" and
// "007" names the same bid as "7". IDs that do not parse are rejected on
// insert with ErrMalformedKey.
//
// Insert tracks a per-node height and a balance factor for every node it
// passes, but it never rotates: the tree is only as balanced as the
// insertion order makes it. An Index is not safe for concurrent use.
package bidtree

import (
	"fmt"
	"strconv"
)

// Bid is a single auction record.
type Bid struct {
	ID     string
	Title  string
	Fund   string
	Amount float64
}

// ParseKey returns the ordering key of a bid ID.
func ParseKey(id string) (int64, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedKey, id)
	}
	return key, nil
}
