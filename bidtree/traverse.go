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

package bidtree

import (
	"fmt"
	"iter"
	"strings"
)

// Order selects a traversal order.
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "in", "pre" or "post", optionally suffixed with "order"
// ("inorder", "pre-order").
func ParseOrder(s string) (Order, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimSuffix(strings.TrimSuffix(norm, "order"), "-")
	switch norm {
	case "in", "":
		return InOrder, nil
	case "pre":
		return PreOrder, nil
	case "post":
		return PostOrder, nil
	}
	return InOrder, fmt.Errorf("unknown traversal order %q", s)
}

// Next returns the order after o, wrapping from post back to in.
func (o Order) Next() Order {
	return (o + 1) % 3
}

// Walk returns the bids in the given order.
func (ix *Index) Walk(order Order) iter.Seq[Bid] {
	switch order {
	case PreOrder:
		return ix.PreOrder()
	case PostOrder:
		return ix.PostOrder()
	default:
		return ix.InOrder()
	}
}

// InOrder yields bids in ascending key order. Each call to the returned
// sequence walks the tree as it is at that moment.
func (ix *Index) InOrder() iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		inOrder(ix.root, yield)
	}
}

// PreOrder yields each bid before the bids of its subtrees.
func (ix *Index) PreOrder() iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		preOrder(ix.root, yield)
	}
}

// PostOrder yields each bid after the bids of its subtrees.
func (ix *Index) PostOrder() iter.Seq[Bid] {
	return func(yield func(Bid) bool) {
		postOrder(ix.root, yield)
	}
}

// The walkers return false once yield has asked to stop.

func inOrder(node *Node, yield func(Bid) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.Left, yield) && yield(node.Bid) && inOrder(node.Right, yield)
}

func preOrder(node *Node, yield func(Bid) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.Bid) && preOrder(node.Left, yield) && preOrder(node.Right, yield)
}

func postOrder(node *Node, yield func(Bid) bool) bool {
	if node == nil {
		return true
	}
	return postOrder(node.Left, yield) && postOrder(node.Right, yield) && yield(node.Bid)
}
