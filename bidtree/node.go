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

// Node is one bid in the tree. A node owns its children; there is no parent link.
type Node struct {
	Bid    Bid
	Height int // Set on insert only, may be stale after removals
	Left   *Node
	Right  *Node

	key int64
}

func newNode(bid Bid, key int64) *Node {
	return &Node{Bid: bid, Height: 1, key: key}
}

// Key returns the parsed ordering key of the node's bid.
func (n *Node) Key() int64 {
	return n.key
}

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func findMin(node *Node) *Node {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// release detaches a node that has been unlinked from the tree.
func release(node *Node) {
	node.Left = nil
	node.Right = nil
	node.Bid = Bid{}
}
