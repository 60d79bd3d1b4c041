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

	"github.com/sirupsen/logrus"
)

// A subtree is considered lopsided once its children differ in height by
// more than this.
const balanceThreshold = 1

// Stats counts what an Index has done since it was created.
type Stats struct {
	Inserted int
	Removed  int
	// Skewed counts insert steps where the shorter subtree was on the
	// opposite side of the key. Key order always wins those steps.
	Skewed int
}

// Index is a binary search tree of bids keyed by numeric bid ID.
// The zero value is an empty index ready to use.
type Index struct {
	root  *Node
	stats Stats
}

func New() *Index {
	return &Index{root: nil}
}

// Root returns the root node, or nil for an empty index.
func (ix *Index) Root() *Node {
	return ix.root
}

func (ix *Index) Stats() Stats {
	return ix.stats
}

// Insert adds bid under its ID. It fails with ErrMalformedKey if the ID is
// not an integer and with ErrDuplicateKey if the ID is already present; the
// index is unchanged in both cases.
func (ix *Index) Insert(bid Bid) error {
	key, err := ParseKey(bid.ID)
	if err != nil {
		return err
	}

	if ix.root == nil {
		ix.root = newNode(bid, key)
		ix.stats.Inserted++
		return nil
	}

	logger.WithField("key", bid.ID).Debug("inserting bid")
	skewed, err := ix.addNode(ix.root, bid, key)
	if err != nil {
		return err
	}
	ix.stats.Inserted++
	ix.stats.Skewed += skewed
	return nil
}

// addNode places bid somewhere below node. Heights are refreshed on the way
// back up from the child heights read before the insert, so a parent lags
// its new grandchild by one level until a later insert passes through it.
// It returns the number of skewed steps on the path, counted only once the
// bid has been attached.
func (ix *Index) addNode(node *Node, bid Bid, key int64) (int, error) {
	leftHeight := height(node.Left)
	rightHeight := height(node.Right)
	balance := leftHeight - rightHeight

	var goLeft bool
	switch {
	case key < node.key:
		goLeft = true
	case key > node.key:
		goLeft = false
	default:
		return 0, fmt.Errorf("%w: %s", ErrDuplicateKey, bid.ID)
	}

	fields := logrus.Fields{
		"key":          bid.ID,
		"node":         node.Bid.ID,
		"left_height":  leftHeight,
		"right_height": rightHeight,
		"balance":      balance,
	}

	var skewed int
	var err error
	if goLeft {
		if node.Left == nil {
			node.Left = newNode(bid, key)
		} else if skewed, err = ix.addNode(node.Left, bid, key); err != nil {
			return 0, err
		}
	} else {
		if node.Right == nil {
			node.Right = newNode(bid, key)
		} else if skewed, err = ix.addNode(node.Right, bid, key); err != nil {
			return 0, err
		}
	}

	// Left-heavy wants the right side, right-heavy wants the left side.
	if (balance > balanceThreshold && goLeft) || (balance < -balanceThreshold && !goLeft) {
		skewed++
		logger.WithFields(fields).Debug("shorter subtree is on the wrong side of the key")
	}

	node.Height = 1 + max(leftHeight, rightHeight)
	fields["height"] = node.Height
	logger.WithFields(fields).Debug("updated node height")
	return skewed, nil
}

// Search returns the bid stored under id. The second result is false when
// id is absent or is not a valid bid ID.
func (ix *Index) Search(id string) (Bid, bool) {
	key, err := ParseKey(id)
	if err != nil {
		return Bid{}, false
	}

	node := ix.root
	for node != nil {
		switch {
		case key == node.key:
			return node.Bid, true
		case key < node.key:
			node = node.Left
		default:
			node = node.Right
		}
	}
	return Bid{}, false
}

// Remove deletes the bid stored under id. Removing an absent or malformed
// id does nothing. Node heights are left as they were.
func (ix *Index) Remove(id string) {
	key, err := ParseKey(id)
	if err != nil {
		return
	}
	ix.root = ix.removeNode(ix.root, key)
}

func (ix *Index) removeNode(node *Node, key int64) *Node {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.Left = ix.removeNode(node.Left, key)
	} else if key > node.key {
		node.Right = ix.removeNode(node.Right, key)
	} else {
		if node.Left == nil {
			child := node.Right
			release(node)
			ix.stats.Removed++
			return child
		}
		if node.Right == nil {
			child := node.Left
			release(node)
			ix.stats.Removed++
			return child
		}
		// Two children: take over the in-order successor's bid, then drop
		// the successor, which has no left child.
		successor := findMin(node.Right)
		node.Bid = successor.Bid
		node.key = successor.key
		node.Right = ix.removeNode(node.Right, successor.key)
	}
	return node
}

// Clear releases every node, children before parents, and leaves the index
// empty. It returns the number of nodes released.
func (ix *Index) Clear() int {
	n := releaseTree(ix.root)
	ix.root = nil
	return n
}

func releaseTree(node *Node) int {
	if node == nil {
		return 0
	}
	n := releaseTree(node.Left) + releaseTree(node.Right)
	release(node)
	return n + 1
}
