// Copyright 2025 Ghaith Chrit
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

package trees

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultMaxPriority is the upper bound (inclusive) for treap priorities
// when none is supplied.
const DefaultMaxPriority = 1_000_000

// Treap is a randomized binary search tree: BST ordering on values plus
// a max-heap on per-node priorities drawn once at insertion. Expected
// height is O(log n). Priority ties are possible and tolerated; the heap
// invariant only requires child priority <= parent priority.
type Treap struct {
	root        *Node
	rng         *rand.Rand
	maxPriority int
	rotationMetrics
}

// NewTreap returns a treap with a time-seeded priority source and the
// default priority bound.
func NewTreap() *Treap {
	return NewTreapWithSource(rand.NewSource(time.Now().UnixNano()), DefaultMaxPriority)
}

// NewTreapWithSource returns a treap drawing priorities in
// [0, maxPriority] from src. Supplying a seeded source makes the
// sequence of draws, and therefore the tree shape, reproducible.
func NewTreapWithSource(src rand.Source, maxPriority int) *Treap {
	if maxPriority <= 0 {
		maxPriority = DefaultMaxPriority
	}
	return &Treap{rng: rand.New(src), maxPriority: maxPriority}
}

// Root returns the root node, or nil for an empty treap.
func (t *Treap) Root() *Node { return t.root }

func (t *Treap) drawPriority() int {
	return t.rng.Intn(t.maxPriority + 1)
}

// rotateRight promotes y.Left into y's position and returns it. A node
// without a left child cannot be rotated right; the pivot is returned
// unchanged.
func (t *Treap) rotateRight(y *Node, isDelete bool) *Node {
	x := y.Left
	if x == nil {
		return y
	}
	t2 := x.Right

	x.Right = y
	y.Left = t2

	x.Parent = y.Parent
	y.Parent = x
	if t2 != nil {
		t2.Parent = y
	}

	if x.Parent == nil {
		t.root = x
	} else if x.Parent.Left == y {
		x.Parent.Left = x
	} else {
		x.Parent.Right = x
	}

	t.record(isDelete)
	return x
}

// rotateLeft mirrors rotateRight, promoting x.Right.
func (t *Treap) rotateLeft(x *Node, isDelete bool) *Node {
	y := x.Right
	if y == nil {
		return x
	}
	t2 := y.Left

	y.Left = x
	x.Right = t2

	y.Parent = x.Parent
	x.Parent = y
	if t2 != nil {
		t2.Parent = x
	}

	if y.Parent == nil {
		t.root = y
	} else if y.Parent.Left == x {
		y.Parent.Left = y
	} else {
		y.Parent.Right = y
	}

	t.record(isDelete)
	return y
}

// Insert adds value with a freshly drawn priority, then bubbles the new
// node up with rotations while its parent's priority is strictly lower.
// Returns false without drawing a priority if value is already present.
func (t *Treap) Insert(value string) bool {
	if t.root == nil {
		t.root = &Node{Value: value, Priority: t.drawPriority()}
		return true
	}

	cur := t.root
	var parent *Node
	for cur != nil {
		parent = cur
		switch {
		case value == cur.Value:
			return false
		case value < cur.Value:
			cur = cur.Left
		default:
			cur = cur.Right
		}
	}

	newNode := &Node{Value: value, Parent: parent, Priority: t.drawPriority()}
	if value < parent.Value {
		parent.Left = newNode
	} else {
		parent.Right = newNode
	}

	for newNode.Parent != nil && newNode.Parent.Priority < newNode.Priority {
		if newNode.Parent.Left == newNode {
			t.rotateRight(newNode.Parent, false)
		} else {
			t.rotateLeft(newNode.Parent, false)
		}
	}
	return true
}

// Contains reports whether value is present via BST descent.
func (t *Treap) Contains(value string) bool {
	cur := t.root
	for cur != nil {
		switch {
		case value == cur.Value:
			return true
		case value < cur.Value:
			cur = cur.Left
		default:
			cur = cur.Right
		}
	}
	return false
}

// Delete removes value if present by rotating the target down until it
// is a leaf, then detaching it. With two children the higher-priority
// child is rotated up; the comparison is strict, so equal priorities
// resolve to a left rotation.
func (t *Treap) Delete(value string) bool {
	cur := t.root
	for cur != nil && cur.Value != value {
		if value < cur.Value {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	if cur == nil {
		return false
	}

	for cur.Left != nil || cur.Right != nil {
		switch {
		case cur.Left == nil:
			t.rotateLeft(cur, true)
		case cur.Right == nil:
			t.rotateRight(cur, true)
		case cur.Left.Priority > cur.Right.Priority:
			t.rotateRight(cur, true)
		default:
			t.rotateLeft(cur, true)
		}
	}

	if cur.Parent == nil {
		t.root = nil
	} else if cur.Parent.Left == cur {
		cur.Parent.Left = nil
	} else {
		cur.Parent.Right = nil
	}
	return true
}

// Validate checks BST ordering against an open interval, the max-heap
// property between every parent and existing child, and that each
// child's parent link points back at its owner.
func (t *Treap) Validate() error {
	return t.checkNode(t.root, nil, nil)
}

func (t *Treap) checkNode(node *Node, minVal, maxVal *string) error {
	if node == nil {
		return nil
	}

	if minVal != nil && node.Value <= *minVal {
		return fmt.Errorf("bst ordering violated: %q <= %q", node.Value, *minVal)
	}
	if maxVal != nil && node.Value >= *maxVal {
		return fmt.Errorf("bst ordering violated: %q >= %q", node.Value, *maxVal)
	}

	if node.Left != nil {
		if node.Left.Priority > node.Priority {
			return fmt.Errorf("heap violated at %q: left child priority %d > %d", node.Value, node.Left.Priority, node.Priority)
		}
		if node.Left.Parent != node {
			return fmt.Errorf("parent link wrong for left child of %q", node.Value)
		}
	}
	if node.Right != nil {
		if node.Right.Priority > node.Priority {
			return fmt.Errorf("heap violated at %q: right child priority %d > %d", node.Value, node.Right.Priority, node.Priority)
		}
		if node.Right.Parent != node {
			return fmt.Errorf("parent link wrong for right child of %q", node.Value)
		}
	}

	if err := t.checkNode(node.Left, minVal, &node.Value); err != nil {
		return err
	}
	return t.checkNode(node.Right, &node.Value, maxVal)
}
