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

import "fmt"

// AVLTree keeps the heights of every node's subtrees within one of each
// other. Insertion rebalances by walking from the new leaf back to the
// root; deletion rebalances on the way out of the recursive descent, so
// delete rotations may cascade across multiple levels.
type AVLTree struct {
	root *Node
	rotationMetrics
}

func NewAVLTree() *AVLTree {
	return &AVLTree{}
}

// Root returns the root node, or nil for an empty tree.
func (t *AVLTree) Root() *Node { return t.root }

func (t *AVLTree) height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func (t *AVLTree) updateHeight(n *Node) {
	if n != nil {
		n.Height = 1 + max(t.height(n.Left), t.height(n.Right))
	}
}

// balanceFactor is left height minus right height: positive means
// left-heavy, negative means right-heavy.
func (t *AVLTree) balanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return t.height(n.Left) - t.height(n.Right)
}

// rotateRight promotes y.Left into y's position and returns the new
// subtree root. Calling it on a node without a left child is a logic
// error; the pivot is returned unchanged.
//
//	    y              x
//	   / \            / \
//	  x   T3   =>   T1   y
//	 / \                / \
//	T1  T2            T2  T3
func (t *AVLTree) rotateRight(y *Node, isDelete bool) *Node {
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

	t.updateHeight(y)
	t.updateHeight(x)
	t.record(isDelete)
	return x
}

// rotateLeft mirrors rotateRight, promoting x.Right.
func (t *AVLTree) rotateLeft(x *Node, isDelete bool) *Node {
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

	t.updateHeight(x)
	t.updateHeight(y)
	t.record(isDelete)
	return y
}

// Insert adds value to the tree. It returns false without mutating
// anything when the value is already present.
func (t *AVLTree) Insert(value string) bool {
	if t.root == nil {
		t.root = &Node{Value: value, Height: 1}
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

	newNode := &Node{Value: value, Height: 1, Parent: parent}
	if value < parent.Value {
		parent.Left = newNode
	} else {
		parent.Right = newNode
	}

	// Walk back toward the root, refreshing heights and rebalancing.
	// After a rotation the promoted node is the current node, and the
	// walk continues from its parent.
	for node := newNode.Parent; node != nil; node = node.Parent {
		t.updateHeight(node)
		switch balance := t.balanceFactor(node); {
		case balance > 1:
			if t.balanceFactor(node.Left) < 0 {
				t.rotateLeft(node.Left, false)
			}
			node = t.rotateRight(node, false)
		case balance < -1:
			if t.balanceFactor(node.Right) > 0 {
				t.rotateRight(node.Right, false)
			}
			node = t.rotateLeft(node, false)
		}
	}
	return true
}

// Contains reports whether value is present. Pure BST descent, no
// mutation.
func (t *AVLTree) Contains(value string) bool {
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

// Delete removes value from the tree, returning false if it was absent.
// A node with two children is not removed physically: its in-order
// successor's value is copied into it and the successor node is removed
// instead.
func (t *AVLTree) Delete(value string) bool {
	if !t.Contains(value) {
		return false
	}
	t.root = t.deleteNode(t.root, value)
	if t.root != nil {
		t.root.Parent = nil
	}
	return true
}

func (t *AVLTree) deleteNode(node *Node, value string) *Node {
	if node == nil {
		return nil
	}

	switch {
	case value < node.Value:
		node.Left = t.deleteNode(node.Left, value)
		if node.Left != nil {
			node.Left.Parent = node
		}
	case value > node.Value:
		node.Right = t.deleteNode(node.Right, value)
		if node.Right != nil {
			node.Right.Parent = node
		}
	default:
		if node.Left == nil || node.Right == nil {
			replacement := node.Left
			if replacement == nil {
				replacement = node.Right
			}
			if replacement != nil {
				replacement.Parent = node.Parent
			}
			return replacement
		}
		succ := node.Right
		for succ.Left != nil {
			succ = succ.Left
		}
		node.Value = succ.Value
		node.Right = t.deleteNode(node.Right, succ.Value)
		if node.Right != nil {
			node.Right.Parent = node
		}
	}

	t.updateHeight(node)
	switch balance := t.balanceFactor(node); {
	case balance > 1:
		if t.balanceFactor(node.Left) < 0 {
			t.rotateLeft(node.Left, true)
		}
		node = t.rotateRight(node, true)
	case balance < -1:
		if t.balanceFactor(node.Right) > 0 {
			t.rotateRight(node.Right, true)
		}
		node = t.rotateLeft(node, true)
	}
	return node
}

// Validate checks BST ordering, exact height fields, and balance factor
// bounds for every node. It returns a descriptive error for the first
// violation found.
func (t *AVLTree) Validate() error {
	_, err := t.checkNode(t.root)
	return err
}

func (t *AVLTree) checkNode(node *Node) (int, error) {
	if node == nil {
		return 0, nil
	}

	leftHeight, err := t.checkNode(node.Left)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.checkNode(node.Right)
	if err != nil {
		return 0, err
	}

	if node.Left != nil && node.Left.Value >= node.Value {
		return 0, fmt.Errorf("bst ordering violated at %q", node.Value)
	}
	if node.Right != nil && node.Right.Value <= node.Value {
		return 0, fmt.Errorf("bst ordering violated at %q", node.Value)
	}

	expected := 1 + max(leftHeight, rightHeight)
	if node.Height != expected {
		return 0, fmt.Errorf("height incorrect at %q: have %d, want %d", node.Value, node.Height, expected)
	}
	if balance := leftHeight - rightHeight; balance < -1 || balance > 1 {
		return 0, fmt.Errorf("avl balance violated at %q: balance factor %d", node.Value, balance)
	}
	return expected, nil
}
