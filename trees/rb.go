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
	"errors"
	"fmt"
)

// RBTree is a red-black tree with a per-instance sentinel standing in
// for every nil leaf and for the empty root's parent. The sentinel is
// always black, never holds a value, and is never handed out to callers.
// Maintained properties: the root is black, no red node has a red child,
// and every path from a node down to a descendant sentinel passes
// through the same number of black nodes.
type RBTree struct {
	root     *Node
	sentinel *Node
	rotationMetrics
}

func NewRBTree() *RBTree {
	s := &Node{Color: Black, sentinel: true}
	s.Left, s.Right, s.Parent = s, s, s
	return &RBTree{root: s, sentinel: s}
}

// Root returns the root node, or nil for an empty tree. The sentinel
// itself is never exposed here, though leaf Left/Right links reach it;
// those answer IsNil.
func (t *RBTree) Root() *Node {
	if t.root == t.sentinel {
		return nil
	}
	return t.root
}

// Contains reports whether value is present via a plain BST descent.
func (t *RBTree) Contains(value string) bool {
	cur := t.root
	for cur != t.sentinel {
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

// leftRotate moves x.Right into x's position. Rotating a node whose
// right child is the sentinel is a logic error and does nothing.
func (t *RBTree) leftRotate(x *Node, isDelete bool) {
	y := x.Right
	if y == t.sentinel {
		return
	}
	x.Right = y.Left
	if y.Left != t.sentinel {
		y.Left.Parent = x
	}
	y.Parent = x.Parent
	if x.Parent == t.sentinel {
		t.root = y
	} else if x == x.Parent.Left {
		x.Parent.Left = y
	} else {
		x.Parent.Right = y
	}
	y.Left = x
	x.Parent = y
	t.record(isDelete)
}

// rightRotate mirrors leftRotate, moving y.Left into y's position.
func (t *RBTree) rightRotate(y *Node, isDelete bool) {
	x := y.Left
	if x == t.sentinel {
		return
	}
	y.Left = x.Right
	if x.Right != t.sentinel {
		x.Right.Parent = y
	}
	x.Parent = y.Parent
	if y.Parent == t.sentinel {
		t.root = x
	} else if y == y.Parent.Left {
		y.Parent.Left = x
	} else {
		y.Parent.Right = x
	}
	x.Right = y
	y.Parent = x
	t.record(isDelete)
}

// Insert adds value to the tree, returning false if it was already
// present. The new node starts red with all links at the sentinel, then
// insertFixup restores the red-black properties.
func (t *RBTree) Insert(value string) bool {
	node := &Node{Value: value, Color: Red}
	node.Left, node.Right, node.Parent = t.sentinel, t.sentinel, t.sentinel

	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
		switch {
		case node.Value == x.Value:
			return false
		case node.Value < x.Value:
			x = x.Left
		default:
			x = x.Right
		}
	}

	node.Parent = y
	if y == t.sentinel {
		t.root = node
	} else if node.Value < y.Value {
		y.Left = node
	} else {
		y.Right = node
	}

	t.insertFixup(node)
	return true
}

// insertFixup restores the red-black properties after splicing in the
// red node z. While z's parent is red it inspects the uncle: a red uncle
// recolors one level up (case 1); a black uncle rotates z outward if it
// is an inner child (case 2) and then rotates the grandparent (case 3).
// Mirror cases apply when the parent is a right child.
func (t *RBTree) insertFixup(z *Node) {
	for z.Parent.Color == Red {
		if z.Parent == z.Parent.Parent.Left {
			y := z.Parent.Parent.Right
			if y.Color == Red {
				// case 1: uncle red
				z.Parent.Color = Black
				y.Color = Black
				z.Parent.Parent.Color = Red
				z = z.Parent.Parent
			} else {
				if z == z.Parent.Right {
					// case 2
					z = z.Parent
					t.leftRotate(z, false)
				}
				// case 3
				z.Parent.Color = Black
				z.Parent.Parent.Color = Red
				t.rightRotate(z.Parent.Parent, false)
			}
		} else {
			y := z.Parent.Parent.Left
			if y.Color == Red {
				z.Parent.Color = Black
				y.Color = Black
				z.Parent.Parent.Color = Red
				z = z.Parent.Parent
			} else {
				if z == z.Parent.Left {
					z = z.Parent
					t.rightRotate(z, false)
				}
				z.Parent.Color = Black
				z.Parent.Parent.Color = Red
				t.leftRotate(z.Parent.Parent, false)
			}
		}
	}
	t.root.Color = Black
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *RBTree) transplant(u, v *Node) {
	if u.Parent == t.sentinel {
		t.root = v
	} else if u == u.Parent.Left {
		u.Parent.Left = v
	} else {
		u.Parent.Right = v
	}
	v.Parent = u.Parent
}

func (t *RBTree) minimum(node *Node) *Node {
	for node.Left != t.sentinel {
		node = node.Left
	}
	return node
}

// Delete removes value from the tree, returning false if it was absent.
// A node with two children is replaced by its in-order successor, which
// keeps the deleted node's color. If the node physically removed from
// its position was black, deleteFixup repairs the black-height.
func (t *RBTree) Delete(value string) bool {
	z := t.root
	for z != t.sentinel && z.Value != value {
		if value < z.Value {
			z = z.Left
		} else {
			z = z.Right
		}
	}
	if z == t.sentinel {
		return false
	}

	y := z
	yOriginalColor := y.Color
	var x *Node
	switch {
	case z.Left == t.sentinel:
		x = z.Right
		t.transplant(z, z.Right)
	case z.Right == t.sentinel:
		x = z.Left
		t.transplant(z, z.Left)
	default:
		y = t.minimum(z.Right)
		yOriginalColor = y.Color
		x = y.Right
		if y.Parent == z {
			x.Parent = y
		} else {
			t.transplant(y, y.Right)
			y.Right = z.Right
			y.Right.Parent = y
		}
		t.transplant(z, y)
		y.Left = z.Left
		y.Left.Parent = y
		y.Color = z.Color
	}

	if yOriginalColor == Black {
		t.deleteFixup(x)
	}
	return true
}

// deleteFixup pushes the "extra black" carried by x up the tree. Each
// pass inspects x's sibling w: a red sibling is rotated toward x to
// expose a black one (case 1); a sibling with two black children
// recolors and moves the deficiency to the parent (case 2); a red near
// child converts to the terminal case by rotating the sibling (case 3);
// a red far child recolors and rotates the parent, finishing the loop
// (case 4). Mirrors apply when x is a right child.
func (t *RBTree) deleteFixup(x *Node) {
	for x != t.root && x.Color == Black {
		if x == x.Parent.Left {
			w := x.Parent.Right
			if w.Color == Red {
				// case 1
				w.Color = Black
				x.Parent.Color = Red
				t.leftRotate(x.Parent, true)
				w = x.Parent.Right
			}
			if w.Left.Color == Black && w.Right.Color == Black {
				// case 2
				w.Color = Red
				x = x.Parent
			} else {
				if w.Right.Color == Black {
					// case 3
					w.Left.Color = Black
					w.Color = Red
					t.rightRotate(w, true)
					w = x.Parent.Right
				}
				// case 4
				w.Color = x.Parent.Color
				x.Parent.Color = Black
				w.Right.Color = Black
				t.leftRotate(x.Parent, true)
				x = t.root
			}
		} else {
			w := x.Parent.Left
			if w.Color == Red {
				w.Color = Black
				x.Parent.Color = Red
				t.rightRotate(x.Parent, true)
				w = x.Parent.Left
			}
			if w.Right.Color == Black && w.Left.Color == Black {
				w.Color = Red
				x = x.Parent
			} else {
				if w.Left.Color == Black {
					w.Right.Color = Black
					w.Color = Red
					t.leftRotate(w, true)
					w = x.Parent.Left
				}
				w.Color = x.Parent.Color
				x.Parent.Color = Black
				w.Left.Color = Black
				t.rightRotate(x.Parent, true)
				x = t.root
			}
		}
	}
	x.Color = Black
}

// Validate checks that the root is black, no red node has a red child,
// black-heights agree on both sides of every node, and BST ordering
// holds against an open interval.
func (t *RBTree) Validate() error {
	if t.root != t.sentinel && t.root.Color != Black {
		return errors.New("root must be black")
	}
	_, err := t.checkNode(t.root, nil, nil)
	return err
}

func (t *RBTree) checkNode(node *Node, minVal, maxVal *string) (int, error) {
	if node == t.sentinel {
		return 1, nil
	}

	if minVal != nil && node.Value <= *minVal {
		return 0, fmt.Errorf("bst ordering violated: %q <= %q", node.Value, *minVal)
	}
	if maxVal != nil && node.Value >= *maxVal {
		return 0, fmt.Errorf("bst ordering violated: %q >= %q", node.Value, *maxVal)
	}

	leftBlackHeight, err := t.checkNode(node.Left, minVal, &node.Value)
	if err != nil {
		return 0, err
	}
	rightBlackHeight, err := t.checkNode(node.Right, &node.Value, maxVal)
	if err != nil {
		return 0, err
	}

	if leftBlackHeight != rightBlackHeight {
		return 0, fmt.Errorf("black heights differ at %q: %d vs %d", node.Value, leftBlackHeight, rightBlackHeight)
	}
	if node.Color == Red && (node.Left.Color == Red || node.Right.Color == Red) {
		return 0, fmt.Errorf("red node %q has a red child", node.Value)
	}

	if node.Color == Black {
		leftBlackHeight++
	}
	return leftBlackHeight, nil
}
