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
	"reflect"
	"testing"
)

type avlTestCase struct {
	Name          string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []avlTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Left-Heavy)",
			KeysToInsert:  []string{"cherry", "banana", "apple"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			KeysToInsert:  []string{"apple", "banana", "cherry", "date", "elderberry"},
			KeysToDelete:  []string{"apple"},
			ExpectedOrder: []string{"banana", "cherry", "date", "elderberry"},
		},
		{
			Name:          "Mixed Operations",
			KeysToInsert:  []string{"dog", "cat", "elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Two-Children Deletion",
			KeysToInsert:  []string{"m", "c", "t", "a", "e", "r", "z"},
			KeysToDelete:  []string{"m"},
			ExpectedOrder: []string{"a", "c", "e", "r", "t", "z"},
		},
		{
			Name:          "Delete Everything",
			KeysToInsert:  []string{"b", "a", "c"},
			KeysToDelete:  []string{"a", "b", "c"},
			ExpectedOrder: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewAVLTree()
			for _, key := range tc.KeysToInsert {
				if !tree.Insert(key) {
					t.Errorf("Insert(%q) = false; want true", key)
				}
			}
			for _, key := range tc.KeysToDelete {
				if !tree.Delete(key) {
					t.Errorf("Delete(%q) = false; want true", key)
				}
			}
			if got := InorderKeys(tree.Root()); !reflect.DeepEqual(got, tc.ExpectedOrder) {
				t.Errorf("InorderKeys() = %v; want %v", got, tc.ExpectedOrder)
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
		})
	}
}

func TestAVLTreeLeftLeftRotation(t *testing.T) {
	tree := NewAVLTree()
	for _, key := range []string{"3", "2", "1"} {
		tree.Insert(key)
	}

	root := tree.Root()
	if root == nil || root.Value != "2" {
		t.Fatalf("root = %v; want %q", root, "2")
	}
	if root.Parent != nil {
		t.Errorf("root.Parent = %v; want nil", root.Parent)
	}
	if root.Left == nil || root.Left.Value != "1" {
		t.Errorf("root.Left = %v; want %q", root.Left, "1")
	}
	if root.Right == nil || root.Right.Value != "3" {
		t.Errorf("root.Right = %v; want %q", root.Right, "3")
	}
	if root.Left.Left != nil || root.Left.Right != nil {
		t.Errorf("left child is not a leaf")
	}
	if root.Right.Left != nil || root.Right.Right != nil {
		t.Errorf("right child is not a leaf")
	}
	if got := tree.RotationsInsert(); got != 1 {
		t.Errorf("RotationsInsert() = %d; want 1", got)
	}
}

func TestAVLTreeRotationMirrors(t *testing.T) {
	sequences := [][]string{
		{"1", "2", "3"}, // RR
		{"3", "1", "2"}, // LR
		{"1", "3", "2"}, // RL
	}
	want := []string{"1", "2", "3"}

	for _, seq := range sequences {
		tree := NewAVLTree()
		for _, key := range seq {
			tree.Insert(key)
		}
		if root := tree.Root(); root == nil || root.Value != "2" {
			t.Errorf("after inserting %v: root = %v; want %q", seq, root, "2")
		}
		if got := InorderKeys(tree.Root()); !reflect.DeepEqual(got, want) {
			t.Errorf("after inserting %v: InorderKeys() = %v; want %v", seq, got, want)
		}
		if err := tree.Validate(); err != nil {
			t.Errorf("after inserting %v: Validate() = %v; want nil", seq, err)
		}
	}
}

func TestAVLTreeHeightsAfterRotation(t *testing.T) {
	tree := NewAVLTree()
	for _, key := range []string{"3", "2", "1"} {
		tree.Insert(key)
	}

	root := tree.Root()
	if root.Height != 2 {
		t.Errorf("root.Height = %d; want 2", root.Height)
	}
	if root.Left.Height != 1 || root.Right.Height != 1 {
		t.Errorf("leaf heights = %d, %d; want 1, 1", root.Left.Height, root.Right.Height)
	}
}

func TestAVLTreeDeleteCascadingRotations(t *testing.T) {
	// Build a tree where removing leaves forces rebalancing above the
	// deletion point.
	tree := NewAVLTree()
	keys := []string{"h", "d", "l", "b", "f", "j", "n", "a", "c", "e", "i", "m", "o", "p"}
	for _, key := range keys {
		tree.Insert(key)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate() after inserts = %v; want nil", err)
	}

	for _, key := range []string{"f", "e", "c", "b", "a", "d"} {
		if !tree.Delete(key) {
			t.Fatalf("Delete(%q) = false; want true", key)
		}
		if err := tree.Validate(); err != nil {
			t.Fatalf("Validate() after deleting %q = %v; want nil", key, err)
		}
	}
	if tree.RotationsDelete() == 0 {
		t.Errorf("RotationsDelete() = 0; want > 0")
	}
}

func TestAVLTreeParentPointers(t *testing.T) {
	tree := NewAVLTree()
	for _, key := range []string{"f", "c", "j", "a", "d", "h", "m", "b"} {
		tree.Insert(key)
	}
	tree.Delete("c")

	var check func(n *Node) bool
	check = func(n *Node) bool {
		if n == nil {
			return true
		}
		if n.Left != nil && n.Left.Parent != n {
			t.Errorf("left child %q has wrong parent", n.Left.Value)
			return false
		}
		if n.Right != nil && n.Right.Parent != n {
			t.Errorf("right child %q has wrong parent", n.Right.Value)
			return false
		}
		return check(n.Left) && check(n.Right)
	}
	if tree.Root().Parent != nil {
		t.Errorf("root parent = %v; want nil", tree.Root().Parent)
	}
	check(tree.Root())
}
