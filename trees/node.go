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

// Color of a red-black tree node.
type Color bool

const (
	Red   Color = true
	Black Color = false
)

// Node is the record shared by all three engines. Only a subset of the
// fields is meaningful for any given engine: Height for the AVL tree
// (a leaf has height 1), Color for the red-black tree, and Priority for
// the treap. Parent is a non-owning back-reference kept consistent with
// the owning Left/Right links.
type Node struct {
	Value  string
	Parent *Node
	Left   *Node
	Right  *Node

	Height   int   // AVL only
	Color    Color // red-black only
	Priority int   // treap only

	sentinel bool
}

// IsNil reports whether n stands for the absence of a node: either a nil
// pointer or a red-black leaf sentinel reached through Left/Right links.
// Callers walking a tree through the read-only surface should stop at
// nodes for which IsNil is true.
func (n *Node) IsNil() bool {
	return n == nil || n.sentinel
}
