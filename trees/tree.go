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

// Package trees implements three self-balancing ordered sets over unique
// string keys: an AVL tree, a red-black tree, and a treap. The engines
// share one node model and one operation contract but no rebalancing
// logic; each is independent and self-contained.
package trees

// Tree is the contract implemented by every engine. Duplicate inserts
// and deletes of absent keys are normal outcomes signalled by a false
// return, not errors. Validate walks the whole structure and reports the
// first invariant breach; a non-nil result indicates a defect in the
// engine itself, not a recoverable condition.
type Tree interface {
	Insert(value string) bool
	Contains(value string) bool
	Delete(value string) bool
	Validate() error

	// Root exposes the tree for read-only instrumentation (height,
	// depth, imbalance). It returns nil for an empty tree; the
	// red-black sentinel is never returned.
	Root() *Node

	RotationsInsert() int
	RotationsDelete() int
	TotalRotations() int
	ResetMetrics()
}

// rotationMetrics counts rotations per public operation. Each rotation
// primitive records exactly once, attributed to the insert or delete
// that triggered it. Counters are per tree instance.
type rotationMetrics struct {
	rotationsInsert int
	rotationsDelete int
}

func (m *rotationMetrics) record(isDelete bool) {
	if isDelete {
		m.rotationsDelete++
	} else {
		m.rotationsInsert++
	}
}

// RotationsInsert returns the rotations performed during Insert calls
// since construction or the last ResetMetrics.
func (m *rotationMetrics) RotationsInsert() int { return m.rotationsInsert }

// RotationsDelete returns the rotations performed during Delete calls
// since construction or the last ResetMetrics.
func (m *rotationMetrics) RotationsDelete() int { return m.rotationsDelete }

// TotalRotations returns the sum of both rotation counters.
func (m *rotationMetrics) TotalRotations() int {
	return m.rotationsInsert + m.rotationsDelete
}

// ResetMetrics zeroes both rotation counters.
func (m *rotationMetrics) ResetMetrics() {
	m.rotationsInsert = 0
	m.rotationsDelete = 0
}

// InorderKeys returns the keys stored under root in ascending order.
// It is safe to call on any engine's root, including a red-black tree
// where leaf links point at the sentinel.
func InorderKeys(root *Node) []string {
	var keys []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsNil() {
			return
		}
		walk(n.Left)
		keys = append(keys, n.Value)
		walk(n.Right)
	}
	walk(root)
	return keys
}
