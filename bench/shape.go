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

// Package bench is the measurement harness for the tree engines: it
// generates datasets, drives bulk insert/lookup/delete workloads against
// the trees.Tree contract, and aggregates timing, rotation, and shape
// metrics. It only touches trees through the public contract and the
// read-only node surface.
package bench

import (
	"errors"

	"github.com/Ghaith-Chrit/BST-Benchmark/trees"
)

// TreeHeight returns the number of nodes on the longest root-to-leaf
// path, 0 for an empty tree. It errors out if it revisits a node, which
// indicates a corrupted link structure.
func TreeHeight(root *trees.Node) (int, error) {
	visited := make(map[*trees.Node]bool)
	var walk func(n *trees.Node) (int, error)
	walk = func(n *trees.Node) (int, error) {
		if n.IsNil() {
			return 0, nil
		}
		if visited[n] {
			return 0, errors.New("cycle detected in tree")
		}
		visited[n] = true
		left, err := walk(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := walk(n.Right)
		if err != nil {
			return 0, err
		}
		return 1 + max(left, right), nil
	}
	return walk(root)
}

// BalanceMetrics summarises how balanced a tree currently is. The root
// is counted at depth 1. MaxImbalance is the largest difference between
// left and right subtree heights observed at any single node.
type BalanceMetrics struct {
	Height       int
	AvgDepth     float64
	MaxImbalance int
}

// ComputeBalanceMetrics walks the tree once through the read-only node
// surface. Sentinel leaves are treated as empty.
func ComputeBalanceMetrics(root *trees.Node) BalanceMetrics {
	if root.IsNil() {
		return BalanceMetrics{}
	}

	var (
		depthSum     int
		nodeCount    int
		maxImbalance int
	)
	var walk func(n *trees.Node, depth int) int
	walk = func(n *trees.Node, depth int) int {
		if n.IsNil() {
			return 0
		}
		leftHeight := walk(n.Left, depth+1)
		rightHeight := walk(n.Right, depth+1)
		depthSum += depth
		nodeCount++
		if d := abs(leftHeight - rightHeight); d > maxImbalance {
			maxImbalance = d
		}
		return 1 + max(leftHeight, rightHeight)
	}
	height := walk(root, 1)

	return BalanceMetrics{
		Height:       height,
		AvgDepth:     float64(depthSum) / float64(nodeCount),
		MaxImbalance: maxImbalance,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
