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

package bench

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Ghaith-Chrit/BST-Benchmark/trees"
)

// Workload patterns for dataset and query preparation.
const (
	WorkloadRandom     = "random"
	WorkloadAscending  = "ascending"
	WorkloadDescending = "descending"
	WorkloadHotspot    = "hotspot"
)

// StructureNames lists the engines in display order.
var StructureNames = []string{"avl", "rb", "treap"}

// Summary holds one engine's metrics aggregated across trials with
// medians. JSON names match the saved results format.
type Summary struct {
	InsertSecMedian float64 `json:"insert_sec_median"`
	LookupSecMedian float64 `json:"lookup_sec_median"`
	DeleteSecMedian float64 `json:"delete_sec_median"`

	InsertOpsPerSec float64 `json:"insert_ops_per_sec"`
	LookupOpsPerSec float64 `json:"lookup_ops_per_sec"`
	DeleteOpsPerSec float64 `json:"delete_ops_per_sec"`

	RotationsInsertMedian int `json:"rotations_insert_median"`
	RotationsDeleteMedian int `json:"rotations_delete_median"`

	HeightAfterInsertMedian int `json:"height_after_insert_median"`
	HeightAfterDeleteMedian int `json:"height_after_delete_median"`

	ValidateAfterInsertAllTrials bool `json:"validate_after_insert_all_trials"`
	ValidateAfterDeleteAllTrials bool `json:"validate_after_delete_all_trials"`

	AvgDepthAfterInsertMedian float64 `json:"avg_depth_after_insert_median"`
	AvgDepthAfterDeleteMedian float64 `json:"avg_depth_after_delete_median"`

	MaxImbalanceAfterInsertMedian float64 `json:"max_subtree_imbalance_after_insert_median"`
	MaxImbalanceAfterDeleteMedian float64 `json:"max_subtree_imbalance_after_delete_median"`
}

type trialResult struct {
	insertNs int64
	lookupNs int64
	deleteNs int64

	truePositives  int
	falsePositives int
	deletedCount   int

	rotationsInsert int
	rotationsDelete int

	heightAfterInsert int
	heightAfterDelete int

	validateAfterInsert bool
	validateAfterDelete bool

	avgDepthAfterInsert float64
	avgDepthAfterDelete float64

	maxImbalanceAfterInsert int
	maxImbalanceAfterDelete int
}

// TreeBenchmark drives identical workloads against each engine and
// aggregates per-trial metrics with medians.
type TreeBenchmark struct {
	Dataset []string
	Queries []string

	// Include selects engines by name; defaults to all of them.
	Include []string

	// Trials is the number of repetitions per engine; medians are
	// reported.
	Trials int

	// RandomSeed seeds hotspot query skew and treap priorities.
	RandomSeed int64

	TreapMaxPriority int
}

// NewTreeBenchmark returns a benchmark over dataset and queries with the
// defaults: all engines, one trial, seed 12345.
func NewTreeBenchmark(dataset, queries []string) *TreeBenchmark {
	return &TreeBenchmark{
		Dataset:          dataset,
		Queries:          queries,
		Include:          append([]string(nil), StructureNames...),
		Trials:           1,
		RandomSeed:       12345,
		TreapMaxPriority: trees.DefaultMaxPriority,
	}
}

func (b *TreeBenchmark) makeInstance(name string) (trees.Tree, error) {
	switch name {
	case "avl":
		return trees.NewAVLTree(), nil
	case "rb":
		return trees.NewRBTree(), nil
	case "treap":
		return trees.NewTreapWithSource(rand.NewSource(b.RandomSeed), b.TreapMaxPriority), nil
	}
	return nil, fmt.Errorf("unknown structure %q", name)
}

// Run executes the benchmark for every included engine under the given
// workload and returns aggregated metrics keyed by engine name.
func (b *TreeBenchmark) Run(workload string) (map[string]Summary, error) {
	switch workload {
	case WorkloadRandom, WorkloadAscending, WorkloadDescending, WorkloadHotspot:
	default:
		return nil, fmt.Errorf("unknown workload %q", workload)
	}

	results := make(map[string]Summary, len(b.Include))
	for _, name := range b.Include {
		trials := make([]trialResult, 0, b.Trials)
		for trial := 0; trial < b.Trials; trial++ {
			dataset := b.orderedDataset(workload)
			queries := b.trialQueries(workload, trial)
			result, err := b.runSingleTrial(name, dataset, queries)
			if err != nil {
				return nil, fmt.Errorf("benchmarking %q: %w", name, err)
			}
			trials = append(trials, result)
		}
		results[name] = b.aggregate(trials)
	}
	return results, nil
}

// orderedDataset prepares the insertion order for the workload. The
// ascending and descending orders compare all-digit keys numerically so
// "10" sorts after "9".
func (b *TreeBenchmark) orderedDataset(workload string) []string {
	dataset := append([]string(nil), b.Dataset...)
	switch workload {
	case WorkloadAscending:
		sort.Slice(dataset, func(i, j int) bool {
			return numericAwareLess(dataset[i], dataset[j])
		})
	case WorkloadDescending:
		sort.Slice(dataset, func(i, j int) bool {
			return numericAwareLess(dataset[j], dataset[i])
		})
	}
	return dataset
}

// trialQueries returns the query sequence for one trial. The hotspot
// workload draws 80% of queries from the first 10% of the dataset and
// the rest uniformly, reseeded per trial.
func (b *TreeBenchmark) trialQueries(workload string, trial int) []string {
	if workload != WorkloadHotspot {
		return append([]string(nil), b.Queries...)
	}

	hotspotSize := len(b.Dataset) / 10
	if hotspotSize < 1 {
		hotspotSize = 1
	}
	hotspot := b.Dataset[:hotspotSize]

	rng := rand.New(rand.NewSource(b.RandomSeed + int64(trial)))
	queries := make([]string, 0, len(b.Queries))
	for range b.Queries {
		if rng.Float64() < 0.8 {
			queries = append(queries, hotspot[rng.Intn(len(hotspot))])
		} else {
			queries = append(queries, b.Dataset[rng.Intn(len(b.Dataset))])
		}
	}
	return queries
}

func (b *TreeBenchmark) runSingleTrial(name string, dataset, queries []string) (trialResult, error) {
	inst, err := b.makeInstance(name)
	if err != nil {
		return trialResult{}, err
	}

	inDataset := make(map[string]struct{}, len(dataset))
	for _, v := range dataset {
		inDataset[v] = struct{}{}
	}

	start := time.Now()
	for _, v := range dataset {
		inst.Insert(v)
	}
	insertNs := time.Since(start).Nanoseconds()

	validateAfterInsert := inst.Validate() == nil
	heightAfterInsert, err := TreeHeight(inst.Root())
	if err != nil {
		return trialResult{}, err
	}
	balanceAfterInsert := ComputeBalanceMetrics(inst.Root())

	var truePositives, falsePositives int
	start = time.Now()
	for _, q := range queries {
		found := inst.Contains(q)
		if _, present := inDataset[q]; present {
			if found {
				truePositives++
			}
		} else if found {
			falsePositives++
		}
	}
	lookupNs := time.Since(start).Nanoseconds()

	var deletedCount int
	start = time.Now()
	for _, q := range queries {
		if inst.Delete(q) {
			deletedCount++
		}
	}
	deleteNs := time.Since(start).Nanoseconds()

	validateAfterDelete := inst.Validate() == nil
	heightAfterDelete, err := TreeHeight(inst.Root())
	if err != nil {
		return trialResult{}, err
	}
	balanceAfterDelete := ComputeBalanceMetrics(inst.Root())

	return trialResult{
		insertNs:                insertNs,
		lookupNs:                lookupNs,
		deleteNs:                deleteNs,
		truePositives:           truePositives,
		falsePositives:          falsePositives,
		deletedCount:            deletedCount,
		rotationsInsert:         inst.RotationsInsert(),
		rotationsDelete:         inst.RotationsDelete(),
		heightAfterInsert:       heightAfterInsert,
		heightAfterDelete:       heightAfterDelete,
		validateAfterInsert:     validateAfterInsert,
		validateAfterDelete:     validateAfterDelete,
		avgDepthAfterInsert:     balanceAfterInsert.AvgDepth,
		avgDepthAfterDelete:     balanceAfterDelete.AvgDepth,
		maxImbalanceAfterInsert: balanceAfterInsert.MaxImbalance,
		maxImbalanceAfterDelete: balanceAfterDelete.MaxImbalance,
	}, nil
}

func (b *TreeBenchmark) aggregate(trials []trialResult) Summary {
	collect := func(f func(trialResult) float64) []float64 {
		out := make([]float64, len(trials))
		for i, tr := range trials {
			out[i] = f(tr)
		}
		return out
	}

	insertSec := median(collect(func(tr trialResult) float64 { return float64(tr.insertNs) })) / 1e9
	lookupSec := median(collect(func(tr trialResult) float64 { return float64(tr.lookupNs) })) / 1e9
	deleteSec := median(collect(func(tr trialResult) float64 { return float64(tr.deleteNs) })) / 1e9

	opsPerSec := func(ops int, sec float64) float64 {
		if sec <= 0 {
			return math.Inf(1)
		}
		return float64(ops) / sec
	}

	validateInsert := true
	validateDelete := true
	for _, tr := range trials {
		validateInsert = validateInsert && tr.validateAfterInsert
		validateDelete = validateDelete && tr.validateAfterDelete
	}

	return Summary{
		InsertSecMedian:               insertSec,
		LookupSecMedian:               lookupSec,
		DeleteSecMedian:               deleteSec,
		InsertOpsPerSec:               opsPerSec(len(b.Dataset), insertSec),
		LookupOpsPerSec:               opsPerSec(len(b.Queries), lookupSec),
		DeleteOpsPerSec:               opsPerSec(len(b.Queries), deleteSec),
		RotationsInsertMedian:         int(median(collect(func(tr trialResult) float64 { return float64(tr.rotationsInsert) }))),
		RotationsDeleteMedian:         int(median(collect(func(tr trialResult) float64 { return float64(tr.rotationsDelete) }))),
		HeightAfterInsertMedian:       int(median(collect(func(tr trialResult) float64 { return float64(tr.heightAfterInsert) }))),
		HeightAfterDeleteMedian:       int(median(collect(func(tr trialResult) float64 { return float64(tr.heightAfterDelete) }))),
		ValidateAfterInsertAllTrials:  validateInsert,
		ValidateAfterDeleteAllTrials:  validateDelete,
		AvgDepthAfterInsertMedian:     median(collect(func(tr trialResult) float64 { return tr.avgDepthAfterInsert })),
		AvgDepthAfterDeleteMedian:     median(collect(func(tr trialResult) float64 { return tr.avgDepthAfterDelete })),
		MaxImbalanceAfterInsertMedian: median(collect(func(tr trialResult) float64 { return float64(tr.maxImbalanceAfterInsert) })),
		MaxImbalanceAfterDeleteMedian: median(collect(func(tr trialResult) float64 { return float64(tr.maxImbalanceAfterDelete) })),
	}
}

// median of values; the mean of the two middle values for even counts.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// numericAwareLess orders all-digit strings by numeric value and
// everything else lexicographically, digits sorting before non-digits.
func numericAwareLess(a, b string) bool {
	aDigits, bDigits := allDigits(a), allDigits(b)
	if aDigits && bDigits {
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	}
	if aDigits != bDigits {
		return aDigits
	}
	return a < b
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
