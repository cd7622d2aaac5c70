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
	"os"

	"github.com/schollz/progressbar/v3"
)

// trackedMetrics are the Summary fields collected into per-size series,
// keyed by their JSON names. Validation booleans are recorded as 0/1.
var trackedMetrics = []string{
	"insert_sec_median",
	"lookup_sec_median",
	"delete_sec_median",
	"insert_ops_per_sec",
	"lookup_ops_per_sec",
	"delete_ops_per_sec",
	"rotations_insert_median",
	"rotations_delete_median",
	"height_after_insert_median",
	"height_after_delete_median",
	"avg_depth_after_insert_median",
	"avg_depth_after_delete_median",
	"max_subtree_imbalance_after_insert_median",
	"max_subtree_imbalance_after_delete_median",
	"validate_after_insert_all_trials",
	"validate_after_delete_all_trials",
}

// ScalingOptions configures a scaling benchmark run.
type ScalingOptions struct {
	MinItems int
	MaxItems int
	NumSteps int

	// QueriesRatio is the query count relative to the dataset size.
	QueriesRatio float64

	// FixQueriesRatio pins the query count to the middle dataset size
	// instead of scaling it with each size.
	FixQueriesRatio bool

	Workload   string
	Structures []string

	// ExcludeAbove drops a structure once the dataset size exceeds its
	// threshold.
	ExcludeAbove map[string]int

	NumTrials int
	Seed      int64

	ShowProgress bool
}

// DefaultScalingOptions mirrors the defaults of the demo configuration.
func DefaultScalingOptions() ScalingOptions {
	return ScalingOptions{
		MinItems:        1_000,
		MaxItems:        200_000,
		NumSteps:        8,
		QueriesRatio:    0.4,
		FixQueriesRatio: true,
		Workload:        WorkloadRandom,
		Structures:      append([]string(nil), StructureNames...),
		NumTrials:       3,
		Seed:            42,
		ShowProgress:    true,
	}
}

// ScalingResults maps structure name to metric name to the series of
// values across dataset sizes.
type ScalingResults map[string]map[string][]float64

// RunScaling benchmarks every requested structure across logarithmically
// spaced dataset sizes and returns the metric series together with the
// sizes actually used.
func RunScaling(opts ScalingOptions) (ScalingResults, []int, error) {
	if opts.MinItems < 1 || opts.MaxItems < opts.MinItems {
		return nil, nil, fmt.Errorf("invalid size range [%d, %d]", opts.MinItems, opts.MaxItems)
	}
	if len(opts.Structures) == 0 {
		opts.Structures = append([]string(nil), StructureNames...)
	}
	if opts.NumTrials < 1 {
		opts.NumTrials = 1
	}

	sizes := LogSpacedSizes(opts.MinItems, opts.MaxItems, opts.NumSteps)
	results := make(ScalingResults)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(len(sizes),
			progressbar.OptionSetDescription("Scaling benchmark"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	for _, size := range sizes {
		dataset, actualLength := GenerateStrings(size, 16, opts.Seed)
		queries := SampleQueries(dataset, QueryCount(sizes, size, opts), actualLength, opts.Seed)

		include := make([]string, 0, len(opts.Structures))
		for _, name := range opts.Structures {
			if limit, ok := opts.ExcludeAbove[name]; ok && size > limit {
				continue
			}
			include = append(include, name)
		}

		benchmark := NewTreeBenchmark(dataset, queries)
		benchmark.Include = include
		benchmark.Trials = opts.NumTrials
		benchmark.RandomSeed = opts.Seed

		sizeResults, err := benchmark.Run(opts.Workload)
		if err != nil {
			return nil, nil, fmt.Errorf("benchmarking size %d: %w", size, err)
		}

		for name, summary := range sizeResults {
			series, ok := results[name]
			if !ok {
				series = make(map[string][]float64, len(trackedMetrics))
				results[name] = series
			}
			for metric, value := range metricValues(summary) {
				series[metric] = append(series[metric], value)
			}
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	return results, sizes, nil
}

// QueryCount returns the number of queries for a dataset size under the
// run's query-ratio settings: proportional to size, or pinned to the
// middle size when the ratio is fixed.
func QueryCount(sizes []int, size int, opts ScalingOptions) int {
	base := size
	if opts.FixQueriesRatio {
		base = sizes[len(sizes)/2]
	}
	n := int(float64(base) * opts.QueriesRatio)
	if n < 1 {
		n = 1
	}
	return n
}

// LogSpacedSizes returns steps dataset sizes spaced evenly on a log
// scale between minItems and maxItems, strictly increasing.
func LogSpacedSizes(minItems, maxItems, steps int) []int {
	if steps <= 1 || minItems == maxItems {
		return []int{maxItems}
	}

	logMin := math.Log10(float64(minItems))
	logMax := math.Log10(float64(maxItems))

	sizes := make([]int, 0, steps)
	prev := 0
	for i := 0; i < steps; i++ {
		v := int(math.Round(math.Pow(10, logMin+(logMax-logMin)*float64(i)/float64(steps-1))))
		if v <= prev {
			v = prev + 1
		}
		sizes = append(sizes, v)
		prev = v
	}
	return sizes
}

// metricValues flattens a Summary into the tracked metric map. Infinite
// throughputs (zero measured time) are recorded as 0 so the series stays
// JSON-serializable.
func metricValues(s Summary) map[string]float64 {
	finite := func(v float64) float64 {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0
		}
		return v
	}
	boolVal := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}
	return map[string]float64{
		"insert_sec_median":                         s.InsertSecMedian,
		"lookup_sec_median":                         s.LookupSecMedian,
		"delete_sec_median":                         s.DeleteSecMedian,
		"insert_ops_per_sec":                        finite(s.InsertOpsPerSec),
		"lookup_ops_per_sec":                        finite(s.LookupOpsPerSec),
		"delete_ops_per_sec":                        finite(s.DeleteOpsPerSec),
		"rotations_insert_median":                   float64(s.RotationsInsertMedian),
		"rotations_delete_median":                   float64(s.RotationsDeleteMedian),
		"height_after_insert_median":                float64(s.HeightAfterInsertMedian),
		"height_after_delete_median":                float64(s.HeightAfterDeleteMedian),
		"avg_depth_after_insert_median":             s.AvgDepthAfterInsertMedian,
		"avg_depth_after_delete_median":             s.AvgDepthAfterDeleteMedian,
		"max_subtree_imbalance_after_insert_median": s.MaxImbalanceAfterInsertMedian,
		"max_subtree_imbalance_after_delete_median": s.MaxImbalanceAfterDeleteMedian,
		"validate_after_insert_all_trials":          boolVal(s.ValidateAfterInsertAllTrials),
		"validate_after_delete_all_trials":          boolVal(s.ValidateAfterDeleteAllTrials),
	}
}
